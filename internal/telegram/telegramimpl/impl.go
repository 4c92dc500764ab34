package telegramimpl

import (
	"context"
	"errors"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/motivate-ai/internal/telegram"
	"github.com/orgball2608/motivate-ai/pkg/config"
	"github.com/orgball2608/motivate-ai/pkg/logger"
	"github.com/orgball2608/motivate-ai/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	HTTPClient *http.Client `optional:"true"`
}

const authorizeTimeout = 30 * time.Second

type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Logger logger.Logger
	Config *config.Config
}

func New(opts Opts) (*TelegramImpl, error) {
	return NewWithEndpoint(opts, tgbotapi.APIEndpoint)
}

// NewWithEndpoint builds the bot against a custom API endpoint format.
func NewWithEndpoint(opts Opts, endpoint string) (*TelegramImpl, error) {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	log := opts.Logger.WithComponent("Telegram")

	ctx, cancel := context.WithTimeout(context.Background(), authorizeTimeout)
	defer cancel()

	var tgBot *tgbotapi.BotAPI
	err := retry.Do(ctx, log, "telegram getMe", func() error {
		bot, err := tgbotapi.NewBotAPIWithClient(opts.Config.Telegram.Token, endpoint, client)
		if err != nil {
			// an API answer (bad token, banned bot) will not change on retry
			var apiErr *tgbotapi.Error
			if errors.As(err, &apiErr) {
				return retry.Permanent(err)
			}
			return err
		}
		tgBot = bot
		return nil
	}, retry.DefaultConfig())
	if err != nil {
		log.Error("Error creating bot", "Error", err)
		return nil, err
	}

	log.Info("Telegram bot authorized", "username", tgBot.Self.UserName)

	return &TelegramImpl{
		TgBot:  tgBot,
		Logger: log,
		Config: opts.Config,
	}, nil
}

var _ telegram.Client = (*TelegramImpl)(nil)
