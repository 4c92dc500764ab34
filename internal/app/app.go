package app

import (
	"context"

	"github.com/orgball2608/motivate-ai/internal/authflow"
	"github.com/orgball2608/motivate-ai/internal/command"
	"github.com/orgball2608/motivate-ai/internal/command/commandimpl"
	"github.com/orgball2608/motivate-ai/internal/generation"
	"github.com/orgball2608/motivate-ai/internal/generation/generationimpl"
	"github.com/orgball2608/motivate-ai/internal/history"
	"github.com/orgball2608/motivate-ai/internal/history/historyimpl"
	"github.com/orgball2608/motivate-ai/internal/httpapi"
	"github.com/orgball2608/motivate-ai/internal/mediahost"
	"github.com/orgball2608/motivate-ai/internal/migrations"
	"github.com/orgball2608/motivate-ai/internal/repositories/publication"
	"github.com/orgball2608/motivate-ai/internal/telegram"
	"github.com/orgball2608/motivate-ai/internal/telegram/telegramimpl"
	"github.com/orgball2608/motivate-ai/internal/upload"
	"github.com/orgball2608/motivate-ai/internal/upload/uploadimpl"
	"github.com/orgball2608/motivate-ai/internal/wizard"
	"github.com/orgball2608/motivate-ai/internal/wizard/wizardimpl"
	"github.com/orgball2608/motivate-ai/pkg/config"
	"github.com/orgball2608/motivate-ai/pkg/logger"
	"github.com/orgball2608/motivate-ai/pkg/pgx"
	"github.com/orgball2608/motivate-ai/pkg/retry"
	"go.uber.org/fx"
)

// Module assembles the service. Postgres history and the Telegram bot are
// only wired when configured.
func Module(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			logger.FxOption,
			authflow.New,
			func(b *authflow.Broker) httpapi.Handshakes { return b },
			mediahost.New,
			func(s *mediahost.Store) uploadimpl.MediaHost { return s },
			func(s *mediahost.Store) httpapi.MediaSource { return s },
		),
		fx.Provide(
			fx.Annotate(
				generationimpl.New,
				fx.As(new(generation.Client)),
			),
			fx.Annotate(
				uploadimpl.New,
				fx.As(new(upload.Client)),
			),
			fx.Annotate(
				wizardimpl.New,
				fx.As(new(wizard.Client)),
			),
			httpapi.New,
		),
		historyModule(cfg),
		telegramModule(cfg),
		fx.Invoke(func(*httpapi.Server) {}),
	)
}

func historyModule(cfg *config.Config) fx.Option {
	if !cfg.HistoryEnabled() {
		return fx.Provide(func() history.Client { return history.Noop{} })
	}

	return fx.Options(
		fx.Provide(pgx.New),
		publication.Module,
		fx.Provide(
			fx.Annotate(
				historyimpl.New,
				fx.As(new(history.Client)),
			),
		),
		fx.Invoke(func(c *config.Config, log logger.Logger) error {
			if err := migrations.Up(c.GetDSN()); err != nil {
				return err
			}
			log.Info("Database migrations applied")
			return nil
		}),
	)
}

func telegramModule(cfg *config.Config) fx.Option {
	if !cfg.TelegramEnabled() {
		return fx.Provide(func() telegram.Client { return telegram.Noop{} })
	}

	return fx.Options(
		fx.Provide(
			fx.Annotate(
				telegramimpl.New,
				fx.As(new(telegram.Client)),
			),
			fx.Annotate(
				commandimpl.New,
				fx.As(new(command.Client)),
			),
		),
		fx.Invoke(runCommands),
	)
}

// runCommands keeps the bot listener alive, restarting it with backoff when
// the update channel drops.
func runCommands(lc fx.Lifecycle, log logger.Logger, cmd command.Client, tg telegram.Client) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				err := retry.Do(ctx, log, "telegram command listener", func() error {
					return cmd.HandleCommand(ctx)
				}, retry.Supervise())
				if err != nil && ctx.Err() == nil {
					log.Error("Command listener stopped", "error", err)
				}
			}()
			tg.NotifyOperator("MotivateAI service started")
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
