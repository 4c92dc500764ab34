package commandimpl

import (
	"github.com/orgball2608/motivate-ai/internal/command"
	"github.com/orgball2608/motivate-ai/internal/history"
	"github.com/orgball2608/motivate-ai/internal/ratelimit"
	"github.com/orgball2608/motivate-ai/internal/telegram"
	"github.com/orgball2608/motivate-ai/internal/wizard"
	"github.com/orgball2608/motivate-ai/pkg/config"
	"github.com/orgball2608/motivate-ai/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Telegram telegram.Client
	Wizard   wizard.Client
	History  history.Client
	Logger   logger.Logger
	Config   *config.Config
}

type CommandImpl struct {
	Telegram telegram.Client
	Wizard   wizard.Client
	History  history.Client
	Logger   logger.Logger
	Limiter  ratelimit.Limiter
	// Operator is the only Telegram user served. Zero serves everyone.
	Operator int64
}

func New(opts Opts) *CommandImpl {
	rl := opts.Config.RateLimit
	return &CommandImpl{
		Telegram: opts.Telegram,
		Wizard:   opts.Wizard,
		History:  opts.History,
		Logger:   opts.Logger.WithComponent("Commands"),
		Limiter:  ratelimit.NewInMemoryLimiter(rl.Requests, rl.Per, rl.Burst),
		Operator: opts.Config.Telegram.User,
	}
}

var _ command.Client = (*CommandImpl)(nil)
