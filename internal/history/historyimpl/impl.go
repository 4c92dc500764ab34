package historyimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/history"
	"github.com/orgball2608/motivate-ai/internal/repositories/publication"
	"github.com/orgball2608/motivate-ai/internal/telegram"
	"github.com/orgball2608/motivate-ai/pkg/config"
	"github.com/orgball2608/motivate-ai/pkg/formatter"
	"github.com/orgball2608/motivate-ai/pkg/logger"
	"go.uber.org/fx"
)

const (
	defaultRecent = 10
	maxRecent     = 50
)

type Opts struct {
	fx.In

	LC       fx.Lifecycle
	Config   *config.Config
	Logger   logger.Logger
	Repo     publication.Repository
	Telegram telegram.Client `optional:"true"`
}

type HistoryImpl struct {
	repo      publication.Repository
	telegram  telegram.Client
	logger    logger.Logger
	retention time.Duration
	location  *time.Location
}

var _ history.Client = (*HistoryImpl)(nil)

func New(opts Opts) (*HistoryImpl, error) {
	retention, err := time.ParseDuration(opts.Config.History.Retention)
	if err != nil {
		return nil, fmt.Errorf("invalid HISTORY_RETENTION %q: %w", opts.Config.History.Retention, err)
	}

	log := opts.Logger.WithComponent("History")

	loc, err := time.LoadLocation(opts.Config.History.Timezone)
	if err != nil {
		loc = time.UTC
		log.Warn("Failed to load history timezone, using UTC", "timezone", opts.Config.History.Timezone, "error", err)
	}

	h := NewHistory(opts.Repo, opts.Telegram, log, retention, loc)

	ctx, cancel := context.WithCancel(context.Background())
	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return h.ScheduleCleanup(ctx)
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})

	return h, nil
}

func NewHistory(repo publication.Repository, tg telegram.Client, log logger.Logger, retention time.Duration, loc *time.Location) *HistoryImpl {
	if tg == nil {
		tg = telegram.Noop{}
	}
	return &HistoryImpl{
		repo:      repo,
		telegram:  tg,
		logger:    log,
		retention: retention,
		location:  loc,
	}
}

// Record stores the publication and announces it. Duplicates are ignored.
func (h *HistoryImpl) Record(ctx context.Context, pub domain.Publication) error {
	if pub.ID == "" {
		pub.ID = uuid.NewString()
	}
	if pub.PublishedAt.IsZero() {
		pub.PublishedAt = time.Now().UTC()
	}

	if err := h.repo.Create(ctx, pub); err != nil {
		if errors.Is(err, publication.ErrAlreadyExists) {
			h.logger.Debug("Publication already recorded", "platform", pub.Platform, "external_id", pub.ExternalID)
			return nil
		}
		return fmt.Errorf("failed to record publication: %w", err)
	}

	h.logger.Info("Publication recorded", "platform", pub.Platform, "url", pub.URL)

	h.telegram.NotifyOperator(operatorText(pub))
	h.telegram.NotifyChannel(channelText(pub))

	return nil
}

func (h *HistoryImpl) Recent(ctx context.Context, limit int) ([]domain.Publication, error) {
	switch {
	case limit <= 0:
		limit = defaultRecent
	case limit > maxRecent:
		limit = maxRecent
	}

	pubs, err := h.repo.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent publications: %w", err)
	}

	out := make([]domain.Publication, 0, len(pubs))
	for _, p := range pubs {
		out = append(out, *p)
	}
	return out, nil
}

// Stats always reports every platform, zero included.
func (h *HistoryImpl) Stats(ctx context.Context) (map[domain.Platform]int, error) {
	counts, err := h.repo.CountByPlatform(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count publications: %w", err)
	}

	out := make(map[domain.Platform]int, len(domain.Platforms()))
	for _, p := range domain.Platforms() {
		out[p] = counts[p]
	}
	return out, nil
}

func operatorText(pub domain.Publication) string {
	who := pub.Username
	if who == "" {
		who = "unknown account"
	}
	return fmt.Sprintf("Published on %s as %s\n%s\n%s", pub.Platform, who, pub.Title, pub.URL)
}

func channelText(pub domain.Publication) string {
	return fmt.Sprintf("*%s*\n%s",
		formatter.EscapeMarkdownV2(pub.Title),
		formatter.EscapeMarkdownV2(pub.URL),
	)
}
