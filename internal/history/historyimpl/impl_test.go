package historyimpl

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/repositories/publication"
	mock_publication "github.com/orgball2608/motivate-ai/internal/repositories/publication/mocks"
	mock_telegram "github.com/orgball2608/motivate-ai/internal/telegram/mocks"
	"github.com/orgball2608/motivate-ai/pkg/logger"
	"go.uber.org/mock/gomock"
)

func newTestHistory(t *testing.T) (*HistoryImpl, *mock_publication.MockRepository, *mock_telegram.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_publication.NewMockRepository(ctrl)
	tg := mock_telegram.NewMockClient(ctrl)
	return NewHistory(repo, tg, logger.Nop(), 720*time.Hour, time.UTC), repo, tg
}

func TestRecordStoresAndNotifies(t *testing.T) {
	h, repo, tg := newTestHistory(t)

	pub := domain.Publication{
		Platform:   domain.YouTube,
		ExternalID: "abc",
		URL:        "https://www.youtube.com/watch?v=abc",
		Title:      "Rise. Again!",
		Username:   "MotivationalChannel",
	}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, got domain.Publication) error {
		if got.ID == "" || got.PublishedAt.IsZero() {
			t.Errorf("id and timestamp must be filled: %+v", got)
		}
		if got.ExternalID != "abc" {
			t.Errorf("external id = %q", got.ExternalID)
		}
		return nil
	})
	tg.EXPECT().NotifyOperator(gomock.Any()).Do(func(text string) {
		if !strings.Contains(text, "youtube") || !strings.Contains(text, pub.URL) {
			t.Errorf("operator text %q", text)
		}
	})
	tg.EXPECT().NotifyChannel(`*Rise\. Again\!*` + "\n" + `https://www\.youtube\.com/watch?v\=abc`)

	if err := h.Record(context.Background(), pub); err != nil {
		t.Fatalf("Record: %v", err)
	}
}

func TestRecordIgnoresDuplicates(t *testing.T) {
	h, repo, _ := newTestHistory(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(publication.ErrAlreadyExists)

	if err := h.Record(context.Background(), domain.Publication{Platform: domain.Instagram, ExternalID: "1"}); err != nil {
		t.Fatalf("duplicate must be ignored, got %v", err)
	}
}

func TestRecordPropagatesStoreErrors(t *testing.T) {
	h, repo, _ := newTestHistory(t)

	boom := errors.New("connection refused")
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(boom)

	if err := h.Record(context.Background(), domain.Publication{}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestRecentClampsLimit(t *testing.T) {
	h, repo, _ := newTestHistory(t)

	now := time.Now()
	gomock.InOrder(
		repo.EXPECT().GetRecent(gomock.Any(), defaultRecent).Return([]*domain.Publication{
			{ID: "1", Platform: domain.YouTube, PublishedAt: now},
		}, nil),
		repo.EXPECT().GetRecent(gomock.Any(), maxRecent).Return(nil, nil),
	)

	pubs, err := h.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(pubs) != 1 || pubs[0].ID != "1" {
		t.Fatalf("unexpected publications %+v", pubs)
	}

	if _, err := h.Recent(context.Background(), 500); err != nil {
		t.Fatalf("Recent: %v", err)
	}
}

func TestStatsReportsEveryPlatform(t *testing.T) {
	h, repo, _ := newTestHistory(t)

	repo.EXPECT().CountByPlatform(gomock.Any()).Return(map[domain.Platform]int{domain.YouTube: 3}, nil)

	stats, err := h.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats[domain.YouTube] != 3 {
		t.Fatalf("youtube = %d", stats[domain.YouTube])
	}
	if n, ok := stats[domain.Instagram]; !ok || n != 0 {
		t.Fatalf("instagram must be reported as zero, got %d (present=%v)", n, ok)
	}
}

func TestCleanupUsesRetention(t *testing.T) {
	h, repo, _ := newTestHistory(t)

	repo.EXPECT().CleanupOldRecords(gomock.Any(), 720*time.Hour).Return(int64(4), nil)

	n, err := h.Cleanup(context.Background())
	if err != nil || n != 4 {
		t.Fatalf("Cleanup = %d, %v", n, err)
	}
}

func TestScheduleCleanupStopsWithContext(t *testing.T) {
	h, _, _ := newTestHistory(t)

	ctx, cancel := context.WithCancel(context.Background())
	if err := h.ScheduleCleanup(ctx); err != nil {
		t.Fatalf("ScheduleCleanup: %v", err)
	}
	cancel()
}
