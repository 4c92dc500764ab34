package historyimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

const cleanupTimeout = 5 * time.Minute

// ScheduleCleanup runs Cleanup daily at 3:00 in the history timezone until ctx is done.
func (h *HistoryImpl) ScheduleCleanup(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(h.location))
	if err != nil {
		return fmt.Errorf("failed to create cleanup scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0)),
		),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}

			cleanupCtx, cancel := context.WithTimeout(ctx, cleanupTimeout)
			defer cancel()

			if _, err := h.Cleanup(cleanupCtx); err != nil {
				h.logger.Error("Failed to clean up old publications", "error", err)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule history cleanup: %w", err)
	}

	scheduler.Start()
	h.logger.Info("History cleanup scheduled", "retention", h.retention.String(), "timezone", h.location.String())

	go func() {
		<-ctx.Done()
		h.logger.Info("Stopping history cleanup scheduler")
		if err := scheduler.Shutdown(); err != nil {
			h.logger.Error("Failed to shut down cleanup scheduler", "error", err)
		}
	}()

	return nil
}

// Cleanup deletes publications older than the retention window.
func (h *HistoryImpl) Cleanup(ctx context.Context) (int64, error) {
	rows, err := h.repo.CleanupOldRecords(ctx, h.retention)
	if err != nil {
		return 0, err
	}
	h.logger.Info("History cleanup completed", "rows_deleted", rows)
	return rows, nil
}
