package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/orgball2608/motivate-ai/pkg/logger"
)

func fast(maxRetries uint64) Config {
	return Config{MaxRetries: maxRetries, InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond, Multiplier: 1}
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), logger.Nop(), "flaky", func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	}, fast(5))

	if err != nil || calls != 3 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
}

func TestDoGivesUpAfterMaxRetries(t *testing.T) {
	calls := 0
	err := Do(context.Background(), logger.Nop(), "broken", func() error {
		calls++
		return errors.New("always")
	}, fast(2))

	if err == nil || calls != 3 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
}

func TestPermanentStopsImmediately(t *testing.T) {
	calls := 0
	stop := errors.New("container expired")
	err := Do(context.Background(), logger.Nop(), "poll", func() error {
		calls++
		return Permanent(stop)
	}, fast(5))

	if !errors.Is(err, stop) || calls != 1 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
}

func TestUnboundedStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, logger.Nop(), "listener", func() error {
		calls++
		if calls == 4 {
			cancel()
		}
		return errors.New("closed")
	}, fast(0))

	if err == nil || calls != 4 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
}
