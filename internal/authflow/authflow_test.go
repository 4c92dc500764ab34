package authflow

import (
	"context"
	"testing"
	"time"

	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/pkg/errors"
	"github.com/orgball2608/motivate-ai/pkg/logger"
)

func TestHandshakeReturnsCode(t *testing.T) {
	b := NewBroker(time.Minute, logger.Nop())
	h := b.Begin(domain.YouTube)

	go func() {
		if err := b.Complete(domain.YouTube, h.State, Outcome{Code: "abc"}); err != nil {
			t.Errorf("Complete returned error: %v", err)
		}
	}()

	code, err := h.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}
	if code != "abc" {
		t.Fatalf("code = %q", code)
	}
	if b.Pending() != 0 {
		t.Fatalf("expected no pending handshakes, got %d", b.Pending())
	}
}

func TestHandshakeAccessDenied(t *testing.T) {
	b := NewBroker(time.Minute, logger.Nop())
	h := b.Begin(domain.Instagram)

	if err := b.Complete(domain.Instagram, h.State, Outcome{Error: "access_denied"}); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	_, err := h.Wait(context.Background())
	if !errors.IsCancelled(err) {
		t.Fatalf("expected cancelled error, got %v", err)
	}
}

func TestHandshakeProviderError(t *testing.T) {
	b := NewBroker(time.Minute, logger.Nop())
	h := b.Begin(domain.YouTube)

	_ = b.Complete(domain.YouTube, h.State, Outcome{Error: "server_error", ErrorDescription: "try later"})

	_, err := h.Wait(context.Background())
	if !errors.Is(err, errors.ErrAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
}

func TestHandshakeContextCancelled(t *testing.T) {
	b := NewBroker(time.Minute, logger.Nop())
	h := b.Begin(domain.YouTube)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Wait(ctx)
	if !errors.IsCancelled(err) {
		t.Fatalf("expected cancelled error, got %v", err)
	}
	if err := b.Complete(domain.YouTube, h.State, Outcome{Code: "late"}); err != ErrUnknownState {
		t.Fatalf("expected ErrUnknownState after abandon, got %v", err)
	}
}

func TestHandshakeExpires(t *testing.T) {
	b := NewBroker(10*time.Millisecond, logger.Nop())
	h := b.Begin(domain.YouTube)

	_, err := h.Wait(context.Background())
	if !errors.Is(err, errors.ErrAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
}

func TestCompleteRejectsWrongPlatform(t *testing.T) {
	b := NewBroker(time.Minute, logger.Nop())
	h := b.Begin(domain.YouTube)

	if err := b.Complete(domain.Instagram, h.State, Outcome{Code: "x"}); err != ErrUnknownState {
		t.Fatalf("expected ErrUnknownState, got %v", err)
	}
	if b.Pending() != 1 {
		t.Fatal("handshake must stay pending after mismatched callback")
	}
}
