// Package authflow pairs outgoing OAuth consent redirects with the callbacks
// that complete them, so the redirect dance reads as one blocking call.
package authflow

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/pkg/config"
	"github.com/orgball2608/motivate-ai/pkg/errors"
	"github.com/orgball2608/motivate-ai/pkg/logger"
	"go.uber.org/fx"
)

var ErrUnknownState = stderrors.New("unknown or expired oauth state")

// accessDenied is the error value providers send when the user refuses consent.
const accessDenied = "access_denied"

// Outcome is what the provider sent back to the callback.
type Outcome struct {
	Code             string
	Error            string
	ErrorDescription string
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type Broker struct {
	mu      sync.Mutex
	pending map[string]*Handshake
	ttl     time.Duration
	logger  logger.Logger
}

func New(opts Opts) *Broker {
	return NewBroker(opts.Config.Upload.AuthTimeout, opts.Logger)
}

func NewBroker(ttl time.Duration, log logger.Logger) *Broker {
	return &Broker{
		pending: make(map[string]*Handshake),
		ttl:     ttl,
		logger:  log.WithComponent("AuthFlow"),
	}
}

type Handshake struct {
	State    string
	Platform domain.Platform

	done   chan Outcome
	broker *Broker
}

// Begin registers a pending handshake. Its State goes into the consent URL.
func (b *Broker) Begin(platform domain.Platform) *Handshake {
	h := &Handshake{
		State:    uuid.NewString(),
		Platform: platform,
		done:     make(chan Outcome, 1),
		broker:   b,
	}

	b.mu.Lock()
	b.pending[h.State] = h
	b.mu.Unlock()

	b.logger.Debug("Handshake started", "platform", platform, "state", h.State)
	return h
}

// Complete delivers the callback result to the waiting handshake.
func (b *Broker) Complete(platform domain.Platform, state string, o Outcome) error {
	b.mu.Lock()
	h, ok := b.pending[state]
	if ok && h.Platform == platform {
		delete(b.pending, state)
	}
	b.mu.Unlock()

	if !ok || h.Platform != platform {
		b.logger.Warn("Callback for unknown handshake", "platform", platform, "state", state)
		return ErrUnknownState
	}

	h.done <- o
	return nil
}

func (b *Broker) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

func (b *Broker) forget(state string) {
	b.mu.Lock()
	delete(b.pending, state)
	b.mu.Unlock()
}

// Wait blocks until the callback arrives and returns the authorization code.
// A refused consent or a cancelled ctx yields an AuthCancelled error.
func (h *Handshake) Wait(ctx context.Context) (string, error) {
	defer h.broker.forget(h.State)

	var expired <-chan time.Time
	if h.broker.ttl > 0 {
		timer := time.NewTimer(h.broker.ttl)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case <-ctx.Done():
		return "", errors.AuthCancelled("authorization was cancelled")
	case <-expired:
		return "", errors.Auth("authorization timed out", nil)
	case o := <-h.done:
		switch {
		case o.Error == accessDenied:
			return "", errors.AuthCancelled("authorization was denied by the user")
		case o.Error != "":
			msg := o.Error
			if o.ErrorDescription != "" {
				msg += ": " + o.ErrorDescription
			}
			return "", errors.Auth("authorization failed", stderrors.New(msg))
		case o.Code == "":
			return "", errors.Auth("authorization failed", stderrors.New("callback carried no code"))
		}
		return o.Code, nil
	}
}
