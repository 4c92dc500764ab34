package wizardimpl

import (
	"context"
	"sync"

	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/session"
	"github.com/orgball2608/motivate-ai/internal/wizard"
	"github.com/orgball2608/motivate-ai/pkg/errors"
)

// handshake tracks one running Authenticate call. ready is closed once the
// consent URL is in the session or the handshake has ended.
type handshake struct {
	ready chan struct{}
	once  sync.Once
}

func (h *handshake) release() {
	h.once.Do(func() { close(h.ready) })
}

// Connect starts the platform handshake and returns once the consent URL is
// known (or the handshake already finished). Callers arriving while a
// handshake is pending wait on the same one and get the same URL. The
// connection itself lands in the session when the handshake completes.
func (c *Controller) Connect(ctx context.Context, platform domain.Platform) (*wizard.ConnectResult, error) {
	var hs *handshake

	view, err := c.exec(ctx, func() error {
		if c.state.Step != session.ConnectAccounts {
			return wrongStep("connecting accounts", session.ConnectAccounts)
		}
		if c.state.Connections.Get(platform).Connected {
			return nil
		}
		if pending, ok := c.handshakes[platform]; ok {
			hs = pending
			return nil
		}
		hs = c.startConnect(platform)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if hs == nil {
		return &wizard.ConnectResult{View: view}, nil
	}

	select {
	case <-hs.ready:
	case <-c.stopped:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	var authURL string
	view, err = c.exec(ctx, func() error {
		authURL = c.state.Connecting[platform]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &wizard.ConnectResult{AuthURL: authURL, View: view}, nil
}

func (c *Controller) startConnect(platform domain.Platform) *handshake {
	tok := c.begin("connect:" + platform.String())
	ctx, cancel := c.taskContext(0)

	hs := &handshake{ready: make(chan struct{})}
	c.handshakes[platform] = hs
	c.state.Connecting[platform] = ""
	delete(c.state.Errors.Connect, platform)

	// The URL is stored on the loop before waiting callers are released.
	present := func(authURL string) {
		c.post(func() {
			if _, ok := c.state.Connecting[platform]; ok && authURL != "" && c.current(tok) {
				c.state.Connecting[platform] = authURL
			}
			hs.release()
		})
	}

	go func() {
		defer hs.release()
		defer cancel()

		creds, err := c.up.Authenticate(ctx, platform, present)
		if err == nil && creds == nil {
			err = errors.Auth("authorization returned no credentials", nil)
		}

		c.post(func() {
			if !c.current(tok) {
				c.discard(tok)
				return
			}
			delete(c.handshakes, platform)
			delete(c.state.Connecting, platform)

			if c.state.Step != session.ConnectAccounts {
				c.logger.Warn("Dropping account connection that finished after leaving the connect step",
					"platform", platform, "step", c.state.Step.String())
				return
			}
			if err != nil {
				c.state.Errors.Connect[platform] = userMessage(err)
				return
			}
			c.state.Connect(platform, *creds)
			c.logger.Info("Account connected", "platform", platform, "username", creds.Username)
		})
	}()

	return hs
}

// releaseHandshakes unblocks callers waiting on handshakes the session no
// longer tracks.
func (c *Controller) releaseHandshakes() {
	for p, hs := range c.handshakes {
		hs.release()
		delete(c.handshakes, p)
	}
}
