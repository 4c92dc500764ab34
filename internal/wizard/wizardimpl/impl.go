package wizardimpl

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/generation"
	"github.com/orgball2608/motivate-ai/internal/history"
	"github.com/orgball2608/motivate-ai/internal/session"
	"github.com/orgball2608/motivate-ai/internal/upload"
	"github.com/orgball2608/motivate-ai/internal/wizard"
	"github.com/orgball2608/motivate-ai/pkg/config"
	"github.com/orgball2608/motivate-ai/pkg/errors"
	"github.com/orgball2608/motivate-ai/pkg/logger"
	"go.uber.org/fx"
)

var ErrStopped = stderrors.New("wizard is not running")

const (
	taskScript   = "script"
	taskMetadata = "metadata"
)

type Opts struct {
	fx.In

	LC         fx.Lifecycle
	Config     *config.Config
	Logger     logger.Logger
	Generation generation.Client
	Upload     upload.Client
	History    history.Client
}

type Timeouts struct {
	Generation time.Duration
	Upload     time.Duration
}

// Controller drives the wizard. Every state read and write happens on the
// loop goroutine; async work posts its completion back as an event.
type Controller struct {
	gen      generation.Client
	up       upload.Client
	history  history.Client
	logger   logger.Logger
	timeouts Timeouts

	events  chan func()
	quit    chan struct{}
	stopped chan struct{}
	start   sync.Once
	stop    sync.Once

	state         *session.State
	epoch         uint64
	seq           map[string]uint64
	handshakes    map[domain.Platform]*handshake
	sessionCtx    context.Context
	cancelSession context.CancelFunc

	pickBackground func() string
}

var _ wizard.Client = (*Controller)(nil)

func New(opts Opts) *Controller {
	c := NewController(opts.Generation, opts.Upload, opts.History, opts.Logger, Timeouts{
		Generation: opts.Config.Upload.GenerationTimeout,
		Upload:     opts.Config.Upload.UploadTimeout,
	})

	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			c.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			c.Stop()
			return nil
		},
	})

	return c
}

func NewController(gen generation.Client, up upload.Client, hist history.Client, log logger.Logger, timeouts Timeouts) *Controller {
	if hist == nil {
		hist = history.Noop{}
	}
	c := &Controller{
		gen:            gen,
		up:             up,
		history:        hist,
		logger:         log.WithComponent("Wizard"),
		timeouts:       timeouts,
		events:         make(chan func()),
		quit:           make(chan struct{}),
		stopped:        make(chan struct{}),
		state:          session.New(),
		seq:            make(map[string]uint64),
		handshakes:     make(map[domain.Platform]*handshake),
		pickBackground: randomBackground,
	}
	c.sessionCtx, c.cancelSession = context.WithCancel(context.Background())
	return c
}

func (c *Controller) Start() {
	c.start.Do(func() {
		go c.run()
		c.logger.Info("Wizard controller started")
	})
}

// Stop ends the loop and cancels in-flight work.
func (c *Controller) Stop() {
	c.stop.Do(func() {
		close(c.quit)
	})
	c.start.Do(func() { close(c.stopped) })
	<-c.stopped
}

func (c *Controller) run() {
	defer close(c.stopped)
	for {
		select {
		case <-c.quit:
			c.cancelSession()
			c.logger.Info("Wizard controller stopped")
			return
		case fn := <-c.events:
			fn()
		}
	}
}

type reply struct {
	view session.View
	err  error
}

// exec runs fn on the loop and returns the resulting snapshot.
func (c *Controller) exec(ctx context.Context, fn func() error) (session.View, error) {
	out := make(chan reply, 1)
	ev := func() {
		err := fn()
		out <- reply{view: c.state.View(), err: err}
	}

	select {
	case c.events <- ev:
	case <-c.stopped:
		return session.View{}, ErrStopped
	case <-ctx.Done():
		return session.View{}, ctx.Err()
	}

	select {
	case r := <-out:
		return r.view, r.err
	case <-ctx.Done():
		return session.View{}, ctx.Err()
	}
}

// post hands a completion from a task goroutine to the loop.
func (c *Controller) post(fn func()) {
	select {
	case c.events <- fn:
	case <-c.stopped:
	}
}

type token struct {
	key   string
	epoch uint64
	seq   uint64
}

// begin supersedes any earlier task with the same key.
func (c *Controller) begin(key string) token {
	c.seq[key]++
	return token{key: key, epoch: c.epoch, seq: c.seq[key]}
}

func (c *Controller) current(t token) bool {
	return t.epoch == c.epoch && c.seq[t.key] == t.seq
}

func (c *Controller) taskContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(c.sessionCtx, timeout)
	}
	return context.WithCancel(c.sessionCtx)
}

func (c *Controller) discard(t token) {
	c.logger.Debug("Discarding stale task result", "task", t.key, "seq", t.seq, "epoch", t.epoch)
}

func wrongStep(action string, want session.Step) error {
	return errors.WrongStep(fmt.Sprintf("%s is only available in the %s step", action, want))
}

// userMessage turns a gateway error into the inline message shown to the user.
func userMessage(err error) string {
	switch {
	case errors.IsCancelled(err):
		return "Connection cancelled"
	case stderrors.Is(err, context.DeadlineExceeded):
		return "The request timed out, please try again"
	}
	return errors.GetMessage(err)
}

func (c *Controller) Snapshot(ctx context.Context) (session.View, error) {
	return c.exec(ctx, func() error { return nil })
}

func (c *Controller) Next(ctx context.Context) (session.View, bool, error) {
	var advanced bool
	view, err := c.exec(ctx, func() error {
		from := c.state.Step
		if !c.state.Advance() {
			return nil
		}
		advanced = true

		switch c.state.Step {
		case session.Metadata:
			c.startMetadata()
		case session.Preview:
			c.state.BackgroundVideo = c.pickBackground()
		}

		c.logger.Info("Wizard advanced", "from", from.String(), "to", c.state.Step.String())
		return nil
	})
	return view, advanced, err
}

func (c *Controller) Restart(ctx context.Context) (session.View, error) {
	return c.exec(ctx, func() error {
		if !c.state.CanRestart() {
			return nil
		}

		c.epoch++
		c.cancelSession()
		c.releaseHandshakes()
		c.sessionCtx, c.cancelSession = context.WithCancel(context.Background())
		c.state = session.New()

		c.logger.Info("Wizard restarted", "epoch", c.epoch)
		return nil
	})
}
