package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/orgball2608/motivate-ai/internal/authflow"
	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/mediahost"
	"github.com/orgball2608/motivate-ai/internal/ratelimit"
	"github.com/orgball2608/motivate-ai/internal/wizard"
	"github.com/orgball2608/motivate-ai/pkg/config"
	"github.com/orgball2608/motivate-ai/pkg/logger"
	"go.uber.org/fx"
)

const (
	readTimeout     = 30 * time.Second
	writeTimeout    = 5 * time.Minute
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 15 * time.Second
)

// Handshakes receives OAuth redirects.
type Handshakes interface {
	Complete(platform domain.Platform, state string, o authflow.Outcome) error
}

// MediaSource serves published media by token.
type MediaSource interface {
	Get(token string) (mediahost.Item, bool)
}

type Opts struct {
	fx.In

	LC         fx.Lifecycle
	Config     *config.Config
	Logger     logger.Logger
	Wizard     wizard.Client
	Handshakes Handshakes
	Media      MediaSource
}

type Server struct {
	wizard     wizard.Client
	handshakes Handshakes
	media      MediaSource
	limiter    ratelimit.Limiter
	logger     logger.Logger
	origins    []string
	trustProxy bool
}

func New(opts Opts) *Server {
	rl := opts.Config.RateLimit
	s := NewServer(opts.Wizard, opts.Handshakes, opts.Media,
		ratelimit.NewInMemoryLimiter(rl.Requests, rl.Per, rl.Burst),
		opts.Logger, opts.Config.Origins(), opts.Config.App.TrustProxyHeaders)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", opts.Config.App.Port),
		Handler:      s.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
			}
			s.logger.Info("Starting server", "addr", srv.Addr)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.logger.Error("Server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			s.logger.Info("Shutting down server")
			return srv.Shutdown(ctx)
		},
	})

	return s
}

// NewServer builds the handlers. With trustProxy the client address is taken
// from X-Forwarded-For, which a direct caller can forge.
func NewServer(w wizard.Client, hs Handshakes, media MediaSource, limiter ratelimit.Limiter, log logger.Logger, origins []string, trustProxy bool) *Server {
	return &Server{
		wizard:     w,
		handshakes: hs,
		media:      media,
		limiter:    limiter,
		logger:     log.WithComponent("HTTP"),
		origins:    origins,
		trustProxy: trustProxy,
	}
}

// Handler builds the router with CORS, recovery and request logging.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/healthz", s.healthz).Methods(http.MethodGet)
	r.HandleFunc("/auth/{platform}/callback", s.authCallback).Methods(http.MethodGet)
	r.HandleFunc("/media/{token}", s.serveMedia).Methods(http.MethodGet, http.MethodHead)

	api := r.PathPrefix("/api/v1/wizard").Subrouter()
	api.HandleFunc("", s.snapshot).Methods(http.MethodGet)
	api.HandleFunc("/connect/{platform}", s.connect).Methods(http.MethodPost)
	api.HandleFunc("/tone", s.selectTone).Methods(http.MethodPost)
	api.HandleFunc("/voice", s.selectVoice).Methods(http.MethodPost)
	api.Handle("/script", s.limited(s.generateScript)).Methods(http.MethodPost)
	api.Handle("/metadata", s.limited(s.generateMetadata)).Methods(http.MethodPost)
	api.HandleFunc("/metadata", s.editMetadata).Methods(http.MethodPut)
	api.HandleFunc("/playback", s.togglePlayback).Methods(http.MethodPost)
	api.HandleFunc("/preview", s.preview).Methods(http.MethodGet)
	api.HandleFunc("/video", s.attachVideo).Methods(http.MethodPost)
	api.HandleFunc("/upload", s.uploadAll).Methods(http.MethodPost)
	api.HandleFunc("/upload/{platform}", s.upload).Methods(http.MethodPost)
	api.HandleFunc("/next", s.next).Methods(http.MethodPost)
	api.HandleFunc("/restart", s.restart).Methods(http.MethodPost)

	cors := handlers.CORS(
		handlers.AllowedOrigins(s.origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(panicLogger{s.logger}),
		handlers.PrintRecoveryStack(true),
	)

	h := recovery(cors(r))
	if s.trustProxy {
		h = handlers.ProxyHeaders(h)
	}
	return h
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		s.logger.Error("Failed to write response", "Error", err)
	}
}

type panicLogger struct {
	log logger.Logger
}

func (p panicLogger) Println(args ...interface{}) {
	p.log.Error("Panic recovered while serving request", "panic", fmt.Sprint(args...))
}
