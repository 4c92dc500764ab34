package httpapi

import (
	"net"
	"net/http"
	"time"

	"github.com/orgball2608/motivate-ai/pkg/errors"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger.Info("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}

// limited applies the per client rate limit to a handler.
func (s *Server) limited(h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(clientKey(r)) {
			s.respondJSON(w, http.StatusTooManyRequests, errorBody{
				Error: "too many requests, please wait a moment",
				Code:  "rate_limited",
			})
			return
		}
		h(w, r)
	})
}

// clientKey is the remote host, rewritten by ProxyHeaders only for trusted proxies.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

var errMissingPlatform = errors.InvalidInput("platform is required")
