// Package server exposes the interpreter over HTTP with one isolated session
// per client.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/notyourimaginarycoder/termfolio/config"
	"github.com/notyourimaginarycoder/termfolio/filesystem"
	"github.com/notyourimaginarycoder/termfolio/internal/util"
	"github.com/notyourimaginarycoder/termfolio/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/puzpuzpuz/xsync/v4"
)

const shutdownTimeout = 5 * time.Second

// Server holds the live sessions and the HTTP listener.
type Server struct {
	cfg      *config.Config
	layout   *filesystem.Layout
	metrics  *metrics.Collector
	gatherer prometheus.Gatherer
	sessions *xsync.Map[string, *session] // maps session IDs to sessions
	count    atomic.Int64                 // live sessions, for MaxSessions
	now      func() time.Time
	srv      *http.Server
}

// New creates a Server whose sessions start from layout (nil for the
// default layout). Metrics are registered with reg; a nil reg gets a fresh
// registry. The layout is validated once here.
func New(cfg *config.Config, layout *filesystem.Layout, reg *prometheus.Registry) (*Server, error) {
	if layout == nil {
		layout = filesystem.DefaultLayout()
	}
	if _, err := filesystem.NewFSFromLayout(layout); err != nil {
		return nil, err
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return &Server{
		cfg:      cfg,
		layout:   layout,
		metrics:  metrics.NewCollector(reg),
		gatherer: reg,
		sessions: xsync.NewMap[string, *session](),
		now:      time.Now,
	}, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/v1/sessions", s.handleCreateSession)
	mux.HandleFunc("POST /api/v1/sessions/{id}/exec", s.handleExec)
	mux.HandleFunc("DELETE /api/v1/sessions/{id}", s.handleDeleteSession)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	return mux
}

// Serve listens on cfg.ListenAddr until ctx is done, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context) error {
	logger := util.GetLogger("Server.Serve")

	s.srv = &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Handler(),
		ErrorLog:          util.NewLogLogger("HTTPServer", util.WarnLevel),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.ListenAndServe()
	}()
	if s.cfg.SessionIdleTimeout > 0 {
		go s.janitor(ctx, min(s.cfg.SessionIdleTimeout, time.Minute))
	}
	logger.Info().Str("addr", s.cfg.ListenAddr).Msg("Serving terminal sessions")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info().Msg("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	}
}

// ServeAsync runs Serve in a goroutine and reports its result on the
// returned channel.
func (s *Server) ServeAsync(ctx context.Context) <-chan error {
	done := make(chan error, 1)

	go func() {
		done <- s.Serve(ctx)
		close(done)
	}()

	return done
}

// janitor evicts idle sessions every interval until ctx is done.
func (s *Server) janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.EvictIdle()
		}
	}
}
