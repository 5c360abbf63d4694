// Package server exposes the sitemap and RSS endpoints plus the built
// static site over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Pepryan/siteforge/internal/config"
	"github.com/Pepryan/siteforge/internal/errors"
	"github.com/Pepryan/siteforge/internal/metrics"
)

// Server serves feeds regenerated per request (stateless, idempotent reads
// over the on-disk content) and the static site directory.
type Server struct {
	cfg      *config.Config
	recorder metrics.Recorder
	srv      *http.Server

	// metricsHandler is nil when Prometheus is not wired.
	metricsHandler http.Handler
}

// Options carries optional server collaborators.
type Options struct {
	Recorder       metrics.Recorder
	MetricsHandler http.Handler
}

// New constructs the server wiring.
func New(cfg *config.Config, opts Options) *Server {
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	return &Server{
		cfg:            cfg,
		recorder:       opts.Recorder,
		metricsHandler: opts.MetricsHandler,
	}
}

// Routes builds the handler tree with the logging and recovery middleware
// applied. Exposed for tests.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /sitemap.xml", s.handleSitemap)
	mux.HandleFunc("GET /sitemap-index.xml", s.handleSitemapIndex)
	mux.HandleFunc("GET /rss.xml", s.handleRSS)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.metricsHandler != nil {
		mux.Handle("GET /metrics", s.metricsHandler)
	}
	mux.Handle("/", http.FileServer(http.Dir(s.cfg.Output.Dir)))

	return chain(slog.Default(), s.recorder, mux)
}

// Start binds the port and serves until ctx is cancelled, then shuts down
// gracefully. The port is pre-bound so startup failures surface immediately.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Serve.Port)
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return errors.ServerStartError(err)
	}

	s.srv = &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", slog.String("addr", addr))
		if serr := s.srv.Serve(ln); serr != nil && serr != http.ErrServerClosed {
			errCh <- serr
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if serr := s.srv.Shutdown(shutdownCtx); serr != nil {
			slog.Error("HTTP shutdown error", "error", serr)
		}
		<-errCh
		return nil
	case serr := <-errCh:
		if serr != nil {
			return errors.ServerStartError(serr)
		}
		return nil
	}
}
