// Package server is the HTTP presentation boundary of the dashboard: it
// validates incoming requests, forwards them to the fetch client and turns
// results or failures into JSON the frontend renders.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kantorfx/kantor"
	"github.com/kantorfx/kantor/instrument"
	"github.com/kantorfx/kantor/internal/config"
	"github.com/kantorfx/kantor/internal/metrics"
)

// Fetcher is the slice of the kantor client the handlers need.
type Fetcher interface {
	Fetch(ctx context.Context, req kantor.FetchRequest) (kantor.RateSeries, error)
	Instruments() []instrument.Instrument
}

type Server struct {
	cfg     *config.Config
	fetcher Fetcher
	metrics *metrics.Metrics
	logger  *slog.Logger
	router  chi.Router
}

func New(cfg *config.Config, fetcher Fetcher, m *metrics.Metrics, logger *slog.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		fetcher: fetcher,
		metrics: m,
		logger:  logger,
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.measureRequests)
		r.Get("/instruments", s.handleInstruments)
		r.Get("/rates/{instrument}", s.handleRates)
	})

	s.router = r

	return s
}

// Router exposes the handler tree, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully. The
// returned channel closes once shutdown finished.
func (s *Server) Start(ctx context.Context) <-chan struct{} {
	srv := &http.Server{
		Addr:         ":" + s.cfg.HTTPServer.Port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.HTTPServer.Timeout,
		WriteTimeout: s.cfg.HTTPServer.Timeout,
		IdleTimeout:  s.cfg.HTTPServer.IdleTimeout,
	}

	done := make(chan struct{})

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("failed to stop server", "error", err)
		}

		close(done)
	}()

	return done
}
