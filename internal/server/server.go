// Package server exposes the prose checker over HTTP: a JSON API and a
// browser playground that re-checks text as it is typed.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/leapstack-labs/writegood/pkg/lint"
	_ "github.com/leapstack-labs/writegood/pkg/lint/rules" // register prose rules
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

// Server is the HTTP server.
type Server struct {
	port     int
	lintCfg  *lint.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *Metrics
	sessions *sessions.CookieStore
}

// Config holds configuration for the server.
type Config struct {
	Port   int
	Lint   *lint.Config // Rules and whitelist used when a request sets no options
	Logger *slog.Logger

	// SessionSecret signs the playground cookie. Empty means a random
	// secret, so sessions do not survive a restart.
	SessionSecret string
}

// New creates a new server instance.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	lintCfg := cfg.Lint
	if lintCfg == nil {
		lintCfg = lint.NewConfig()
	}
	secret := cfg.SessionSecret
	if secret == "" {
		secret = uuid.NewString()
	}
	store := sessions.NewCookieStore([]byte(secret))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode

	reg := newRegistry()
	return &Server{
		port:     cfg.Port,
		lintCfg:  lintCfg,
		logger:   logger,
		registry: reg,
		metrics:  NewMetrics(reg),
		sessions: store,
	}
}

// Handler returns the router with all routes and middleware installed.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(
		requestLogger(s.logger),
		middleware.Recoverer,
		middleware.Compress(5),
	)

	r.Get("/", s.playground)
	r.Post("/check", s.checkSSE)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/check", s.checkJSON)
		r.Get("/rules", s.listRules)
		r.Get("/rules/{name}", s.getRule)
	})

	return r
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
