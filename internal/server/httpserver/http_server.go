// Package httpserver wires the itemsvc routes, middleware and metrics exposition
// into an http.Server.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/itemsvc/internal/config"
	ferrors "git.home.luguber.info/inful/itemsvc/internal/foundation/errors"
	"git.home.luguber.info/inful/itemsvc/internal/items"
	"git.home.luguber.info/inful/itemsvc/internal/logfields"
	"git.home.luguber.info/inful/itemsvc/internal/metrics"
	"git.home.luguber.info/inful/itemsvc/internal/server/handlers"
	smw "git.home.luguber.info/inful/itemsvc/internal/server/middleware"
)

// Server serves the items API and the metrics endpoint.
type Server struct {
	cfg          *config.Config
	logger       *slog.Logger
	registry     *prometheus.Registry
	recorder     *metrics.PrometheusRecorder
	errorAdapter *ferrors.HTTPErrorAdapter
	handlers     *handlers.Handlers

	handler    http.Handler
	httpServer *http.Server
	addr       net.Addr
}

// New constructs the server, registering the request instruments on the registry.
func New(cfg *config.Config, store items.Store, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	s := &Server{
		cfg:          cfg,
		logger:       opts.Logger,
		registry:     opts.Registry,
		recorder:     metrics.NewPrometheusRecorder(opts.Registry),
		errorAdapter: ferrors.NewHTTPErrorAdapter(opts.Logger),
		handlers:     handlers.New(store, opts.Logger),
	}

	chain := smw.Chain(s.logger, s.errorAdapter, s.recorder, cfg.Metrics.ExcludedPaths)
	s.handler = chain(s.routes())
	return s
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	adapt := func(fn handlers.HandlerFunc) http.Handler { return handlers.Adapt(s.errorAdapter, fn) }

	mux.Handle("GET /health", adapt(s.handlers.HandleHealth))
	mux.Handle("GET /items", adapt(s.handlers.HandleListItems))
	mux.Handle("POST /items", adapt(s.handlers.HandleCreateItem))
	mux.Handle("GET /error", adapt(s.handlers.HandleError))
	mux.Handle("GET /boom", adapt(s.handlers.HandleError))
	mux.Handle("GET /boom-unhandled", adapt(s.handlers.HandleBoomUnhandled))
	mux.Handle("GET "+s.cfg.Metrics.Path, metrics.HTTPHandler(s.registry))
	return mux
}

// Handler returns the fully wrapped root handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Recorder returns the request instruments.
func (s *Server) Recorder() *metrics.PrometheusRecorder {
	return s.recorder
}

// Addr returns the bound listener address, or nil before Start.
func (s *Server) Addr() net.Addr {
	return s.addr
}

// Start binds the configured address and serves in the background. Bind failures are
// returned synchronously.
func (s *Server) Start(ctx context.Context) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("http startup failed: %w", err)
	}
	s.addr = ln.Addr()

	s.httpServer = &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server error", logfields.Error(err))
		}
	}()

	s.logger.Info("HTTP server started", logfields.Addr(s.addr.String()))
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}
