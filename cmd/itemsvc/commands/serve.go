package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/itemsvc/internal/config"
	"git.home.luguber.info/inful/itemsvc/internal/items"
	"git.home.luguber.info/inful/itemsvc/internal/logfields"
	"git.home.luguber.info/inful/itemsvc/internal/logging"
	"git.home.luguber.info/inful/itemsvc/internal/metrics"
	"git.home.luguber.info/inful/itemsvc/internal/server/httpserver"
	"git.home.luguber.info/inful/itemsvc/internal/tracing"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct{}

func (s *ServeCmd) Run(g *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if root.Verbose {
		cfg.Logging.Level = config.LogLevelDebug
	}
	g.Logger = logging.Setup(cfg.Logging, nil)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return RunServer(ctx, cfg, g.Logger)
}

// RunServer serves until ctx is done, then shuts down within the configured timeout.
func RunServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("tracing setup: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("Tracing shutdown failed", logfields.Error(err))
		}
	}()

	store, err := items.NewStore(cfg.Database)
	if err != nil {
		return err
	}
	if sq, ok := store.(*items.SQLiteStore); ok {
		if err := sq.EnsureSchema(ctx); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	if cfg.Metrics.RuntimeCollectors {
		metrics.RegisterRuntimeCollectors(reg)
	}

	srv := httpserver.New(cfg, store, httpserver.Options{Registry: reg, Logger: logger})
	if err := srv.Start(ctx); err != nil {
		return err
	}
	logger.Info("Serving items API",
		logfields.Addr(srv.Addr().String()),
		logfields.Driver(string(cfg.Database.Driver)))

	<-ctx.Done()
	logger.Info("Shutdown signal received, stopping server...")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer stopCancel()
	return srv.Stop(stopCtx)
}
