package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus-parking/internal/config"
	"campus-parking/internal/logging"
	"campus-parking/internal/parking"
	"campus-parking/internal/server"
)

var (
	mode = flag.String("mode", "server", "Mode to run: cli, server, or both")
	port = flag.String("port", "", "Port for HTTP server (defaults to APP_PORT)")
)

type app struct {
	cfg       *config.Config
	telemetry *parking.TelemetryProvider
	registry  *parking.InstrumentedRegistry
}

func main() {
	flag.Parse()

	cfg := config.Load()
	if *port != "" {
		cfg.Port = *port
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	telemetryProvider, err := newTelemetry(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize telemetry: %v", err)
	}

	logging.Init(cfg.OTelServiceName, cfg.Environment)

	registry, err := parking.NewInstrumentedRegistry(parking.NewSeededRegistry(cfg.ReservedBy), telemetryProvider)
	if err != nil {
		logging.Error(ctx, "failed to create slot registry", slog.String("error", err.Error()))
		os.Exit(1)
	}

	a := &app{cfg: cfg, telemetry: telemetryProvider, registry: registry}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	switch *mode {
	case "cli":
		a.runCLI(ctx, cancel, sigChan)
	case "server":
		a.runServer(ctx, cancel, sigChan)
	case "both":
		a.runBoth(ctx, cancel, sigChan)
	default:
		logging.Error(ctx, "invalid mode; must be cli, server, or both", slog.String("mode", *mode))
		os.Exit(2)
	}
}

func newTelemetry(ctx context.Context, cfg *config.Config) (*parking.TelemetryProvider, error) {
	if !cfg.TelemetryEnabled {
		return parking.NewLocalTelemetryProvider(cfg.OTelServiceName), nil
	}
	return parking.NewTelemetryProvider(ctx, cfg.OTelServiceName, cfg.OTelEndpoint)
}

func (a *app) newServer() *server.Server {
	return server.NewServer(a.cfg.Port, a.registry, a.cfg.OTelServiceName, a.cfg.ActiveBookingsLimit)
}

func (a *app) newShell() *parking.InstrumentedShell {
	return parking.NewInstrumentedShell(a.registry, a.telemetry, os.Stdin, os.Stdout, a.cfg.ActiveBookingsLimit)
}

func (a *app) runCLI(ctx context.Context, cancel context.CancelFunc, sigChan chan os.Signal) {
	go func() {
		<-sigChan
		logging.Info(ctx, "shutting down")
		cancel()
	}()

	a.newShell().Run(ctx)

	a.shutdown()
}

func (a *app) runServer(ctx context.Context, cancel context.CancelFunc, sigChan chan os.Signal) {
	srv := a.newServer()

	go func() {
		<-sigChan
		logging.Info(ctx, "received shutdown signal")
		a.stopServer(srv)
		cancel()
	}()

	logging.Info(ctx, "starting server mode", slog.String("address", srv.GetAddress()))
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Error(ctx, "server error", slog.String("error", err.Error()))
	}

	a.shutdown()
}

func (a *app) runBoth(ctx context.Context, cancel context.CancelFunc, sigChan chan os.Signal) {
	srv := a.newServer()

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- srv.Start()
	}()

	cliDone := make(chan struct{})
	go func() {
		a.newShell().Run(ctx)
		close(cliDone)
	}()

	go func() {
		<-sigChan
		logging.Info(ctx, "received shutdown signal")
		cancel()
	}()

	select {
	case err := <-serverDone:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(ctx, "server error", slog.String("error", err.Error()))
		}
	case <-cliDone:
		logging.Info(ctx, "CLI exited")
	case <-ctx.Done():
		logging.Info(ctx, "context cancelled")
	}

	a.stopServer(srv)
	a.shutdown()
}

func (a *app) stopServer(srv *server.Server) {
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error(shutdownCtx, "server shutdown error", slog.String("error", err.Error()))
	}
}

func (a *app) shutdown() {
	if err := a.registry.Close(); err != nil {
		logging.Warn(context.Background(), "failed to unregister slot gauges", slog.String("error", err.Error()))
	}

	logging.Info(context.Background(), "shutting down telemetry")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := a.telemetry.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down telemetry: %v", err)
	}
}
