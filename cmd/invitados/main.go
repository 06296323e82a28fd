package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invitados/internal/cli"
	"invitados/internal/core"
	apphttp "invitados/internal/http"
	applog "invitados/internal/log"
	"invitados/internal/services"
	"invitados/internal/worker"
)

func main() {
	cfg, logger := cli.Bootstrap()

	source := cli.NewSource(context.Background(), cfg, logger)
	dash := services.NewDashboard(source, source, core.ConfirmPolicy(cfg.ConfirmPolicy))

	// Load the first snapshot before accepting traffic. A failure is not
	// fatal: the server starts unready and a later reload can recover.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), cfg.ReloadTimeout)
	if err := dash.Reload(loadCtx); err != nil {
		logger.Warn("Initial load failed, starting without data", "error", err)
	}
	loadCancel()

	var refresher *worker.RefreshWorker
	if cfg.RefreshInterval > 0 {
		refresher = worker.NewRefreshWorker(dash, cfg.RefreshInterval, cfg.ReloadTimeout,
			logger.WithComponent(applog.ComponentDashboard))
		refresher.Start()
		logger.Info("Background refresh enabled", "interval", cfg.RefreshInterval)
	}

	srv := apphttp.NewServer(":"+cfg.Port, dash, apphttp.Options{
		ReloadTimeout: cfg.ReloadTimeout,
		Logger:        logger.WithComponent(applog.ComponentHTTP),
	})

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		if refresher != nil {
			refresher.Stop()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting invitados server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
