package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carpoolreminders/config"
	_ "carpoolreminders/docs"
	"carpoolreminders/internal/app"
	delivery "carpoolreminders/internal/delivery/http"
	"carpoolreminders/internal/delivery/http/controllers"
)

const shutdownTimeout = 10 * time.Second

// @title Carpool Reminders API
// @version 1.0
// @description Builds first-come-first-served carpool groups from a sign-up sheet and schedules volunteer reminder texts.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)

	svcs, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed to build services", "err", err)
		os.Exit(1)
	}

	router := delivery.NewRouter(logger, cfg.AllowedOrigins,
		controllers.NewCarpoolController(logger, svcs.Carpools, cfg.EventCapacity),
		controllers.NewReminderController(logger, svcs.Reminders),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "err", err)
		}
	}
}
