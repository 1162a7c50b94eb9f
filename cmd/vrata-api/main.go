// Package main is the entry point for the vrata API server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/zapponejosh/vrata-api/internal/api"
	"github.com/zapponejosh/vrata-api/internal/config"
	"github.com/zapponejosh/vrata-api/internal/ephemeris"
	"github.com/zapponejosh/vrata-api/internal/logger"
	"github.com/zapponejosh/vrata-api/internal/registry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.Setup(cfg)

	log.Info("starting vrata API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
		slog.String("ephemeris_provider", cfg.EphemerisProvider),
	)

	reg, err := registry.Open(registry.DefaultConfig(cfg.LocationDBPath), log)
	if err != nil {
		log.Error("failed to open location registry", slog.Any("error", err))
		os.Exit(1)
	}
	defer reg.Close()

	if _, err := reg.Migrate(context.Background()); err != nil {
		log.Error("failed to migrate location registry", slog.Any("error", err))
		os.Exit(1)
	}

	handlers := api.NewHandlers(reg, ephemeris.NewMeeus(), cfg)
	router := api.SetupRoutes(handlers, cfg, log)

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("vrata API ready", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", slog.Any("error", err))
	}
}
