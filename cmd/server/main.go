package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/vanshika/bataanroute/backend/internal/config"
	"github.com/vanshika/bataanroute/backend/internal/dataset"
	"github.com/vanshika/bataanroute/backend/internal/logging"
	"github.com/vanshika/bataanroute/backend/internal/server"
	"github.com/vanshika/bataanroute/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	store, err := dataset.LoadBataan()
	if err != nil {
		var declErr *dataset.DeclarationError
		if errors.As(err, &declErr) {
			for _, e := range declErr.Errors {
				logger.Error("rejected declaration", "error", e)
			}
		}
		logger.Error("failed to build route graph", "error", err)
		os.Exit(1)
	}

	routeService := service.NewRouteService(store)
	summary := routeService.Summary(context.Background())
	logger.Info("route graph loaded", "locations", summary.Locations, "routes", summary.Routes)

	apiHandlers := server.NewAPIHandlers(logger, routeService)

	router := server.NewRouter(logger, server.RouterDependencies{
		Health:           server.GraphHealthService{Routes: routeService},
		API:              apiHandlers,
		AllowedOrigins:   parseAllowedOrigins(cfg.HTTP.AllowedOriginsCSV),
		AllowCredentials: true,
		Compression:      cfg.HTTP.CompressionEnabled,
	})

	srv := server.New(logger, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func parseAllowedOrigins(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	var origins []string
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		origins = append(origins, origin)
	}
	return origins
}
