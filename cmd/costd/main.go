// backend-go/cmd/costd/main.go
//
// costd is the cost propagation sidecar. It exposes a minimal trigger
// endpoint and, when configured, reruns the pass on a fixed interval so
// stored unit costs track ingredient price drift without manual triggers.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danilo1273/confeitaria/backend-go/internal/cache"
	"github.com/danilo1273/confeitaria/backend-go/internal/config"
	"github.com/danilo1273/confeitaria/backend-go/internal/repository/postgres"
	"github.com/danilo1273/confeitaria/backend-go/internal/service"
	"github.com/danilo1273/confeitaria/backend-go/pkg/logger"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	cfg := config.Load()
	logger.SetLevel(cfg.Server.Mode)

	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	planCache, err := cache.NewPlanCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Cache unavailable, continuing without it")
		planCache = cache.NewNoopPlanCache()
	}

	costService := service.NewCostService(
		postgres.NewCatalogRepository(db),
		postgres.NewStockRepository(db),
		planCache,
	)

	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	r.HandleFunc("/recalculate", func(w http.ResponseWriter, r *http.Request) {
		tenantID := cfg.Planning.DefaultTenantID

		report, err := costService.Recalculate(r.Context(), tenantID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.Log.Error().Err(err).Msg("Failed to write recalculation report")
		}
	}).Methods("POST")

	addr := fmt.Sprintf(":%s", cfg.Planning.RecostListenPort)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logger.Log.Info().Str("addr", addr).Msg("costd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start costd")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if mins := cfg.Planning.RecostIntervalMins; mins > 0 {
		go runInterval(ctx, costService, cfg.Planning.DefaultTenantID, time.Duration(mins)*time.Minute)
	}

	<-ctx.Done()
	logger.Log.Info().Msg("Shutting down costd...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatal().Err(err).Msg("costd forced to shutdown")
	}
}

func runInterval(ctx context.Context, costService *service.CostService, tenantID int64, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Log.Info().Dur("interval", interval).Msg("Periodic cost recalculation enabled")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report, err := costService.Recalculate(ctx, tenantID)
			if err != nil {
				logger.Log.Error().Err(err).Msg("Periodic recalculation failed")
				continue
			}
			logger.Log.Info().Int("updated", len(report.Updates)).Msg("Periodic recalculation finished")
		}
	}
}
