// backend-go/cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danilo1273/confeitaria/backend-go/internal/api"
	"github.com/danilo1273/confeitaria/backend-go/internal/cache"
	"github.com/danilo1273/confeitaria/backend-go/internal/config"
	"github.com/danilo1273/confeitaria/backend-go/internal/repository/postgres"
	"github.com/danilo1273/confeitaria/backend-go/internal/service"
	"github.com/danilo1273/confeitaria/backend-go/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Initialize cache; planning degrades to uncached on failure
	planCache, err := cache.NewPlanCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Cache unavailable, continuing without it")
		planCache = cache.NewNoopPlanCache()
	}

	// Initialize repositories and services
	catalogRepo := postgres.NewCatalogRepository(db)
	stockRepo := postgres.NewStockRepository(db)
	orderRepo := postgres.NewOrderRepository(db)

	services := &api.Services{
		CatalogService:  service.NewCatalogService(catalogRepo, stockRepo),
		PlanningService: service.NewPlanningService(catalogRepo, stockRepo, orderRepo, planCache),
		CostService:     service.NewCostService(catalogRepo, stockRepo, planCache),
	}

	router := api.NewRouter(services, cfg.Planning.DefaultTenantID, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
