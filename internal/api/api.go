// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/danilo1273/confeitaria/backend-go/internal/api/handlers"
	"github.com/danilo1273/confeitaria/backend-go/internal/api/middleware"
	"github.com/danilo1273/confeitaria/backend-go/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	CatalogService  *service.CatalogService
	PlanningService *service.PlanningService
	CostService     *service.CostService
}

func NewRouter(services *Services, defaultTenantID int64, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Logger(),
		middleware.Recovery(),
	)

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.CatalogService != nil {
			catalogHandler := handlers.NewCatalogHandler(services.CatalogService, defaultTenantID)
			catalogGroup := apiGroup.Group("/catalog")
			{
				catalogGroup.GET("/ingredients", catalogHandler.GetIngredients)
				catalogGroup.GET("/products", catalogHandler.GetProducts)
				catalogGroup.GET("/locations", catalogHandler.GetLocations)
			}
		}

		if services.PlanningService != nil {
			planningHandler := handlers.NewPlanningHandler(services.PlanningService, defaultTenantID)
			planningGroup := apiGroup.Group("/planning")
			{
				planningGroup.POST("/simulate", planningHandler.Simulate)
				planningGroup.GET("/requirements", planningHandler.GetRequirements)
			}

			orderGroup := apiGroup.Group("/orders")
			{
				orderGroup.GET("/open", planningHandler.GetOpenOrders)
				orderGroup.POST("", planningHandler.CreateOrder)
			}
		}

		if services.CostService != nil {
			costHandler := handlers.NewCostHandler(services.CostService, defaultTenantID)
			apiGroup.POST("/costs/recalculate", costHandler.Recalculate)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
