package handlers

import (
	"net/http"
	"strconv"

	"github.com/danilo1273/confeitaria/backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service         *service.CatalogService
	defaultTenantID int64
}

func NewCatalogHandler(service *service.CatalogService, defaultTenantID int64) *CatalogHandler {
	return &CatalogHandler{service: service, defaultTenantID: defaultTenantID}
}

// tenantID reads the tenant from the query string, falling back to the
// configured default for single-tenant deployments.
func tenantID(c *gin.Context, fallback int64) int64 {
	if raw := c.Query("tenant_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			return id
		}
	}
	return fallback
}

func (h *CatalogHandler) GetIngredients(c *gin.Context) {
	ingredients, err := h.service.Ingredients(c.Request.Context(), tenantID(c, h.defaultTenantID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch ingredients", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products, err := h.service.Products(c.Request.Context(), tenantID(c, h.defaultTenantID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *CatalogHandler) GetLocations(c *gin.Context) {
	locations, err := h.service.Locations(c.Request.Context(), tenantID(c, h.defaultTenantID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch locations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations})
}
