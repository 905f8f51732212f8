package handlers

import (
	"net/http"

	"github.com/danilo1273/confeitaria/backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

type CostHandler struct {
	service         *service.CostService
	defaultTenantID int64
}

func NewCostHandler(service *service.CostService, defaultTenantID int64) *CostHandler {
	return &CostHandler{service: service, defaultTenantID: defaultTenantID}
}

func (h *CostHandler) Recalculate(c *gin.Context) {
	report, err := h.service.Recalculate(c.Request.Context(), tenantID(c, h.defaultTenantID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cost recalculation failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
