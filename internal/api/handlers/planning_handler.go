package handlers

import (
	"net/http"
	"strconv"

	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
	"github.com/danilo1273/confeitaria/backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

type PlanningHandler struct {
	service         *service.PlanningService
	defaultTenantID int64
}

func NewPlanningHandler(service *service.PlanningService, defaultTenantID int64) *PlanningHandler {
	return &PlanningHandler{service: service, defaultTenantID: defaultTenantID}
}

type simulateRequest struct {
	ProductID  int64   `json:"product_id" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required"`
	LocationID int64   `json:"location_id" binding:"required"`
}

func (h *PlanningHandler) Simulate(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		return
	}

	simulation, err := h.service.Simulate(c.Request.Context(), tenantID(c, h.defaultTenantID), req.ProductID, req.Quantity, req.LocationID)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "simulation failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, simulation)
}

// GetRequirements resolves a single product's component list when product_id
// and quantity are given, otherwise returns the netted plan over all open
// orders of the tenant.
func (h *PlanningHandler) GetRequirements(c *gin.Context) {
	tenant := tenantID(c, h.defaultTenantID)

	rawProduct := c.Query("product_id")
	if rawProduct == "" {
		plan, err := h.service.PlanOpenOrders(c.Request.Context(), tenant)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build production plan", "details": err.Error()})
			return
		}

		if raw := c.Query("status"); raw != "" {
			status, ok := domain.ParseStatus(raw)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
				return
			}
			plan = filterPlanByStatus(plan, status)
		}

		c.JSON(http.StatusOK, plan)
		return
	}

	productID, err := strconv.ParseInt(rawProduct, 10, 64)
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id"})
		return
	}

	quantity, err := strconv.ParseFloat(c.DefaultQuery("quantity", "0"), 64)
	if err != nil || quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		return
	}

	resolution, err := h.service.Requirements(c.Request.Context(), tenant, productID, quantity)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "resolution failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resolution)
}

// filterPlanByStatus keeps only the analysis rows with the given status,
// dropping locations left with no rows. Issues always pass through.
func filterPlanByStatus(plan *domain.ProductionPlan, status domain.Status) *domain.ProductionPlan {
	filtered := &domain.ProductionPlan{Issues: plan.Issues}
	for _, location := range plan.Locations {
		items := make([]domain.AnalysisItem, 0, len(location.Items))
		for _, item := range location.Items {
			if item.Status == status {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}
		filtered.Locations = append(filtered.Locations, domain.LocationPlan{
			LocationID:   location.LocationID,
			LocationName: location.LocationName,
			Items:        items,
		})
	}
	return filtered
}

func (h *PlanningHandler) GetOpenOrders(c *gin.Context) {
	orders, err := h.service.OpenOrders(c.Request.Context(), tenantID(c, h.defaultTenantID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch open orders", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

type createOrderRequest struct {
	ProductID  int64   `json:"product_id" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required"`
	LocationID int64   `json:"location_id" binding:"required"`
}

func (h *PlanningHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	order := domain.ProductionOrder{
		TenantID:   tenantID(c, h.defaultTenantID),
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		LocationID: req.LocationID,
		Status:     domain.OrderOpen,
	}
	if err := h.service.CreateOrder(c.Request.Context(), &order); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "failed to create order", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}
