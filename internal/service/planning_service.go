package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/danilo1273/confeitaria/backend-go/internal/bom"
	"github.com/danilo1273/confeitaria/backend-go/internal/cache"
	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
	"github.com/danilo1273/confeitaria/backend-go/internal/repository"
	"github.com/rs/zerolog/log"
)

// PlanningService answers requirement, simulation, and production-plan
// queries. Each call loads a fresh tenant snapshot and builds an engine over
// it, so results always reflect the stored catalog and stock.
type PlanningService struct {
	catalog repository.CatalogRepository
	stock   repository.StockRepository
	orders  repository.OrderRepository
	cache   cache.PlanCache
}

func NewPlanningService(
	catalog repository.CatalogRepository,
	stock repository.StockRepository,
	orders repository.OrderRepository,
	cacheImpl cache.PlanCache,
) *PlanningService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopPlanCache()
	}
	return &PlanningService{
		catalog: catalog,
		stock:   stock,
		orders:  orders,
		cache:   cacheImpl,
	}
}

func (s *PlanningService) loadEngine(ctx context.Context, tenantID int64) (*bom.Engine, *bom.Snapshot, error) {
	ingredients, err := s.catalog.GetIngredients(ctx, tenantID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load ingredients: %w", err)
	}

	products, err := s.catalog.GetProducts(ctx, tenantID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load products: %w", err)
	}

	lines, err := s.catalog.GetBOMLines(ctx, tenantID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load bom lines: %w", err)
	}

	levels, err := s.stock.GetStockLevels(ctx, tenantID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load stock levels: %w", err)
	}

	snap := bom.NewSnapshot(ingredients, products, lines, levels)
	engine := bom.NewEngine(snap)

	if cyclic := engine.CyclicProducts(); len(cyclic) > 0 {
		log.Warn().
			Int64("tenant_id", tenantID).
			Ints64("product_ids", cyclic).
			Msg("planning: recipe graph contains cycles")
	}

	return engine, snap, nil
}

func (s *PlanningService) locationNames(ctx context.Context, tenantID int64) (map[int64]string, error) {
	locations, err := s.stock.GetLocations(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock locations: %w", err)
	}

	names := make(map[int64]string, len(locations))
	for _, loc := range locations {
		names[loc.ID] = loc.Name
	}
	return names, nil
}

// Requirements resolves the single-level component list for producing a
// target quantity of one product.
func (s *PlanningService) Requirements(ctx context.Context, tenantID, productID int64, targetQty float64) (*bom.Resolution, error) {
	engine, _, err := s.loadEngine(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return engine.Resolve(productID, targetQty)
}

// Simulate resolves a hypothetical order and assesses every requirement
// against the stock at one location, without persisting anything.
func (s *PlanningService) Simulate(ctx context.Context, tenantID, productID int64, targetQty float64, locationID int64) (*domain.Simulation, error) {
	engine, snap, err := s.loadEngine(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	resolution, err := engine.Resolve(productID, targetQty)
	if err != nil {
		return nil, err
	}

	names, err := s.locationNames(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	items := engine.Analyze(resolution.Requirements, locationID)
	if items == nil {
		items = make([]domain.AnalysisItem, 0)
	}

	return &domain.Simulation{
		ProductID:          productID,
		ProductName:        snap.Products[productID].Name,
		TargetQuantity:     targetQty,
		LocationID:         locationID,
		LocationName:       names[locationID],
		Ratio:              resolution.Ratio,
		BatchSizeDefaulted: resolution.BatchSizeDefaulted,
		Items:              items,
	}, nil
}

// PlanOpenOrders aggregates every open order of the tenant into one netted
// plan per location. The plan is cached per tenant until an order or cost
// mutation invalidates it.
func (s *PlanningService) PlanOpenOrders(ctx context.Context, tenantID int64) (*domain.ProductionPlan, error) {
	if plan, ok, err := s.cache.GetPlan(ctx, tenantID); err == nil && ok {
		return plan, nil
	} else if err != nil {
		log.Warn().Err(err).Int64("tenant_id", tenantID).Msg("planning: cache get plan failed")
	}

	engine, _, err := s.loadEngine(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.GetOpenOrders(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load open orders: %w", err)
	}

	names, err := s.locationNames(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	result := engine.AggregateOrders(orders)

	plan := &domain.ProductionPlan{
		Locations: make([]domain.LocationPlan, 0, len(result.Plans)),
		Issues:    result.Issues,
	}
	for locationID, items := range result.Plans {
		plan.Locations = append(plan.Locations, domain.LocationPlan{
			LocationID:   locationID,
			LocationName: names[locationID],
			Items:        items,
		})
	}
	sortLocationPlans(plan.Locations)

	if err := s.cache.SetPlan(ctx, tenantID, plan); err != nil {
		log.Warn().Err(err).Int64("tenant_id", tenantID).Msg("planning: cache set plan failed")
	}

	return plan, nil
}

// OpenOrders lists the tenant's open production orders in creation order.
func (s *PlanningService) OpenOrders(ctx context.Context, tenantID int64) ([]domain.ProductionOrder, error) {
	return s.orders.GetOpenOrders(ctx, tenantID)
}

// CreateOrder persists a new production order and drops the cached plan for
// the tenant so the next plan query sees it.
func (s *PlanningService) CreateOrder(ctx context.Context, order *domain.ProductionOrder) error {
	if order.Quantity <= 0 {
		return fmt.Errorf("order quantity must be positive, got %v", order.Quantity)
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return err
	}

	if err := s.cache.InvalidatePlan(ctx, order.TenantID); err != nil {
		log.Warn().Err(err).Int64("tenant_id", order.TenantID).Msg("planning: cache invalidate failed")
	}

	return nil
}

func sortLocationPlans(plans []domain.LocationPlan) {
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].LocationID < plans[j].LocationID
	})
}
