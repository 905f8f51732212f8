package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/danilo1273/confeitaria/backend-go/internal/bom"
	"github.com/danilo1273/confeitaria/backend-go/internal/cache"
	"github.com/danilo1273/confeitaria/backend-go/internal/repository"
	"github.com/rs/zerolog/log"
)

// CostService runs bottom-up cost propagation passes and persists the
// resulting unit costs. Passes for the same tenant are serialized so two
// concurrent triggers cannot interleave their writes.
type CostService struct {
	catalog repository.CatalogRepository
	stock   repository.StockRepository
	cache   cache.PlanCache

	mu      sync.Mutex
	tenants map[int64]*sync.Mutex
}

func NewCostService(
	catalog repository.CatalogRepository,
	stock repository.StockRepository,
	cacheImpl cache.PlanCache,
) *CostService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopPlanCache()
	}
	return &CostService{
		catalog: catalog,
		stock:   stock,
		cache:   cacheImpl,
		tenants: make(map[int64]*sync.Mutex),
	}
}

func (s *CostService) tenantLock(tenantID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.tenants[tenantID]
	if !ok {
		lock = &sync.Mutex{}
		s.tenants[tenantID] = lock
	}
	return lock
}

// Recalculate recomputes every recipe-bearing product's unit cost for the
// tenant, writes the changed values, and returns the full change-set.
func (s *CostService) Recalculate(ctx context.Context, tenantID int64) (*bom.CostReport, error) {
	lock := s.tenantLock(tenantID)
	lock.Lock()
	defer lock.Unlock()

	ingredients, err := s.catalog.GetIngredients(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}

	products, err := s.catalog.GetProducts(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	lines, err := s.catalog.GetBOMLines(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bom lines: %w", err)
	}

	levels, err := s.stock.GetStockLevels(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock levels: %w", err)
	}

	engine := bom.NewEngine(bom.NewSnapshot(ingredients, products, lines, levels))
	report := engine.RecalculateCosts()

	if len(report.Cyclic) > 0 {
		log.Warn().
			Int64("tenant_id", tenantID).
			Ints64("product_ids", report.Cyclic).
			Msg("costing: cyclic products kept their stored cost")
	}
	for _, warning := range report.Warnings {
		log.Warn().
			Int64("tenant_id", tenantID).
			Int64("product_id", warning.ProductID).
			Int64("component_id", warning.ComponentID).
			Str("component_kind", string(warning.ComponentKind)).
			Msg(warning.Reason)
	}

	if len(report.Updates) > 0 {
		costs := make(map[int64]float64, len(report.Updates))
		for _, update := range report.Updates {
			costs[update.ProductID] = update.NewCost
		}
		if err := s.catalog.UpdateProductCosts(ctx, tenantID, costs); err != nil {
			return nil, fmt.Errorf("failed to persist recomputed costs: %w", err)
		}


		if err := s.cache.InvalidatePlan(ctx, tenantID); err != nil {
			log.Warn().Err(err).Int64("tenant_id", tenantID).Msg("costing: cache invalidate failed")
		}
	}

	log.Info().
		Int64("tenant_id", tenantID).
		Int("updated", len(report.Updates)).
		Int("warnings", len(report.Warnings)).
		Msg("costing: propagation pass finished")

	return &report, nil
}
