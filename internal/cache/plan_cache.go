package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danilo1273/confeitaria/backend-go/internal/config"
	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	planKeyPrefix     = "planning:plan"
	planScanBatchSize = 100
)

// PlanCache caches the aggregated production plan per tenant. The plan is
// advisory and recomputed from a fresh snapshot on every miss, so a short
// TTL is enough; writers invalidate on order and cost mutations.
type PlanCache interface {
	GetPlan(ctx context.Context, tenantID int64) (*domain.ProductionPlan, bool, error)
	SetPlan(ctx context.Context, tenantID int64, plan *domain.ProductionPlan) error
	InvalidatePlan(ctx context.Context, tenantID int64) error
	InvalidateAll(ctx context.Context) error
}

type redisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopPlanCache struct{}

func NewPlanCache(cfg config.CacheConfig) (PlanCache, error) {
	if !cfg.Enabled {
		return &noopPlanCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisPlanCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopPlanCache() PlanCache {
	return &noopPlanCache{}
}

func (c *redisPlanCache) GetPlan(ctx context.Context, tenantID int64) (*domain.ProductionPlan, bool, error) {
	payload, err := c.client.Get(ctx, buildPlanKey(tenantID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var plan domain.ProductionPlan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return nil, false, fmt.Errorf("decode production plan cache: %w", err)
	}

	return &plan, true, nil
}

func (c *redisPlanCache) SetPlan(ctx context.Context, tenantID int64, plan *domain.ProductionPlan) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encode production plan cache: %w", err)
	}

	if err := c.client.Set(ctx, buildPlanKey(tenantID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisPlanCache) InvalidatePlan(ctx context.Context, tenantID int64) error {
	return c.client.Del(ctx, buildPlanKey(tenantID)).Err()
}

func (c *redisPlanCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, planKeyPrefix, planScanBatchSize)
}

func (n *noopPlanCache) GetPlan(ctx context.Context, tenantID int64) (*domain.ProductionPlan, bool, error) {
	return nil, false, nil
}

func (n *noopPlanCache) SetPlan(ctx context.Context, tenantID int64, plan *domain.ProductionPlan) error {
	return nil
}

func (n *noopPlanCache) InvalidatePlan(ctx context.Context, tenantID int64) error {
	return nil
}

func (n *noopPlanCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildPlanKey(tenantID int64) string {
	return fmt.Sprintf("%s:%d", planKeyPrefix, tenantID)
}
