// backend-go/internal/repository/catalog_repository.go
package repository

import (
	"context"

	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
)

// CatalogRepository supplies the item catalog and recipe lines of a tenant,
// and accepts the cost updates produced by the cost propagation pass.
type CatalogRepository interface {
	GetIngredients(ctx context.Context, tenantID int64) ([]domain.Ingredient, error)
	GetProducts(ctx context.Context, tenantID int64) ([]domain.Product, error)
	GetBOMLines(ctx context.Context, tenantID int64) ([]domain.BOMLine, error)
	UpdateProductCosts(ctx context.Context, tenantID int64, costs map[int64]float64) error
}
