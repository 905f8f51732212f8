// backend-go/internal/repository/stock_repository.go
package repository

import (
	"context"

	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
)

// StockRepository supplies the per-location inventory picture of a tenant.
type StockRepository interface {
	GetStockLevels(ctx context.Context, tenantID int64) ([]domain.StockLevel, error)
	GetLocations(ctx context.Context, tenantID int64) ([]domain.StockLocation, error)
}
