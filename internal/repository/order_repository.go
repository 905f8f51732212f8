// backend-go/internal/repository/order_repository.go
package repository

import (
	"context"

	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
)

// OrderRepository supplies production orders. The order lifecycle is owned
// by the purchasing subsystem; this engine only reads open orders and the
// seed tooling inserts fixtures.
type OrderRepository interface {
	GetOpenOrders(ctx context.Context, tenantID int64) ([]domain.ProductionOrder, error)
	CreateOrder(ctx context.Context, order *domain.ProductionOrder) error
}
