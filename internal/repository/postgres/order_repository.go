// backend-go/internal/repository/postgres/order_repository.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type orderRepository struct {
	db *DB
}

func NewOrderRepository(db *DB) *orderRepository {
	return &orderRepository{db: db}
}

type orderRow struct {
	ID         uuid.UUID       `db:"id"`
	TenantID   int64           `db:"tenant_id"`
	ProductID  int64           `db:"product_id"`
	Quantity   decimal.Decimal `db:"quantity"`
	LocationID int64           `db:"location_id"`
	Status     string          `db:"status"`
	CreatedAt  time.Time       `db:"created_at"`
}

func (r *orderRepository) GetOpenOrders(ctx context.Context, tenantID int64) ([]domain.ProductionOrder, error) {
	query := `
		SELECT id, tenant_id, product_id, quantity, location_id, status, created_at
		FROM production_orders
		WHERE tenant_id = $1 AND status = 'open'
		ORDER BY created_at
	`

	var rows []orderRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, tenantID); err != nil {
		return nil, fmt.Errorf("failed to list open orders: %w", err)
	}

	orders := make([]domain.ProductionOrder, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, domain.ProductionOrder{
			ID:         row.ID,
			TenantID:   row.TenantID,
			ProductID:  row.ProductID,
			Quantity:   row.Quantity.InexactFloat64(),
			LocationID: row.LocationID,
			Status:     domain.OrderStatus(row.Status),
			CreatedAt:  row.CreatedAt,
		})
	}

	return orders, nil
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *domain.ProductionOrder) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.Status == "" {
		order.Status = domain.OrderOpen
	}

	query := `
		INSERT INTO production_orders (id, tenant_id, product_id, quantity, location_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	_, err := r.db.ExecContext(ctx, query,
		order.ID, order.TenantID, order.ProductID,
		decimal.NewFromFloat(order.Quantity), order.LocationID, string(order.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to insert production order: %w", err)
	}

	return nil
}
