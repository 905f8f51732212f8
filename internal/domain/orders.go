// backend-go/internal/domain/orders.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of a production order. The lifecycle is
// owned by the purchasing/production subsystem; only open orders participate
// in batch aggregation.
type OrderStatus string

const (
	OrderOpen   OrderStatus = "open"
	OrderClosed OrderStatus = "closed"
)

// ProductionOrder asks for Quantity units of a product to be produced out of
// the stock held at LocationID.
type ProductionOrder struct {
	ID         uuid.UUID   `json:"id" db:"id"`
	TenantID   int64       `json:"tenant_id" db:"tenant_id"`
	ProductID  int64       `json:"product_id" db:"product_id"`
	Quantity   float64     `json:"quantity" db:"quantity"`
	LocationID int64       `json:"location_id" db:"location_id"`
	Status     OrderStatus `json:"status" db:"status"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
}

// OrderIssue records why an order could not contribute to an aggregation.
// Issues are data, not control flow: one malformed order never aborts the
// rest of the batch.
type OrderIssue struct {
	OrderID   uuid.UUID `json:"order_id"`
	ProductID int64     `json:"product_id"`
	Reason    string    `json:"reason"`
}
