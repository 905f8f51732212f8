// backend-go/internal/domain/catalog.go
package domain

import "time"

// ItemKind distinguishes the two component kinds a BOM line can reference.
type ItemKind string

const (
	KindIngredient ItemKind = "ingredient"
	KindProduct    ItemKind = "product"
)

// ProductKind distinguishes sellable goods from intermediates used inside other recipes.
type ProductKind string

const (
	ProductFinished     ProductKind = "finished"
	ProductIntermediate ProductKind = "intermediate"
)

// Ingredient represents a raw material purchased from suppliers.
// AltUnit/AltUnitFactor declare an optional secondary unit: one StockUnit
// equals AltUnitFactor units of AltUnit. A factor <= 0 means no conversion.
type Ingredient struct {
	ID            int64     `json:"id" db:"id"`
	TenantID      int64     `json:"tenant_id" db:"tenant_id"`
	Name          string    `json:"name" db:"name"`
	StockUnit     string    `json:"stock_unit" db:"stock_unit"`
	AltUnit       string    `json:"alt_unit,omitempty" db:"alt_unit"`
	AltUnitFactor float64   `json:"alt_unit_factor,omitempty" db:"alt_unit_factor"`
	Cost          float64   `json:"cost" db:"cost"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// Product represents a produced good, finished or intermediate.
// BatchSize is the output quantity of one recipe run, in the product's own
// unit. UnitCost is pooled across locations; stock quantities are not.
type Product struct {
	ID            int64       `json:"id" db:"id"`
	TenantID      int64       `json:"tenant_id" db:"tenant_id"`
	Name          string      `json:"name" db:"name"`
	Kind          ProductKind `json:"kind" db:"kind"`
	StockUnit     string      `json:"stock_unit" db:"stock_unit"`
	AltUnit       string      `json:"alt_unit,omitempty" db:"alt_unit"`
	AltUnitFactor float64     `json:"alt_unit_factor,omitempty" db:"alt_unit_factor"`
	BatchSize     float64     `json:"batch_size" db:"batch_size"`
	UnitCost      float64     `json:"unit_cost" db:"unit_cost"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`
}

// BOMLine is one component requirement of a product's recipe.
// Exactly one of the component kinds applies; the component is never the
// owning product itself.
type BOMLine struct {
	ID            int64    `json:"id" db:"id"`
	ProductID     int64    `json:"product_id" db:"product_id"`
	ComponentKind ItemKind `json:"component_kind" db:"component_kind"`
	ComponentID   int64    `json:"component_id" db:"component_id"`
	Quantity      float64  `json:"quantity" db:"quantity"`
	Unit          string   `json:"unit" db:"unit"`
	Position      int      `json:"position" db:"position"`
}

// StockLocation is an independent physical partition of inventory.
type StockLocation struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// StockLevel is the on-hand quantity and weighted-average unit cost of one
// item at one location.
type StockLevel struct {
	Kind       ItemKind `json:"kind" db:"kind"`
	ItemID     int64    `json:"item_id" db:"item_id"`
	LocationID int64    `json:"location_id" db:"location_id"`
	Quantity   float64  `json:"quantity" db:"quantity"`
	UnitCost   float64  `json:"unit_cost" db:"unit_cost"`
}
