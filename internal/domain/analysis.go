// backend-go/internal/domain/analysis.go
package domain

// Status classifies a component after comparing requirement against stock.
// Shortages of ingredients are actionable via purchasing, shortages of
// products via scheduling more production; downstream workflows branch on it.
type Status string

const (
	StatusOK      Status = "ok"
	StatusBuy     Status = "buy"
	StatusProduce Status = "produce"
)

// AnalysisItem is one component of a resolved requirement compared against
// the stock at a single location. Balance = CurrentStock - Required; a
// balance of exactly zero counts as sufficient.
type AnalysisItem struct {
	ComponentID   int64    `json:"component_id"`
	ComponentKind ItemKind `json:"component_kind"`
	Name          string   `json:"name"`
	Unit          string   `json:"unit"`
	Required      float64  `json:"required"`
	CurrentStock  float64  `json:"current_stock"`
	Balance       float64  `json:"balance"`
	Status        Status   `json:"status"`

	// Data-quality flags. Unconverted marks a requirement whose line unit
	// could not be converted into the component's stock unit, so Required
	// and CurrentStock may be denominated differently. Unknown marks a BOM
	// line pointing at a component missing from the catalog.
	Unconverted bool `json:"unconverted,omitempty"`
	Unknown     bool `json:"unknown,omitempty"`
}

// LocationPlan is the netted, analyzed requirement list for one location.
type LocationPlan struct {
	LocationID   int64          `json:"location_id"`
	LocationName string         `json:"location_name"`
	Items        []AnalysisItem `json:"items"`
}

// ProductionPlan is the aggregate over all open orders of a tenant.
type ProductionPlan struct {
	Locations []LocationPlan `json:"locations"`
	Issues    []OrderIssue   `json:"issues,omitempty"`
}

// Simulation is the availability analysis of a single hypothetical order.
type Simulation struct {
	ProductID          int64          `json:"product_id"`
	ProductName        string         `json:"product_name"`
	TargetQuantity     float64        `json:"target_quantity"`
	LocationID         int64          `json:"location_id"`
	LocationName       string         `json:"location_name"`
	Ratio              float64        `json:"ratio"`
	BatchSizeDefaulted bool           `json:"batch_size_defaulted,omitempty"`
	Items              []AnalysisItem `json:"items"`
}
