// backend-go/internal/bom/costing.go
package bom

import (
	"fmt"
	"math"

	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
)

// costEpsilon suppresses updates caused by floating-point noise.
const costEpsilon = 1e-4

// CostUpdate is one product whose recomputed unit cost moved by at least
// the epsilon.
type CostUpdate struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	OldCost   float64 `json:"old_cost"`
	NewCost   float64 `json:"new_cost"`
}

// CostWarning is a non-fatal data-quality finding made during the pass.
type CostWarning struct {
	ProductID     int64           `json:"product_id"`
	ComponentID   int64           `json:"component_id"`
	ComponentKind domain.ItemKind `json:"component_kind"`
	Reason        string          `json:"reason"`
}

// CostReport is the change-set of one propagation pass. Cyclic lists the
// products excluded because their recipe graph is miswired; they keep their
// stored cost untouched.
type CostReport struct {
	Updates  []CostUpdate  `json:"updates"`
	Cyclic   []int64       `json:"cyclic,omitempty"`
	Warnings []CostWarning `json:"warnings,omitempty"`
}

// RecalculateCosts walks products in dependency order and recomputes each
// unit cost bottom-up: ingredients contribute their stock-weighted average
// cost scaled by the converted line quantity, nested products contribute the
// cost recomputed earlier in this same pass. The pass is idempotent; running
// it twice on unchanged input yields no further updates.
func (e *Engine) RecalculateCosts() CostReport {
	report := CostReport{Cyclic: e.graph.CyclicProducts()}

	// Working costs seeded from stored values; refreshed as the pass
	// proceeds so consumers always see the freshest figure.
	current := make(map[int64]float64, len(e.snap.Products))
	for id, p := range e.snap.Products {
		current[id] = p.UnitCost
	}

	for _, productID := range e.graph.TopologicalOrder() {
		product := e.snap.Products[productID]
		lines := e.graph.LinesFor(productID)
		if len(lines) == 0 {
			// No recipe: assumed manually priced (pure resale goods).
			continue
		}

		var total float64
		for _, line := range lines {
			switch line.ComponentKind {
			case domain.KindIngredient:
				ing, ok := e.snap.Ingredients[line.ComponentID]
				if !ok {
					report.Warnings = append(report.Warnings, CostWarning{
						ProductID:     productID,
						ComponentID:   line.ComponentID,
						ComponentKind: line.ComponentKind,
						Reason:        "component missing from catalog, contributed zero cost",
					})
					continue
				}

				qty, converted := Convert(
					UnitSpec{Native: ing.StockUnit, Alt: ing.AltUnit, Factor: ing.AltUnitFactor},
					line.Quantity, line.Unit, ing.StockUnit,
				)
				if !converted {
					report.Warnings = append(report.Warnings, CostWarning{
						ProductID:     productID,
						ComponentID:   line.ComponentID,
						ComponentKind: line.ComponentKind,
						Reason:        fmt.Sprintf("no conversion from %q to %q, used raw quantity", line.Unit, ing.StockUnit),
					})
				}
				total += qty * e.weightedIngredientCost(ing)

			case domain.KindProduct:
				if _, ok := e.snap.Products[line.ComponentID]; !ok {
					report.Warnings = append(report.Warnings, CostWarning{
						ProductID:     productID,
						ComponentID:   line.ComponentID,
						ComponentKind: line.ComponentKind,
						Reason:        "component missing from catalog, contributed zero cost",
					})
					continue
				}
				// Nested product cost is defined per native unit; the line
				// quantity multiplies it directly.
				total += line.Quantity * current[line.ComponentID]
			}
		}

		batchSize := product.BatchSize
		if batchSize <= 0 {
			batchSize = 1
		}
		unitCost := total / batchSize

		if math.Abs(unitCost-product.UnitCost) < costEpsilon {
			continue
		}

		current[productID] = unitCost
		report.Updates = append(report.Updates, CostUpdate{
			ProductID: productID,
			Name:      product.Name,
			OldCost:   product.UnitCost,
			NewCost:   unitCost,
		})
	}

	return report
}

// weightedIngredientCost is the quantity-weighted average unit cost of an
// ingredient across all locations, falling back to the flat catalog cost
// when nothing is on hand anywhere.
func (e *Engine) weightedIngredientCost(ing domain.Ingredient) float64 {
	var totalQty, totalValue float64
	for key, level := range e.snap.Stock {
		if key.Kind != domain.KindIngredient || key.ItemID != ing.ID {
			continue
		}
		totalQty += level.Quantity
		totalValue += level.Quantity * level.UnitCost
	}

	if totalQty <= 0 {
		return ing.Cost
	}

	return totalValue / totalQty
}
