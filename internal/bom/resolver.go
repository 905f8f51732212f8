// backend-go/internal/bom/resolver.go
package bom

import (
	"fmt"

	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
)

// Requirement is one component of a resolved recipe, with the quantity
// expressed in the component's native stock unit whenever a conversion rule
// applied. When Unconverted is set the quantity is still denominated in the
// BOM line's unit; when Unknown is set the component is missing from the
// catalog and the quantity is zero.
type Requirement struct {
	ComponentID   int64           `json:"component_id"`
	ComponentKind domain.ItemKind `json:"component_kind"`
	Name          string          `json:"name"`
	Quantity      float64         `json:"quantity"`
	Unit          string          `json:"unit"`
	Unconverted   bool            `json:"unconverted,omitempty"`
	Unknown       bool            `json:"unknown,omitempty"`
}

// Resolution is the flat component list required to produce TargetQuantity
// units of one product. Expansion is single-level: a component that is
// itself a product stays an opaque stock-holding unit here, and its own
// feasibility is evaluated by resolving it as a target in its own right.
type Resolution struct {
	ProductID          int64         `json:"product_id"`
	TargetQuantity     float64       `json:"target_quantity"`
	Ratio              float64       `json:"ratio"`
	BatchSizeDefaulted bool          `json:"batch_size_defaulted,omitempty"`
	Requirements       []Requirement `json:"requirements"`
}

// Resolve computes the components required to produce targetQty units of a
// product. A product without a BOM resolves to an empty requirement list.
func (e *Engine) Resolve(productID int64, targetQty float64) (*Resolution, error) {
	product, ok := e.snap.Products[productID]
	if !ok {
		return nil, fmt.Errorf("product %d not found in catalog", productID)
	}

	batchSize := product.BatchSize
	defaulted := false
	if batchSize <= 0 {
		// Normalized to one run so the ratio stays defined.
		batchSize = 1
		defaulted = true
	}
	ratio := targetQty / batchSize

	lines := e.graph.LinesFor(productID)
	resolution := &Resolution{
		ProductID:          productID,
		TargetQuantity:     targetQty,
		Ratio:              ratio,
		BatchSizeDefaulted: defaulted,
		Requirements:       make([]Requirement, 0, len(lines)),
	}

	for _, line := range lines {
		req := Requirement{
			ComponentID:   line.ComponentID,
			ComponentKind: line.ComponentKind,
			Name:          e.snap.componentName(line.ComponentKind, line.ComponentID),
			Unit:          line.Unit,
		}

		spec, known := e.snap.unitSpecFor(line.ComponentKind, line.ComponentID)
		if !known {
			// The line outlived its component; contribute nothing but keep
			// the row visible so the caller can warn.
			req.Unknown = true
			resolution.Requirements = append(resolution.Requirements, req)
			continue
		}

		required := line.Quantity * ratio
		converted, ok := Convert(spec, required, line.Unit, spec.Native)
		req.Quantity = converted
		if ok {
			req.Unit = spec.Native
		} else {
			req.Unconverted = true
		}

		resolution.Requirements = append(resolution.Requirements, req)
	}

	return resolution, nil
}
