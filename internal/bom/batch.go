// backend-go/internal/bom/batch.go
package bom

import (
	"fmt"
	"sort"

	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
)

// BatchResult maps each stock location to the netted analysis of every open
// order assigned to it. Locations with nothing to act on are omitted.
type BatchResult struct {
	Plans  map[int64][]domain.AnalysisItem `json:"plans"`
	Issues []domain.OrderIssue             `json:"issues,omitempty"`
}

// componentRef keys the running requirement total within one location.
type componentRef struct {
	kind domain.ItemKind
	id   int64
}

// AggregateOrders nets the requirements of all open orders per
// (location, component) pair and assesses availability once per unique
// component per location. Netting happens before analysis so a shortage
// shared by several orders surfaces as one number, never double-counted.
func (e *Engine) AggregateOrders(orders []domain.ProductionOrder) BatchResult {
	result := BatchResult{Plans: make(map[int64][]domain.AnalysisItem)}

	// Running totals per location, with first-appearance ordering so the
	// merged plan still reads like the recipes it came from.
	totals := make(map[int64]map[componentRef]*Requirement)
	ordering := make(map[int64][]componentRef)

	for _, order := range orders {
		if order.Status != "" && order.Status != domain.OrderOpen {
			continue
		}

		resolution, err := e.Resolve(order.ProductID, order.Quantity)
		if err != nil {
			result.Issues = append(result.Issues, domain.OrderIssue{
				OrderID:   order.ID,
				ProductID: order.ProductID,
				Reason:    err.Error(),
			})
			continue
		}
		if resolution.BatchSizeDefaulted {
			result.Issues = append(result.Issues, domain.OrderIssue{
				OrderID:   order.ID,
				ProductID: order.ProductID,
				Reason:    fmt.Sprintf("product %d has no batch size, assumed 1", order.ProductID),
			})
		}

		byComponent := totals[order.LocationID]
		if byComponent == nil {
			byComponent = make(map[componentRef]*Requirement)
			totals[order.LocationID] = byComponent
		}

		for _, req := range resolution.Requirements {
			ref := componentRef{kind: req.ComponentKind, id: req.ComponentID}
			running, ok := byComponent[ref]
			if !ok {
				merged := req
				byComponent[ref] = &merged
				ordering[order.LocationID] = append(ordering[order.LocationID], ref)
				continue
			}
			running.Quantity += req.Quantity
			running.Unconverted = running.Unconverted || req.Unconverted
			running.Unknown = running.Unknown || req.Unknown
		}
	}

	locations := make([]int64, 0, len(totals))
	for locationID := range totals {
		locations = append(locations, locationID)
	}
	sort.Slice(locations, func(i, j int) bool { return locations[i] < locations[j] })

	for _, locationID := range locations {
		refs := ordering[locationID]
		merged := make([]Requirement, 0, len(refs))
		for _, ref := range refs {
			merged = append(merged, *totals[locationID][ref])
		}

		items := e.Analyze(merged, locationID)
		if len(items) == 0 {
			continue
		}
		result.Plans[locationID] = items
	}

	return result
}
