// backend-go/internal/bom/snapshot.go
package bom

import (
	"sort"

	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
)

// StockKey identifies one item's stock at one location.
type StockKey struct {
	Kind       domain.ItemKind
	ItemID     int64
	LocationID int64
}

// Snapshot is the immutable input of one engine invocation: the full catalog,
// every BOM line, and the per-location stock picture, fetched once by the
// caller. The engine performs no I/O of its own.
type Snapshot struct {
	Ingredients map[int64]domain.Ingredient
	Products    map[int64]domain.Product
	Lines       map[int64][]domain.BOMLine
	Stock       map[StockKey]domain.StockLevel
}

// NewSnapshot indexes the fetched rows. BOM lines are ordered by recipe
// position within each product.
func NewSnapshot(
	ingredients []domain.Ingredient,
	products []domain.Product,
	lines []domain.BOMLine,
	stock []domain.StockLevel,
) *Snapshot {
	s := &Snapshot{
		Ingredients: make(map[int64]domain.Ingredient, len(ingredients)),
		Products:    make(map[int64]domain.Product, len(products)),
		Lines:       make(map[int64][]domain.BOMLine, len(products)),
		Stock:       make(map[StockKey]domain.StockLevel, len(stock)),
	}

	for _, ing := range ingredients {
		s.Ingredients[ing.ID] = ing
	}
	for _, p := range products {
		s.Products[p.ID] = p
	}
	for _, line := range lines {
		s.Lines[line.ProductID] = append(s.Lines[line.ProductID], line)
	}
	for id := range s.Lines {
		ordered := s.Lines[id]
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Position < ordered[j].Position
		})
		s.Lines[id] = ordered
	}
	for _, level := range stock {
		s.Stock[StockKey{Kind: level.Kind, ItemID: level.ItemID, LocationID: level.LocationID}] = level
	}

	return s
}

// StockAt returns the on-hand quantity and weighted-average unit cost of an
// item at a location. Items without a stock record hold zero of both.
func (s *Snapshot) StockAt(kind domain.ItemKind, itemID, locationID int64) (float64, float64) {
	level, ok := s.Stock[StockKey{Kind: kind, ItemID: itemID, LocationID: locationID}]
	if !ok {
		return 0, 0
	}

	return level.Quantity, level.UnitCost
}

// unitSpecFor returns the unit declarations of a catalog item. The second
// return is false when the component no longer exists in the catalog.
func (s *Snapshot) unitSpecFor(kind domain.ItemKind, itemID int64) (UnitSpec, bool) {
	switch kind {
	case domain.KindIngredient:
		if ing, ok := s.Ingredients[itemID]; ok {
			return UnitSpec{Native: ing.StockUnit, Alt: ing.AltUnit, Factor: ing.AltUnitFactor}, true
		}
	case domain.KindProduct:
		if p, ok := s.Products[itemID]; ok {
			return UnitSpec{Native: p.StockUnit, Alt: p.AltUnit, Factor: p.AltUnitFactor}, true
		}
	}

	return UnitSpec{}, false
}

// componentName returns the display name of a component, empty when unknown.
func (s *Snapshot) componentName(kind domain.ItemKind, itemID int64) string {
	switch kind {
	case domain.KindIngredient:
		return s.Ingredients[itemID].Name
	case domain.KindProduct:
		return s.Products[itemID].Name
	}

	return ""
}

// Engine resolves requirements, availability, batches, and costs over one
// snapshot. Construction runs cycle detection so no later operation can
// recurse into a miswired recipe graph. Engines are cheap and hold no state
// beyond the snapshot; concurrent invocations build independent engines.
type Engine struct {
	snap  *Snapshot
	graph *Graph
}

// NewEngine builds the recipe graph for the snapshot and flags cycles.
func NewEngine(snap *Snapshot) *Engine {
	return &Engine{
		snap:  snap,
		graph: NewGraph(snap),
	}
}

// Graph exposes the recipe dependency structure.
func (e *Engine) Graph() *Graph {
	return e.graph
}

// CyclicProducts returns the ids of products excluded because their BOM
// participates in a cycle, in ascending order.
func (e *Engine) CyclicProducts() []int64 {
	return e.graph.CyclicProducts()
}
