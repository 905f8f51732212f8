// backend-go/internal/bom/graph.go
package bom

import (
	"sort"

	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
)

// Graph is the recipe dependency structure: product -> ordered component
// lines, with edges between products wherever a recipe consumes an
// intermediate. It must be a DAG; products found on a cycle (including
// self-references) are flagged at construction and excluded from any
// topological processing.
type Graph struct {
	lines  map[int64][]domain.BOMLine
	order  []int64
	cyclic map[int64]bool
}

const (
	colorWhite = iota // unvisited
	colorGrey         // on the current DFS path
	colorBlack        // finished
)

// NewGraph runs a DFS over all products, recording a topological order
// (intermediates before the products that consume them) and marking every
// product that sits on a cycle.
func NewGraph(snap *Snapshot) *Graph {
	g := &Graph{
		lines:  snap.Lines,
		cyclic: make(map[int64]bool),
	}

	roots := make([]int64, 0, len(snap.Products))
	for id := range snap.Products {
		roots = append(roots, id)
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })

	state := make(map[int64]int, len(roots))
	var path []int64

	var visit func(id int64)
	visit = func(id int64) {
		state[id] = colorGrey
		path = append(path, id)

		for _, line := range g.lines[id] {
			if line.ComponentKind != domain.KindProduct {
				continue
			}
			child := line.ComponentID
			if child == id {
				// Self-reference is the degenerate cycle.
				g.cyclic[id] = true
				continue
			}
			if _, known := snap.Products[child]; !known {
				// Dangling reference; surfaced as an unknown component
				// during resolution, not a graph error.
				continue
			}
			switch state[child] {
			case colorWhite:
				visit(child)
			case colorGrey:
				g.markCycle(path, child)
			}
		}

		path = path[:len(path)-1]
		state[id] = colorBlack
		if !g.cyclic[id] {
			g.order = append(g.order, id)
		}
	}

	for _, id := range roots {
		if state[id] == colorWhite {
			visit(id)
		}
	}

	return g
}

// markCycle flags every product on the current path from the re-entered node
// onward; those form the cycle.
func (g *Graph) markCycle(path []int64, entry int64) {
	start := 0
	for i, id := range path {
		if id == entry {
			start = i
			break
		}
	}
	for _, id := range path[start:] {
		g.cyclic[id] = true
	}
}

// LinesFor returns the BOM lines of a product in recipe order. A product
// without a recipe returns nil, a valid state.
func (g *Graph) LinesFor(productID int64) []domain.BOMLine {
	return g.lines[productID]
}

// TopologicalOrder returns acyclic product ids, dependencies first.
func (g *Graph) TopologicalOrder() []int64 {
	return g.order
}

// HasCycle reports whether a product's BOM transitively includes itself.
func (g *Graph) HasCycle(productID int64) bool {
	return g.cyclic[productID]
}

// CyclicProducts returns all cycle-flagged product ids in ascending order.
func (g *Graph) CyclicProducts() []int64 {
	if len(g.cyclic) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(g.cyclic))
	for id := range g.cyclic {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
