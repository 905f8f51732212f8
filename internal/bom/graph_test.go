package bom_test

import (
	"testing"

	"github.com/danilo1273/confeitaria/backend-go/internal/bom"
	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
)

func indexOf(ids []int64, id int64) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func TestTopologicalOrderIntermediatesFirst(t *testing.T) {
	// cake (1) consumes filling (2), filling consumes base syrup (3).
	snap := bom.NewSnapshot(
		[]domain.Ingredient{ingredient(1, "açúcar", "kg", 10)},
		[]domain.Product{
			product(1, "bolo", domain.ProductFinished, "un", 1, 0),
			product(2, "recheio", domain.ProductIntermediate, "kg", 2, 0),
			product(3, "calda", domain.ProductIntermediate, "l", 1, 0),
		},
		[]domain.BOMLine{
			bomLine(1, domain.KindProduct, 2, 0.5, "kg", 1),
			bomLine(2, domain.KindProduct, 3, 0.2, "l", 1),
			bomLine(3, domain.KindIngredient, 1, 1, "kg", 1),
		},
		nil,
	)

	order := bom.NewGraph(snap).TopologicalOrder()
	if len(order) != 3 {
		t.Fatalf("order has %d products, want 3", len(order))
	}
	if !(indexOf(order, 3) < indexOf(order, 2) && indexOf(order, 2) < indexOf(order, 1)) {
		t.Fatalf("order %v does not place intermediates before their consumers", order)
	}
}

func TestCycleDetection(t *testing.T) {
	// A (1) -> B (2) -> A is a cycle; C (3) has a clean recipe.
	snap := bom.NewSnapshot(
		[]domain.Ingredient{ingredient(1, "farinha", "kg", 4)},
		[]domain.Product{
			product(1, "a", domain.ProductIntermediate, "un", 1, 0),
			product(2, "b", domain.ProductIntermediate, "un", 1, 0),
			product(3, "c", domain.ProductFinished, "un", 1, 0),
		},
		[]domain.BOMLine{
			bomLine(1, domain.KindProduct, 2, 1, "un", 1),
			bomLine(2, domain.KindProduct, 1, 1, "un", 1),
			bomLine(3, domain.KindIngredient, 1, 0.1, "kg", 1),
		},
		nil,
	)

	graph := bom.NewGraph(snap)

	for _, id := range []int64{1, 2} {
		if !graph.HasCycle(id) {
			t.Errorf("HasCycle(%d) = false, want true", id)
		}
	}
	if graph.HasCycle(3) {
		t.Errorf("HasCycle(3) = true, want false")
	}

	cyclic := graph.CyclicProducts()
	if len(cyclic) != 2 || cyclic[0] != 1 || cyclic[1] != 2 {
		t.Fatalf("CyclicProducts() = %v, want [1 2]", cyclic)
	}

	order := graph.TopologicalOrder()
	if len(order) != 1 || order[0] != 3 {
		t.Fatalf("TopologicalOrder() = %v, want only the clean product", order)
	}
}

func TestSelfReferenceIsCycle(t *testing.T) {
	snap := bom.NewSnapshot(
		nil,
		[]domain.Product{product(1, "a", domain.ProductFinished, "un", 1, 0)},
		[]domain.BOMLine{bomLine(1, domain.KindProduct, 1, 1, "un", 1)},
		nil,
	)

	graph := bom.NewGraph(snap)
	if !graph.HasCycle(1) {
		t.Fatal("self-referencing product not flagged as cycle")
	}
	if len(graph.TopologicalOrder()) != 0 {
		t.Fatalf("TopologicalOrder() = %v, want empty", graph.TopologicalOrder())
	}
}

func TestLinesForKeepsRecipeOrder(t *testing.T) {
	snap := bom.NewSnapshot(
		[]domain.Ingredient{
			ingredient(1, "farinha", "kg", 4),
			ingredient(2, "açúcar", "kg", 10),
		},
		[]domain.Product{product(1, "bolo", domain.ProductFinished, "un", 1, 0)},
		[]domain.BOMLine{
			bomLine(1, domain.KindIngredient, 2, 0.2, "kg", 2),
			bomLine(1, domain.KindIngredient, 1, 0.5, "kg", 1),
		},
		nil,
	)

	lines := bom.NewGraph(snap).LinesFor(1)
	if len(lines) != 2 {
		t.Fatalf("LinesFor(1) has %d lines, want 2", len(lines))
	}
	if lines[0].ComponentID != 1 || lines[1].ComponentID != 2 {
		t.Fatalf("lines not in recipe position order: %+v", lines)
	}
}
