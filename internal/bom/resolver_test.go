package bom_test

import (
	"testing"

	"github.com/danilo1273/confeitaria/backend-go/internal/bom"
	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
)

// The worked example: product with batch size 10 requiring 500 g of a
// kg-denominated ingredient per batch; a 25-unit target yields 1.25 kg.
func newExampleEngine() *bom.Engine {
	snap := bom.NewSnapshot(
		[]domain.Ingredient{ingredient(1, "farinha", "kg", 6)},
		[]domain.Product{product(10, "sonho", domain.ProductFinished, "un", 10, 0)},
		[]domain.BOMLine{bomLine(10, domain.KindIngredient, 1, 500, "g", 1)},
		[]domain.StockLevel{stockLevel(domain.KindIngredient, 1, 1, 1.0, 6)},
	)
	return bom.NewEngine(snap)
}

func TestResolveConvertsToNativeUnit(t *testing.T) {
	resolution, err := newExampleEngine().Resolve(10, 25)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if !almostEqual(resolution.Ratio, 2.5) {
		t.Fatalf("ratio = %v, want 2.5", resolution.Ratio)
	}
	if len(resolution.Requirements) != 1 {
		t.Fatalf("got %d requirements, want 1", len(resolution.Requirements))
	}

	req := resolution.Requirements[0]
	if !almostEqual(req.Quantity, 1.25) {
		t.Errorf("quantity = %v kg, want 1.25", req.Quantity)
	}
	if req.Unit != "kg" {
		t.Errorf("unit = %q, want kg", req.Unit)
	}
	if req.Unconverted || req.Unknown {
		t.Errorf("unexpected flags on %+v", req)
	}
}

func TestResolveRatioLinearity(t *testing.T) {
	engine := newExampleEngine()

	small, err := engine.Resolve(10, 7)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	double, err := engine.Resolve(10, 14)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	for i := range small.Requirements {
		got := double.Requirements[i].Quantity
		want := 2 * small.Requirements[i].Quantity
		if !almostEqual(got, want) {
			t.Errorf("requirement %d: doubled target yields %v, want %v", i, got, want)
		}
	}
}

func TestResolveNormalizesBatchSize(t *testing.T) {
	snap := bom.NewSnapshot(
		[]domain.Ingredient{ingredient(1, "farinha", "kg", 6)},
		[]domain.Product{product(10, "pão", domain.ProductFinished, "un", 0, 0)},
		[]domain.BOMLine{bomLine(10, domain.KindIngredient, 1, 2, "kg", 1)},
		nil,
	)

	resolution, err := bom.NewEngine(snap).Resolve(10, 3)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !resolution.BatchSizeDefaulted {
		t.Error("BatchSizeDefaulted not set for zero batch size")
	}
	if !almostEqual(resolution.Ratio, 3) {
		t.Errorf("ratio = %v, want 3 (batch size normalized to 1)", resolution.Ratio)
	}
	if !almostEqual(resolution.Requirements[0].Quantity, 6) {
		t.Errorf("quantity = %v, want 6", resolution.Requirements[0].Quantity)
	}
}

func TestResolveFlagsUnconvertedUnits(t *testing.T) {
	snap := bom.NewSnapshot(
		[]domain.Ingredient{ingredient(1, "fermento", "kg", 15)},
		[]domain.Product{product(10, "pão", domain.ProductFinished, "un", 10, 0)},
		[]domain.BOMLine{bomLine(10, domain.KindIngredient, 1, 2, "saco", 1)},
		nil,
	)

	resolution, err := bom.NewEngine(snap).Resolve(10, 10)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	req := resolution.Requirements[0]
	if !req.Unconverted {
		t.Fatal("Unconverted flag not set for unknown unit pair")
	}
	if req.Unit != "saco" {
		t.Errorf("unit = %q, want the line unit to be preserved", req.Unit)
	}
	if !almostEqual(req.Quantity, 2) {
		t.Errorf("quantity = %v, want the unconverted 2", req.Quantity)
	}
}

func TestResolveFlagsUnknownComponent(t *testing.T) {
	snap := bom.NewSnapshot(
		nil,
		[]domain.Product{product(10, "pão", domain.ProductFinished, "un", 10, 0)},
		[]domain.BOMLine{bomLine(10, domain.KindIngredient, 99, 2, "kg", 1)},
		nil,
	)

	resolution, err := bom.NewEngine(snap).Resolve(10, 10)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	req := resolution.Requirements[0]
	if !req.Unknown {
		t.Fatal("Unknown flag not set for dangling component reference")
	}
	if req.Quantity != 0 {
		t.Errorf("quantity = %v, want 0 for unknown component", req.Quantity)
	}
}

func TestResolveSingleLevelOnly(t *testing.T) {
	// The finished product consumes an intermediate which itself has a
	// recipe; resolution must not expand into the intermediate's own lines.
	snap := bom.NewSnapshot(
		[]domain.Ingredient{ingredient(1, "açúcar", "kg", 10)},
		[]domain.Product{
			product(10, "torta", domain.ProductFinished, "un", 1, 0),
			product(20, "recheio", domain.ProductIntermediate, "kg", 2, 0),
		},
		[]domain.BOMLine{
			bomLine(10, domain.KindProduct, 20, 0.5, "kg", 1),
			bomLine(20, domain.KindIngredient, 1, 1, "kg", 1),
		},
		nil,
	)

	resolution, err := bom.NewEngine(snap).Resolve(10, 1)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(resolution.Requirements) != 1 {
		t.Fatalf("got %d requirements, want only the direct line", len(resolution.Requirements))
	}
	if resolution.Requirements[0].ComponentKind != domain.KindProduct {
		t.Errorf("component kind = %s, want product", resolution.Requirements[0].ComponentKind)
	}
}

func TestResolveErrors(t *testing.T) {
	engine := newExampleEngine()

	if _, err := engine.Resolve(404, 1); err == nil {
		t.Error("expected error for unknown product, got nil")
	}

	resolution, err := engine.Resolve(10, 0)
	if err != nil {
		t.Fatalf("Resolve with zero target: %v", err)
	}
	if !almostEqual(resolution.Requirements[0].Quantity, 0) {
		t.Errorf("zero target yields quantity %v, want 0", resolution.Requirements[0].Quantity)
	}
}
