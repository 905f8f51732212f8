package bom_test

import (
	"testing"

	"github.com/danilo1273/confeitaria/backend-go/internal/bom"
	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
)

func TestAnalyzeStatuses(t *testing.T) {
	snap := bom.NewSnapshot(
		[]domain.Ingredient{
			ingredient(1, "farinha", "kg", 4),
			ingredient(2, "açúcar", "kg", 10),
		},
		[]domain.Product{
			product(20, "recheio", domain.ProductIntermediate, "kg", 2, 5),
		},
		nil,
		[]domain.StockLevel{
			stockLevel(domain.KindIngredient, 1, 1, 1.0, 4),
			stockLevel(domain.KindIngredient, 2, 1, 2.0, 10),
			stockLevel(domain.KindProduct, 20, 1, 0.5, 5),
		},
	)
	engine := bom.NewEngine(snap)

	requirements := []bom.Requirement{
		{ComponentID: 1, ComponentKind: domain.KindIngredient, Quantity: 1.25, Unit: "kg"},
		{ComponentID: 2, ComponentKind: domain.KindIngredient, Quantity: 2.0, Unit: "kg"},
		{ComponentID: 20, ComponentKind: domain.KindProduct, Quantity: 0.8, Unit: "kg"},
		{ComponentID: 3, ComponentKind: domain.KindIngredient, Quantity: 0, Unit: "kg", Unknown: true},
	}

	items := engine.Analyze(requirements, 1)
	if len(items) != 4 {
		t.Fatalf("got %d items, want 4", len(items))
	}

	tests := []struct {
		idx     int
		balance float64
		status  domain.Status
	}{
		{idx: 0, balance: -0.25, status: domain.StatusBuy},     // short ingredient
		{idx: 1, balance: 0, status: domain.StatusOK},          // exact coverage counts as ok
		{idx: 2, balance: -0.3, status: domain.StatusProduce},  // short intermediate
		{idx: 3, balance: 0, status: domain.StatusOK},          // unknown contributes nothing
	}

	for _, tt := range tests {
		item := items[tt.idx]
		if !almostEqual(item.Balance, tt.balance) {
			t.Errorf("item %d: balance = %v, want %v", tt.idx, item.Balance, tt.balance)
		}
		if item.Status != tt.status {
			t.Errorf("item %d: status = %s, want %s", tt.idx, item.Status, tt.status)
		}
	}

	if !items[3].Unknown {
		t.Error("Unknown flag lost through analysis")
	}
}

func TestAnalyzeMissingStockRecord(t *testing.T) {
	snap := bom.NewSnapshot(
		[]domain.Ingredient{ingredient(1, "farinha", "kg", 4)},
		nil, nil, nil,
	)
	engine := bom.NewEngine(snap)

	items := engine.Analyze([]bom.Requirement{
		{ComponentID: 1, ComponentKind: domain.KindIngredient, Quantity: 2, Unit: "kg"},
	}, 7)

	if items[0].CurrentStock != 0 {
		t.Errorf("current stock = %v, want 0 for missing record", items[0].CurrentStock)
	}
	if items[0].Status != domain.StatusBuy {
		t.Errorf("status = %s, want buy", items[0].Status)
	}
}

func TestAnalyzeEmptyRequirements(t *testing.T) {
	engine := bom.NewEngine(bom.NewSnapshot(nil, nil, nil, nil))
	if items := engine.Analyze(nil, 1); items != nil {
		t.Errorf("Analyze(nil) = %v, want nil", items)
	}
}
