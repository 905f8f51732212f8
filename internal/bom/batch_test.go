package bom_test

import (
	"testing"

	"github.com/danilo1273/confeitaria/backend-go/internal/bom"
	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
	"github.com/google/uuid"
)

func openOrder(productID int64, qty float64, locationID int64) domain.ProductionOrder {
	return domain.ProductionOrder{
		ID:         uuid.New(),
		TenantID:   1,
		ProductID:  productID,
		Quantity:   qty,
		LocationID: locationID,
		Status:     domain.OrderOpen,
	}
}

// batchEngine builds the netting example: product 10 (batch size 10) needs
// one unit of intermediate 20 per batch.
func batchEngine() *bom.Engine {
	snap := bom.NewSnapshot(
		nil,
		[]domain.Product{
			product(10, "torta", domain.ProductFinished, "un", 10, 0),
			product(20, "massa", domain.ProductIntermediate, "un", 1, 0),
		},
		[]domain.BOMLine{bomLine(10, domain.KindProduct, 20, 1, "un", 1)},
		[]domain.StockLevel{stockLevel(domain.KindProduct, 20, 1, 1.0, 3)},
	)
	return bom.NewEngine(snap)
}

func TestAggregateNetsBeforeAnalysis(t *testing.T) {
	result := batchEngine().AggregateOrders([]domain.ProductionOrder{
		openOrder(10, 5, 1),
		openOrder(10, 8, 1),
	})

	plan, ok := result.Plans[1]
	if !ok {
		t.Fatal("no plan for location 1")
	}
	if len(plan) != 1 {
		t.Fatalf("got %d lines, want the netted single line", len(plan))
	}

	item := plan[0]
	if !almostEqual(item.Required, 1.3) {
		t.Errorf("required = %v, want 1.3 (0.5 + 0.8)", item.Required)
	}
	if !almostEqual(item.Balance, -0.3) {
		t.Errorf("balance = %v, want -0.3", item.Balance)
	}
	if item.Status != domain.StatusProduce {
		t.Errorf("status = %s, want produce", item.Status)
	}
}

func TestAggregateMatchesIndependentResolution(t *testing.T) {
	engine := batchEngine()

	first, err := engine.Resolve(10, 5)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	second, err := engine.Resolve(10, 8)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := first.Requirements[0].Quantity + second.Requirements[0].Quantity

	result := engine.AggregateOrders([]domain.ProductionOrder{
		openOrder(10, 5, 1),
		openOrder(10, 8, 1),
	})
	if got := result.Plans[1][0].Required; !almostEqual(got, want) {
		t.Errorf("aggregated requirement = %v, want sum of independent resolutions %v", got, want)
	}
}

func TestAggregateGroupsByLocation(t *testing.T) {
	result := batchEngine().AggregateOrders([]domain.ProductionOrder{
		openOrder(10, 5, 1),
		openOrder(10, 20, 2),
	})

	if len(result.Plans) != 2 {
		t.Fatalf("got %d locations, want 2", len(result.Plans))
	}
	if !almostEqual(result.Plans[1][0].Required, 0.5) {
		t.Errorf("location 1 required = %v, want 0.5", result.Plans[1][0].Required)
	}
	if !almostEqual(result.Plans[2][0].Required, 2) {
		t.Errorf("location 2 required = %v, want 2", result.Plans[2][0].Required)
	}
	// Location 2 holds no stock of the intermediate at all.
	if result.Plans[2][0].CurrentStock != 0 {
		t.Errorf("location 2 stock = %v, want 0", result.Plans[2][0].CurrentStock)
	}
}

func TestAggregateSkipsClosedOrders(t *testing.T) {
	closed := openOrder(10, 5, 1)
	closed.Status = domain.OrderClosed

	result := batchEngine().AggregateOrders([]domain.ProductionOrder{closed})
	if len(result.Plans) != 0 {
		t.Fatalf("closed order produced plans: %v", result.Plans)
	}
}

func TestAggregateToleratesRecipelessOrders(t *testing.T) {
	snap := bom.NewSnapshot(
		nil,
		[]domain.Product{product(30, "revenda", domain.ProductFinished, "un", 1, 2)},
		nil,
		nil,
	)

	result := bom.NewEngine(snap).AggregateOrders([]domain.ProductionOrder{openOrder(30, 10, 1)})
	if len(result.Plans) != 0 {
		t.Fatalf("recipe-less order produced plans: %v", result.Plans)
	}
	if len(result.Issues) != 0 {
		t.Fatalf("recipe-less order is a valid input, got issues: %v", result.Issues)
	}
}

func TestAggregateReportsUnknownProductAndContinues(t *testing.T) {
	bad := openOrder(404, 5, 1)
	good := openOrder(10, 5, 1)

	result := batchEngine().AggregateOrders([]domain.ProductionOrder{bad, good})

	if len(result.Issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(result.Issues))
	}
	if result.Issues[0].OrderID != bad.ID {
		t.Errorf("issue order id = %s, want %s", result.Issues[0].OrderID, bad.ID)
	}
	if _, ok := result.Plans[1]; !ok {
		t.Error("valid order was not aggregated alongside the malformed one")
	}
}

func TestAggregateEmptyOrderSet(t *testing.T) {
	result := batchEngine().AggregateOrders(nil)
	if len(result.Plans) != 0 || len(result.Issues) != 0 {
		t.Fatalf("empty order set should report nothing, got %+v", result)
	}
}
