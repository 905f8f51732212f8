package bom_test

import (
	"math"

	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func ingredient(id int64, name, unit string, cost float64) domain.Ingredient {
	return domain.Ingredient{ID: id, TenantID: 1, Name: name, StockUnit: unit, Cost: cost}
}

func product(id int64, name string, kind domain.ProductKind, unit string, batchSize, unitCost float64) domain.Product {
	return domain.Product{
		ID: id, TenantID: 1, Name: name, Kind: kind,
		StockUnit: unit, BatchSize: batchSize, UnitCost: unitCost,
	}
}

func bomLine(productID int64, kind domain.ItemKind, componentID int64, qty float64, unit string, position int) domain.BOMLine {
	return domain.BOMLine{
		ProductID: productID, ComponentKind: kind, ComponentID: componentID,
		Quantity: qty, Unit: unit, Position: position,
	}
}

func stockLevel(kind domain.ItemKind, itemID, locationID int64, qty, unitCost float64) domain.StockLevel {
	return domain.StockLevel{Kind: kind, ItemID: itemID, LocationID: locationID, Quantity: qty, UnitCost: unitCost}
}
