// backend-go/internal/bom/availability.go
package bom

import "github.com/danilo1273/confeitaria/backend-go/internal/domain"

// Analyze compares resolved requirements against the stock held at one
// location. Balance is signed: stock minus requirement, with zero counting
// as sufficient. Short ingredients are tagged for purchasing, short products
// for production scheduling.
func (e *Engine) Analyze(requirements []Requirement, locationID int64) []domain.AnalysisItem {
	if len(requirements) == 0 {
		return nil
	}

	items := make([]domain.AnalysisItem, 0, len(requirements))
	for _, req := range requirements {
		current, _ := e.snap.StockAt(req.ComponentKind, req.ComponentID, locationID)
		balance := current - req.Quantity

		status := domain.StatusOK
		if balance < 0 {
			if req.ComponentKind == domain.KindIngredient {
				status = domain.StatusBuy
			} else {
				status = domain.StatusProduce
			}
		}

		items = append(items, domain.AnalysisItem{
			ComponentID:   req.ComponentID,
			ComponentKind: req.ComponentKind,
			Name:          req.Name,
			Unit:          req.Unit,
			Required:      req.Quantity,
			CurrentStock:  current,
			Balance:       balance,
			Status:        status,
			Unconverted:   req.Unconverted,
			Unknown:       req.Unknown,
		})
	}

	return items
}
