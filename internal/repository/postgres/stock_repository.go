// backend-go/internal/repository/postgres/stock_repository.go
package postgres

import (
	"context"
	"fmt"

	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type stockRepository struct {
	db *DB
}

func NewStockRepository(db *DB) *stockRepository {
	return &stockRepository{db: db}
}

type stockLevelRow struct {
	Kind       string          `db:"kind"`
	ItemID     int64           `db:"item_id"`
	LocationID int64           `db:"location_id"`
	Quantity   decimal.Decimal `db:"quantity"`
	UnitCost   decimal.Decimal `db:"unit_cost"`
}

func (r *stockRepository) GetStockLevels(ctx context.Context, tenantID int64) ([]domain.StockLevel, error) {
	query := `
		SELECT kind, item_id, location_id,
		       COALESCE(quantity, 0) AS quantity,
		       COALESCE(unit_cost, 0) AS unit_cost
		FROM stock_levels
		WHERE tenant_id = $1
		ORDER BY location_id, kind, item_id
	`

	var rows []stockLevelRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, tenantID); err != nil {
		return nil, fmt.Errorf("failed to list stock levels: %w", err)
	}

	levels := make([]domain.StockLevel, 0, len(rows))
	for _, row := range rows {
		levels = append(levels, domain.StockLevel{
			Kind:       domain.ItemKind(row.Kind),
			ItemID:     row.ItemID,
			LocationID: row.LocationID,
			Quantity:   row.Quantity.InexactFloat64(),
			UnitCost:   row.UnitCost.InexactFloat64(),
		})
	}

	return levels, nil
}

func (r *stockRepository) GetLocations(ctx context.Context, tenantID int64) ([]domain.StockLocation, error) {
	query := `
		SELECT id, name
		FROM stock_locations
		WHERE tenant_id = $1
		ORDER BY name
	`

	var locations []domain.StockLocation
	if err := sqlx.SelectContext(ctx, r.db, &locations, query, tenantID); err != nil {
		return nil, fmt.Errorf("failed to list stock locations: %w", err)
	}

	return locations, nil
}
