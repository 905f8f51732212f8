// backend-go/internal/repository/postgres/catalog_repository.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danilo1273/confeitaria/backend-go/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type catalogRepository struct {
	db *DB
}

func NewCatalogRepository(db *DB) *catalogRepository {
	return &catalogRepository{db: db}
}

// Money and quantity columns are NUMERIC; they are scanned as decimals and
// converted to float64 only at the domain boundary.
type ingredientRow struct {
	ID            int64           `db:"id"`
	TenantID      int64           `db:"tenant_id"`
	Name          string          `db:"name"`
	StockUnit     string          `db:"stock_unit"`
	AltUnit       string          `db:"alt_unit"`
	AltUnitFactor decimal.Decimal `db:"alt_unit_factor"`
	Cost          decimal.Decimal `db:"cost"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

type productRow struct {
	ID            int64           `db:"id"`
	TenantID      int64           `db:"tenant_id"`
	Name          string          `db:"name"`
	Kind          string          `db:"kind"`
	StockUnit     string          `db:"stock_unit"`
	AltUnit       string          `db:"alt_unit"`
	AltUnitFactor decimal.Decimal `db:"alt_unit_factor"`
	BatchSize     decimal.Decimal `db:"batch_size"`
	UnitCost      decimal.Decimal `db:"unit_cost"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

type bomLineRow struct {
	ID            int64           `db:"id"`
	ProductID     int64           `db:"product_id"`
	ComponentKind string          `db:"component_kind"`
	ComponentID   int64           `db:"component_id"`
	Quantity      decimal.Decimal `db:"quantity"`
	Unit          string          `db:"unit"`
	Position      int             `db:"position"`
}

func (r *catalogRepository) GetIngredients(ctx context.Context, tenantID int64) ([]domain.Ingredient, error) {
	query := `
		SELECT id, tenant_id, name, stock_unit,
		       COALESCE(alt_unit, '') AS alt_unit,
		       COALESCE(alt_unit_factor, 0) AS alt_unit_factor,
		       COALESCE(cost, 0) AS cost,
		       created_at, updated_at
		FROM ingredients
		WHERE tenant_id = $1
		ORDER BY name
	`

	var rows []ingredientRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, tenantID); err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}

	ingredients := make([]domain.Ingredient, 0, len(rows))
	for _, row := range rows {
		ingredients = append(ingredients, domain.Ingredient{
			ID:            row.ID,
			TenantID:      row.TenantID,
			Name:          row.Name,
			StockUnit:     row.StockUnit,
			AltUnit:       row.AltUnit,
			AltUnitFactor: row.AltUnitFactor.InexactFloat64(),
			Cost:          row.Cost.InexactFloat64(),
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		})
	}

	return ingredients, nil
}

func (r *catalogRepository) GetProducts(ctx context.Context, tenantID int64) ([]domain.Product, error) {
	query := `
		SELECT id, tenant_id, name, kind, stock_unit,
		       COALESCE(alt_unit, '') AS alt_unit,
		       COALESCE(alt_unit_factor, 0) AS alt_unit_factor,
		       COALESCE(batch_size, 0) AS batch_size,
		       COALESCE(unit_cost, 0) AS unit_cost,
		       created_at, updated_at
		FROM products
		WHERE tenant_id = $1
		ORDER BY name
	`

	var rows []productRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, tenantID); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, domain.Product{
			ID:            row.ID,
			TenantID:      row.TenantID,
			Name:          row.Name,
			Kind:          domain.ProductKind(row.Kind),
			StockUnit:     row.StockUnit,
			AltUnit:       row.AltUnit,
			AltUnitFactor: row.AltUnitFactor.InexactFloat64(),
			BatchSize:     row.BatchSize.InexactFloat64(),
			UnitCost:      row.UnitCost.InexactFloat64(),
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		})
	}

	return products, nil
}

func (r *catalogRepository) GetBOMLines(ctx context.Context, tenantID int64) ([]domain.BOMLine, error) {
	query := `
		SELECT l.id, l.product_id, l.component_kind, l.component_id,
		       l.quantity, l.unit, l.position
		FROM bom_lines l
		JOIN products p ON p.id = l.product_id
		WHERE p.tenant_id = $1
		ORDER BY l.product_id, l.position
	`

	var rows []bomLineRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, tenantID); err != nil {
		return nil, fmt.Errorf("failed to list bom lines: %w", err)
	}

	lines := make([]domain.BOMLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, domain.BOMLine{
			ID:            row.ID,
			ProductID:     row.ProductID,
			ComponentKind: domain.ItemKind(row.ComponentKind),
			ComponentID:   row.ComponentID,
			Quantity:      row.Quantity.InexactFloat64(),
			Unit:          row.Unit,
			Position:      row.Position,
		})
	}

	return lines, nil
}

// UpdateProductCosts writes the recomputed unit costs in one transaction so
// a failed pass never leaves the catalog half-repriced.
func (r *catalogRepository) UpdateProductCosts(ctx context.Context, tenantID int64, costs map[int64]float64) error {
	if len(costs) == 0 {
		return nil
	}

	query := `
		UPDATE products
		SET unit_cost = $1, updated_at = NOW()
		WHERE tenant_id = $2 AND id = $3
	`

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		for productID, unitCost := range costs {
			result, err := tx.ExecContext(ctx, query, decimal.NewFromFloat(unitCost), tenantID, productID)
			if err != nil {
				return fmt.Errorf("failed to update cost of product %d: %w", productID, err)
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to read affected rows: %w", err)
			}
			if affected == 0 {
				return fmt.Errorf("product %d not found for tenant %d", productID, tenantID)
			}
		}
		return nil
	})
}
