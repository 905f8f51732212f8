package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/danilo1273/confeitaria/backend-go/internal/types"
	"github.com/urfave/cli/v2"
)

func txFromContext(c *cli.Context) (*sql.DB, error) {
	db, ok := c.Context.Value(types.DBKey).(*sql.DB)
	if !ok || db == nil {
		return nil, fmt.Errorf("no database connection in context")
	}
	return db, nil
}

func runCatalogSeeder(c *cli.Context) error {
	db, err := txFromContext(c)
	if err != nil {
		return err
	}
	dataDir := c.String("data-dir")

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	log.Println("Seeding catalog...")

	if err := seedIngredients(ctx, tx, filepath.Join(dataDir, "ingredients.csv")); err != nil {
		return fmt.Errorf("failed to seed ingredients: %w", err)
	}
	if err := seedProducts(ctx, tx, filepath.Join(dataDir, "products.csv")); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	if err := seedBOMLines(ctx, tx, filepath.Join(dataDir, "bom_lines.csv")); err != nil {
		return fmt.Errorf("failed to seed bom lines: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Println("Catalog seeding completed successfully!")
	return nil
}

func seedIngredients(ctx context.Context, tx *sql.Tx, filePath string) error {
	query := `
		INSERT INTO ingredients (id, tenant_id, name, stock_unit, alt_unit, alt_unit_factor, cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			stock_unit = EXCLUDED.stock_unit,
			alt_unit = EXCLUDED.alt_unit,
			alt_unit_factor = EXCLUDED.alt_unit_factor,
			cost = EXCLUDED.cost,
			updated_at = NOW()
	`

	return forEachRecord(filePath, "ingredients", func(get fieldGetter) error {
		_, err := tx.ExecContext(ctx, query,
			get("id"), get("tenant_id"), get("name"), get("stock_unit"),
			nullIfEmpty(get("alt_unit")), zeroIfEmpty(get("alt_unit_factor")), zeroIfEmpty(get("cost")),
		)
		return err
	})
}

func seedProducts(ctx context.Context, tx *sql.Tx, filePath string) error {
	query := `
		INSERT INTO products (id, tenant_id, name, kind, stock_unit, alt_unit, alt_unit_factor, batch_size, unit_cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			kind = EXCLUDED.kind,
			stock_unit = EXCLUDED.stock_unit,
			alt_unit = EXCLUDED.alt_unit,
			alt_unit_factor = EXCLUDED.alt_unit_factor,
			batch_size = EXCLUDED.batch_size,
			unit_cost = EXCLUDED.unit_cost,
			updated_at = NOW()
	`

	return forEachRecord(filePath, "products", func(get fieldGetter) error {
		_, err := tx.ExecContext(ctx, query,
			get("id"), get("tenant_id"), get("name"), get("kind"), get("stock_unit"),
			nullIfEmpty(get("alt_unit")), zeroIfEmpty(get("alt_unit_factor")),
			zeroIfEmpty(get("batch_size")), zeroIfEmpty(get("unit_cost")),
		)
		return err
	})
}

func seedBOMLines(ctx context.Context, tx *sql.Tx, filePath string) error {
	query := `
		INSERT INTO bom_lines (id, product_id, component_kind, component_id, quantity, unit, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			product_id = EXCLUDED.product_id,
			component_kind = EXCLUDED.component_kind,
			component_id = EXCLUDED.component_id,
			quantity = EXCLUDED.quantity,
			unit = EXCLUDED.unit,
			position = EXCLUDED.position
	`

	return forEachRecord(filePath, "bom_lines", func(get fieldGetter) error {
		_, err := tx.ExecContext(ctx, query,
			get("id"), get("product_id"), get("component_kind"), get("component_id"),
			zeroIfEmpty(get("quantity")), get("unit"), zeroIfEmpty(get("position")),
		)
		return err
	})
}

// fieldGetter reads a named column from the current CSV record.
type fieldGetter func(column string) string

// forEachRecord streams a headered CSV file and applies fn per data row.
func forEachRecord(filePath, label string, fn func(get fieldGetter) error) error {
	log.Printf("Seeding %s from %s\n", label, filePath)

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read CSV record: %w", err)
		}

		get := func(column string) string {
			idx, ok := index[column]
			if !ok || idx >= len(record) {
				return ""
			}
			return record[idx]
		}

		if err := fn(get); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", rows+1, err)
		}
		rows++
	}

	log.Printf("Successfully seeded %d %s rows\n", rows, label)
	return nil
}

// zeroIfEmpty keeps NUMERIC columns NOT NULL friendly for sparse CSVs.
func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return "0"
	}
	return s
}
