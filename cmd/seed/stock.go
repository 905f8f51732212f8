package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"path/filepath"

	"github.com/urfave/cli/v2"
)

func runStockSeeder(c *cli.Context) error {
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

	log.Println("Seeding stock...")

	if err := seedLocations(ctx, tx, filepath.Join(dataDir, "stock_locations.csv")); err != nil {
		return fmt.Errorf("failed to seed stock locations: %w", err)
	}
	if err := seedStockLevels(ctx, tx, filepath.Join(dataDir, "stock_levels.csv")); err != nil {
		return fmt.Errorf("failed to seed stock levels: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Println("Stock seeding completed successfully!")
	return nil
}

func seedLocations(ctx context.Context, tx *sql.Tx, filePath string) error {
	query := `
		INSERT INTO stock_locations (id, tenant_id, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name
	`

	return forEachRecord(filePath, "stock_locations", func(get fieldGetter) error {
		_, err := tx.ExecContext(ctx, query, get("id"), get("tenant_id"), get("name"))
		return err
	})
}

func seedStockLevels(ctx context.Context, tx *sql.Tx, filePath string) error {
	query := `
		INSERT INTO stock_levels (tenant_id, kind, item_id, location_id, quantity, unit_cost)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (tenant_id, kind, item_id, location_id) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			unit_cost = EXCLUDED.unit_cost
	`

	return forEachRecord(filePath, "stock_levels", func(get fieldGetter) error {
		_, err := tx.ExecContext(ctx, query,
			get("tenant_id"), get("kind"), get("item_id"), get("location_id"),
			zeroIfEmpty(get("quantity")), zeroIfEmpty(get("unit_cost")),
		)
		return err
	})
}
