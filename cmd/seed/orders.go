package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func runOrderSeeder(c *cli.Context) error {
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

	log.Println("Seeding production orders...")

	if err := seedOrders(ctx, tx, filepath.Join(dataDir, "production_orders.csv")); err != nil {
		return fmt.Errorf("failed to seed production orders: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Println("Order seeding completed successfully!")
	return nil
}

func seedOrders(ctx context.Context, tx *sql.Tx, filePath string) error {
	query := `
		INSERT INTO production_orders (id, tenant_id, product_id, quantity, location_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (id) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			location_id = EXCLUDED.location_id,
			status = EXCLUDED.status
	`

	return forEachRecord(filePath, "production_orders", func(get fieldGetter) error {
		// Rows without an id get a fresh one so the same CSV can mix
		// exported and hand-written orders.
		id := get("id")
		if id == "" {
			id = uuid.NewString()
		}

		status := get("status")
		if status == "" {
			status = "open"
		}

		_, err := tx.ExecContext(ctx, query,
			id, get("tenant_id"), get("product_id"),
			zeroIfEmpty(get("quantity")), get("location_id"), status,
		)
		return err
	})
}
