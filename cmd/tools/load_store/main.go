// Command load_store seeds a PostgreSQL store from the JSON documents so the
// engine can run with --db-url against the same data.
//
// Usage:
//
//	go run cmd/tools/load_store/main.go [wardrobe.json] [outfits.json]
//
// Requires DATABASE_URL environment variable to be set. The wardrobe table is
// replaced wholesale; the outfits table is replaced only when an outfits
// document is given.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caleb/outfitter/internal/types"
)

const schemaDDL = `
	CREATE TABLE IF NOT EXISTS wardrobe_items (
		id TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		formality_score INT NOT NULL DEFAULT 0,
		capsule_tags TEXT[] NOT NULL DEFAULT '{}',
		silhouette TEXT NOT NULL DEFAULT '',
		layer TEXT NOT NULL DEFAULT '',
		position INT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS outfits (
		id TEXT PRIMARY KEY,
		items TEXT[] NOT NULL,
		tuck TEXT NOT NULL DEFAULT '',
		position INT NOT NULL
	);
`

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	wardrobePath := "data/wardrobe.json"
	outfitsPath := ""
	if len(os.Args) > 1 {
		wardrobePath = os.Args[1]
	}
	if len(os.Args) > 2 {
		outfitsPath = os.Args[2]
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	fmt.Println("=== Store Loader ===")
	fmt.Println()

	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to create tables: %v\n", err)
		os.Exit(1)
	}

	var wardrobe types.WardrobeDocument
	if err := readDocument(wardrobePath, &wardrobe); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	if err := replaceWardrobe(ctx, pool, &wardrobe); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to load wardrobe: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d wardrobe item(s) from %s\n", len(wardrobe.Items), wardrobePath)

	if outfitsPath != "" {
		var corpus types.CorpusDocument
		if err := readDocument(outfitsPath, &corpus); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		if err := replaceOutfits(ctx, pool, &corpus); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to load outfits: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Loaded %d outfit(s) from %s\n", len(corpus.Outfits), outfitsPath)
	}

	fmt.Println()
	fmt.Println("Done.")
}

func readDocument(path string, dest interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed reading %s: %w", path, err)
	}
	if err := json.Unmarshal(content, dest); err != nil {
		return fmt.Errorf("failed parsing %s: %w", path, err)
	}
	return nil
}

func replaceWardrobe(ctx context.Context, pool *pgxpool.Pool, doc *types.WardrobeDocument) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM wardrobe_items`); err != nil {
		return err
	}
	for i, item := range doc.Items {
		tags := item.CapsuleTags
		if tags == nil {
			tags = []string{}
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO wardrobe_items (id, category, name, formality_score, capsule_tags, silhouette, layer, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, item.Category, item.Name, item.FormalityScore, tags, item.Silhouette, item.Layer, i,
		); err != nil {
			return fmt.Errorf("item %s: %w", item.ID, err)
		}
	}
	return tx.Commit(ctx)
}

func replaceOutfits(ctx context.Context, pool *pgxpool.Pool, doc *types.CorpusDocument) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM outfits`); err != nil {
		return err
	}
	for i, outfit := range doc.Outfits {
		if _, err := tx.Exec(ctx,
			`INSERT INTO outfits (id, items, tuck, position) VALUES ($1, $2, $3, $4)`,
			outfit.ID, outfit.Items, outfit.Tuck, i,
		); err != nil {
			return fmt.Errorf("outfit %s: %w", outfit.ID, err)
		}
	}
	return tx.Commit(ctx)
}
