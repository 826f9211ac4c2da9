package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caleb/outfitter/internal/types"
)

// PostgresStore keeps the documents in two tables, one row per wardrobe item
// and one per outfit. Both carry a position column so document order survives
// the round trip; generation depends on it.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore establishes a connection pool and verifies it.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// LoadWardrobe reads every wardrobe item in position order.
func (s *PostgresStore) LoadWardrobe(ctx context.Context) (*types.WardrobeDocument, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, category, name, formality_score, capsule_tags, silhouette, layer
		 FROM wardrobe_items
		 ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query wardrobe items: %w", err)
	}
	defer rows.Close()

	doc := &types.WardrobeDocument{Items: []types.WardrobeItem{}}
	for rows.Next() {
		var item types.WardrobeItem
		if err := rows.Scan(
			&item.ID,
			&item.Category,
			&item.Name,
			&item.FormalityScore,
			&item.CapsuleTags,
			&item.Silhouette,
			&item.Layer,
		); err != nil {
			return nil, fmt.Errorf("failed to scan wardrobe item: %w", err)
		}
		doc.Items = append(doc.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wardrobe items: %w", err)
	}
	return doc, nil
}

// LoadCorpus reads every persisted outfit in position order.
func (s *PostgresStore) LoadCorpus(ctx context.Context) (*types.CorpusDocument, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, items, tuck FROM outfits ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query outfits: %w", err)
	}
	defer rows.Close()

	doc := &types.CorpusDocument{Outfits: []types.CorpusOutfit{}}
	for rows.Next() {
		var outfit types.CorpusOutfit
		if err := rows.Scan(&outfit.ID, &outfit.Items, &outfit.Tuck); err != nil {
			return nil, fmt.Errorf("failed to scan outfit: %w", err)
		}
		doc.Outfits = append(doc.Outfits, outfit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read outfits: %w", err)
	}
	return doc, nil
}

// SaveCorpus rewrites the outfits table as one transaction, so readers never
// see a half-written corpus.
func (s *PostgresStore) SaveCorpus(ctx context.Context, doc *types.CorpusDocument) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin corpus save: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM outfits`); err != nil {
		return fmt.Errorf("failed to clear outfits: %w", err)
	}

	for i, outfit := range doc.Outfits {
		if _, err := tx.Exec(ctx,
			`INSERT INTO outfits (id, items, tuck, position) VALUES ($1, $2, $3, $4)`,
			outfit.ID, outfit.Items, outfit.Tuck, i,
		); err != nil {
			return fmt.Errorf("failed to insert outfit %s: %w", outfit.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit corpus save: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
