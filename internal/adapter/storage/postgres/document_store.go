package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// DocumentStore implements ports.DocumentStore on a single jsonb upsert
// table. One row per logical key.
type DocumentStore struct {
	pool Pool
}

// NewDocumentStore creates a PostgreSQL-backed document store.
func NewDocumentStore(pool Pool) *DocumentStore {
	return &DocumentStore{pool: pool}
}

// Get fetches the document stored under key.
// Returns nil, nil if the key does not exist.
func (s *DocumentStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT doc FROM documents WHERE key = $1`

	var doc []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// Set upserts the document stored under key.
func (s *DocumentStore) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO documents (key, doc, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`

	_, err := s.pool.Exec(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("set document: %w", err)
	}
	return nil
}
