package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/bloodage/internal/contracts"
)

// PostgresStore persists one formula's batch entries in PostgreSQL.
// The unique (formula, entry_date) key plus ON CONFLICT DO NOTHING
// enforces the append-only contract at the database level: saving a
// merged set never rewrites an already-persisted date.
type PostgresStore struct {
	pool    *pgxpool.Pool
	formula string
}

// NewPostgresStore creates a store for one formula's entries.
func NewPostgresStore(pool *pgxpool.Pool, formulaName string) *PostgresStore {
	return &PostgresStore{
		pool:    pool,
		formula: formulaName,
	}
}

// InitSchema creates the batch entries table if it does not exist.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS batch_entries (
			formula    TEXT NOT NULL,
			entry_date DATE NOT NULL,
			url        TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (formula, entry_date)
		)`

	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("create batch_entries table: %w", err)
	}

	return nil
}

// Load returns the formula's entries sorted by date.
func (s *PostgresStore) Load(ctx context.Context) ([]contracts.BatchEntry, error) {
	query := `
		SELECT entry_date, url
		FROM batch_entries
		WHERE formula = $1
		ORDER BY entry_date`

	rows, err := s.pool.Query(ctx, query, s.formula)
	if err != nil {
		return nil, fmt.Errorf("query batch entries: %w", err)
	}
	defer rows.Close()

	entries := make([]contracts.BatchEntry, 0)
	for rows.Next() {
		var date time.Time
		var url string
		if err := rows.Scan(&date, &url); err != nil {
			return nil, fmt.Errorf("scan batch entry: %w", err)
		}
		entries = append(entries, contracts.BatchEntry{
			Date: date.Format(contracts.DateLayout),
			URL:  url,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batch entries: %w", err)
	}

	return entries, nil
}

// Save inserts any entries whose dates are not yet persisted. Existing
// dates keep their stored record regardless of the incoming value.
func (s *PostgresStore) Save(ctx context.Context, entries []contracts.BatchEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := `
		INSERT INTO batch_entries (formula, entry_date, url)
		VALUES ($1, $2, $3)
		ON CONFLICT (formula, entry_date) DO NOTHING`

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(query, s.formula, e.Date, e.URL)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range entries {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert batch entry: %w", err)
		}
	}

	return nil
}
