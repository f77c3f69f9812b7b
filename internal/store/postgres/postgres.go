// Package postgres is the pgx-backed Record Store driver. Each document is
// one jsonb row keyed by (collection, pos); Replace swaps the whole
// collection inside a transaction. It keeps the same whole-collection
// contract as the jsonfile driver so the workflow code never changes.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recordshop/vinylstore/internal/store"
)

type Store struct {
	pool *pgxpool.Pool
}

func Connect(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 8
	cfg.MinConns = 1
	cfg.HealthCheckPeriod = 30 * time.Second
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() { s.pool.Close() }

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS records (
			collection TEXT NOT NULL,
			pos        INT  NOT NULL,
			doc        JSONB NOT NULL,
			PRIMARY KEY (collection, pos)
		)`)
	if err != nil {
		return fmt.Errorf("migrate records: %w", err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, c store.Collection) ([]json.RawMessage, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT doc FROM records WHERE collection=$1 ORDER BY pos`, string(c))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c, err)
	}
	defer rows.Close()

	docs := []json.RawMessage{}
	for rows.Next() {
		var d []byte
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("load %s: %w", c, err)
		}
		docs = append(docs, json.RawMessage(d))
	}
	return docs, rows.Err()
}

func (s *Store) Replace(ctx context.Context, c store.Collection, docs []json.RawMessage) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("replace %s: %w", c, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM records WHERE collection=$1`, string(c)); err != nil {
		return fmt.Errorf("replace %s: %w", c, err)
	}
	for i, d := range docs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO records(collection, pos, doc) VALUES ($1, $2, $3)`,
			string(c), i, []byte(d)); err != nil {
			return fmt.Errorf("replace %s: %w", c, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("replace %s: %w", c, err)
	}
	return nil
}
