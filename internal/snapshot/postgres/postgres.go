// Package postgres stores ledger snapshots in a single key/payload table,
// one row per record, overwritten on every save.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"invenpro/backend/internal/domain"
	"invenpro/backend/internal/snapshot"
)

type Archive struct {
	db *sql.DB
}

func New(ctx context.Context, databaseURL string) (*Archive, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxIdleConns(4)
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 6*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			key        text PRIMARY KEY,
			payload    jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure snapshots table: %w", err)
	}

	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) LoadItems(ctx context.Context) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	if err := a.load(ctx, snapshot.ItemsKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (a *Archive) LoadTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	if err := a.load(ctx, snapshot.TransactionsKey, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func (a *Archive) SaveItems(ctx context.Context, items []domain.InventoryItem) error {
	return a.save(ctx, snapshot.ItemsKey, items)
}

func (a *Archive) SaveTransactions(ctx context.Context, txns []domain.Transaction) error {
	return a.save(ctx, snapshot.TransactionsKey, txns)
}

func (a *Archive) load(ctx context.Context, key string, dest any) error {
	var payload []byte
	err := a.db.QueryRowContext(ctx, `
		SELECT payload FROM snapshots WHERE key = $1
	`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return snapshot.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	return nil
}

func (a *Archive) save(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = a.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
	`, key, payload)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
