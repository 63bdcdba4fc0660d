// Package redisdb stores ledger snapshots as two JSON string values in Redis,
// for deployments that already run one next to the dashboard.
package redisdb

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"invenpro/backend/internal/domain"
	"invenpro/backend/internal/snapshot"
)

type Archive struct {
	client *redis.Client
}

func New(addr string, password string, db int) *Archive {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &Archive{client: client}
}

func (a *Archive) Ping(ctx context.Context) error {
	return a.client.Ping(ctx).Err()
}

func (a *Archive) Close() error {
	return a.client.Close()
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
	val, err := a.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return snapshot.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	return nil
}

func (a *Archive) save(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	// Snapshots never expire; each write replaces the previous one whole.
	return a.client.Set(ctx, key, payload, 0).Err()
}
