// Package badgerdb stores ledger snapshots in an embedded BadgerDB under the
// two snapshot keys. This is the default backend: local, durable, no external
// service required.
package badgerdb

import (
	"context"
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"invenpro/backend/internal/domain"
	"invenpro/backend/internal/snapshot"
)

type Archive struct {
	db *badger.DB
}

// Open opens (creating if needed) a BadgerDB database at dir. Badger's own
// logging is disabled; persistence failures surface through the store's
// warning path instead.
func Open(dir string) (*Archive, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", dir, err)
	}
	return &Archive{db: db}, nil
}

// OpenInMemory opens a throwaway in-memory database for tests.
func OpenInMemory() (*Archive, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory badger: %w", err)
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
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.db.View(func(txn *badger.Txn) error {
		entry, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return snapshot.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", key, err)
		}
		return entry.Value(func(val []byte) error {
			if err := json.Unmarshal(val, dest); err != nil {
				return fmt.Errorf("parse %s: %w", key, err)
			}
			return nil
		})
	})
}

func (a *Archive) save(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), payload)
	})
}
