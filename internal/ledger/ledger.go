// Package ledger owns the inventory item collection and the append-only
// transaction log. All mutations execute under one write lock spanning
// validation, the stock check, the in-memory change, the ledger append, and
// the persistence trigger, so concurrent callers can never both pass a stale
// stock check.
package ledger

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"invenpro/backend/internal/domain"
	"invenpro/backend/internal/ident"
	"invenpro/backend/internal/snapshot"
)

var (
	ErrNotFound          = errors.New("item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidItem       = errors.New("invalid item")
	ErrInvalidQuantity   = errors.New("invalid quantity")
)

type Store struct {
	mu      sync.RWMutex
	items   map[string]domain.InventoryItem
	txns    []domain.Transaction
	ids     *ident.Generator
	archive snapshot.Archive
	now     func() time.Time
}

// Open loads both snapshot records from the archive and builds the store.
// A missing or unparseable record is a normal first-run path: that record
// falls back to the bundled default dataset. The identifier generator is
// seeded past the highest numeric id in the loaded state.
func Open(ctx context.Context, archive snapshot.Archive) (*Store, error) {
	if archive == nil {
		archive = snapshot.Noop{}
	}

	items, err := archive.LoadItems(ctx)
	if err != nil {
		if !errors.Is(err, snapshot.ErrNotFound) {
			log.Printf("[ledger] WARN: loading items snapshot failed (%v), using defaults", err)
		}
		items = seedItems()
	}
	txns, err := archive.LoadTransactions(ctx)
	if err != nil {
		if !errors.Is(err, snapshot.ErrNotFound) {
			log.Printf("[ledger] WARN: loading transactions snapshot failed (%v), using defaults", err)
		}
		txns = seedTransactions()
	}

	byID := make(map[string]domain.InventoryItem, len(items))
	var maxID int64
	for _, item := range items {
		item.Status = domain.DeriveStatus(item.Stock, item.MinStock)
		byID[item.ID] = item
		if n := ident.ParseNumeric(item.ID); n > maxID {
			maxID = n
		}
	}
	for _, txn := range txns {
		if n := ident.ParseNumeric(txn.ID); n > maxID {
			maxID = n
		}
	}

	return &Store{
		items:   byID,
		txns:    txns,
		ids:     ident.NewGenerator(maxID),
		archive: archive,
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}

// CreateItem validates the draft, assigns a fresh identifier, derives status
// and inserts the item. Negative numeric fields are clamped to zero rather
// than rejected.
func (s *Store) CreateItem(ctx context.Context, req domain.ItemCreateRequest) (domain.InventoryItem, error) {
	name := strings.TrimSpace(req.Name)
	category := strings.TrimSpace(req.Category)
	if name == "" || category == "" {
		return domain.InventoryItem{}, ErrInvalidItem
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := domain.InventoryItem{
		ID:          s.ids.Next(),
		Name:        name,
		Category:    category,
		BuyPrice:    clampInt64(req.BuyPrice),
		SellPrice:   clampInt64(req.SellPrice),
		Stock:       clampInt(req.Stock),
		MinStock:    clampInt(req.MinStock),
		Supplier:    strings.TrimSpace(req.Supplier),
		Description: strings.TrimSpace(req.Description),
	}
	item.Status = domain.DeriveStatus(item.Stock, item.MinStock)

	s.items[item.ID] = item
	s.persistItems(ctx)
	return item, nil
}

// UpdateItem merges the provided fields into an existing item and re-derives
// its status. It is an administrative correction: no ledger entry is written.
func (s *Store) UpdateItem(ctx context.Context, id string, req domain.ItemUpdateRequest) (domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[id]
	if !exists {
		return domain.InventoryItem{}, ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.InventoryItem{}, ErrInvalidItem
		}
		item.Name = name
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			return domain.InventoryItem{}, ErrInvalidItem
		}
		item.Category = category
	}
	if req.BuyPrice != nil {
		item.BuyPrice = clampInt64(*req.BuyPrice)
	}
	if req.SellPrice != nil {
		item.SellPrice = clampInt64(*req.SellPrice)
	}
	if req.Stock != nil {
		item.Stock = clampInt(*req.Stock)
	}
	if req.MinStock != nil {
		item.MinStock = clampInt(*req.MinStock)
	}
	if req.Supplier != nil {
		item.Supplier = strings.TrimSpace(*req.Supplier)
	}
	if req.Description != nil {
		item.Description = strings.TrimSpace(*req.Description)
	}
	item.Status = domain.DeriveStatus(item.Stock, item.MinStock)

	s.items[id] = item
	s.persistItems(ctx)
	return item, nil
}

// DeleteItem removes the item if present and reports whether it was found.
// Deleting twice is harmless; historical transactions keep their name
// snapshot and are never touched.
func (s *Store) DeleteItem(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return false, nil
	}
	delete(s.items, id)
	s.persistItems(ctx)
	return true, nil
}

// RecordIncoming increases stock and appends an incoming transaction to the
// ledger head as one unit.
func (s *Store) RecordIncoming(ctx context.Context, req domain.IncomingRequest) (domain.Transaction, error) {
	if req.Quantity <= 0 {
		return domain.Transaction{}, ErrInvalidQuantity
	}
	if req.TotalCost < 0 {
		return domain.Transaction{}, ErrInvalidItem
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[req.ItemID]
	if !exists {
		return domain.Transaction{}, ErrNotFound
	}

	item.Stock += req.Quantity
	item.Status = domain.DeriveStatus(item.Stock, item.MinStock)
	s.items[req.ItemID] = item

	txn := domain.Transaction{
		ID:        s.ids.Next(),
		Kind:      domain.KindIncoming,
		ItemName:  item.Name,
		Quantity:  req.Quantity,
		Date:      s.now().Format(domain.DateLayout),
		Supplier:  strings.TrimSpace(req.Supplier),
		TotalCost: req.TotalCost,
		Notes:     strings.TrimSpace(req.Notes),
	}
	s.txns = append([]domain.Transaction{txn}, s.txns...)

	s.persistItems(ctx)
	s.persistTransactions(ctx)
	return txn, nil
}

// RecordOutgoing is an atomic check-then-act: when the item is missing or
// stock is short, nothing changes and no ledger entry is written. Quantities
// are never partially fulfilled.
func (s *Store) RecordOutgoing(ctx context.Context, req domain.OutgoingRequest) (domain.Transaction, error) {
	if req.Quantity <= 0 {
		return domain.Transaction{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[req.ItemID]
	if !exists {
		return domain.Transaction{}, ErrNotFound
	}
	if item.Stock < req.Quantity {
		return domain.Transaction{}, ErrInsufficientStock
	}

	item.Stock -= req.Quantity
	item.Status = domain.DeriveStatus(item.Stock, item.MinStock)
	s.items[req.ItemID] = item

	txn := domain.Transaction{
		ID:          s.ids.Next(),
		Kind:        domain.KindOutgoing,
		ItemName:    item.Name,
		Quantity:    req.Quantity,
		Date:        s.now().Format(domain.DateLayout),
		Destination: strings.TrimSpace(req.Destination),
		Notes:       strings.TrimSpace(req.Notes),
	}
	s.txns = append([]domain.Transaction{txn}, s.txns...)

	s.persistItems(ctx)
	s.persistTransactions(ctx)
	return txn, nil
}

// RecordSale follows the same check-then-act discipline as RecordOutgoing and
// freezes the item's sell price into the transaction: later price changes
// never rewrite recorded sales.
func (s *Store) RecordSale(ctx context.Context, req domain.SaleRequest) (domain.Transaction, error) {
	if req.Quantity <= 0 {
		return domain.Transaction{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[req.ItemID]
	if !exists {
		return domain.Transaction{}, ErrNotFound
	}
	if item.Stock < req.Quantity {
		return domain.Transaction{}, ErrInsufficientStock
	}

	item.Stock -= req.Quantity
	item.Status = domain.DeriveStatus(item.Stock, item.MinStock)
	s.items[req.ItemID] = item

	txn := domain.Transaction{
		ID:          s.ids.Next(),
		Kind:        domain.KindSale,
		ItemName:    item.Name,
		Quantity:    req.Quantity,
		Date:        s.now().Format(domain.DateLayout),
		SellPrice:   item.SellPrice,
		TotalAmount: item.SellPrice * int64(req.Quantity),
	}
	s.txns = append([]domain.Transaction{txn}, s.txns...)

	s.persistItems(ctx)
	s.persistTransactions(ctx)
	return txn, nil
}

func (s *Store) GetItem(_ context.Context, id string) (domain.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[id]
	if !exists {
		return domain.InventoryItem{}, ErrNotFound
	}
	return item, nil
}

// Items returns a copy of the collection sorted by numeric id (creation
// order), oldest first.
func (s *Store) Items(_ context.Context) []domain.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.itemsLocked()
}

// Transactions returns a copy of the ledger, newest first. kind filters when
// non-empty; limit caps the result when positive.
func (s *Store) Transactions(_ context.Context, kind domain.TransactionKind, limit int) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Transaction, 0, len(s.txns))
	for _, txn := range s.txns {
		if kind != "" && txn.Kind != kind {
			continue
		}
		result = append(result, txn)
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// Snapshot returns a consistent point-in-time copy of both collections for
// projections: readers never observe a half-applied mutation.
func (s *Store) Snapshot(_ context.Context) ([]domain.InventoryItem, []domain.Transaction) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txns := make([]domain.Transaction, len(s.txns))
	copy(txns, s.txns)
	return s.itemsLocked(), txns
}

func (s *Store) itemsLocked() []domain.InventoryItem {
	items := make([]domain.InventoryItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	slices.SortFunc(items, func(a, b domain.InventoryItem) int {
		na, nb := ident.ParseNumeric(a.ID), ident.ParseNumeric(b.ID)
		if na != nb {
			if na < nb {
				return -1
			}
			return 1
		}
		return strings.Compare(a.ID, b.ID)
	})
	return items
}

// persistItems and persistTransactions run inside the write lock so a
// snapshot always reflects a fully applied mutation. A failed write is
// logged; the in-memory change stands.
func (s *Store) persistItems(ctx context.Context) {
	if err := s.archive.SaveItems(ctx, s.itemsLocked()); err != nil {
		log.Printf("[ledger] WARN: persisting items failed: %v", err)
	}
}

func (s *Store) persistTransactions(ctx context.Context) {
	txns := make([]domain.Transaction, len(s.txns))
	copy(txns, s.txns)
	if err := s.archive.SaveTransactions(ctx, txns); err != nil {
		log.Printf("[ledger] WARN: persisting transactions failed: %v", err)
	}
}

func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampInt64(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
