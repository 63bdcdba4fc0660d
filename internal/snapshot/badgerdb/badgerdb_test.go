package badgerdb

import (
	"context"
	"errors"
	"reflect"
	"testing"

	badger "github.com/dgraph-io/badger/v4"

	"invenpro/backend/internal/domain"
	"invenpro/backend/internal/snapshot"
)

func newTestArchive(t *testing.T) *Archive {
	t.Helper()
	archive, err := OpenInMemory()
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	t.Cleanup(func() { _ = archive.Close() })
	return archive
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	archive := newTestArchive(t)
	ctx := context.Background()

	items := []domain.InventoryItem{
		{ID: "1", Name: "Laptop", Category: "Elektronik", BuyPrice: 7500000, SellPrice: 8500000, Stock: 15, MinStock: 5, Status: domain.StatusSafe},
		{ID: "2", Name: "Teh Celup", Category: "Minuman", BuyPrice: 8000, SellPrice: 15000, Stock: 5, MinStock: 15, Status: domain.StatusLow},
	}
	txns := []domain.Transaction{
		{ID: "3", Kind: domain.KindSale, ItemName: "Laptop", Quantity: 2, Date: "2026-02-10", SellPrice: 8500000, TotalAmount: 17000000},
		{ID: "4", Kind: domain.KindIncoming, ItemName: "Teh Celup", Quantity: 50, Date: "2026-02-09", Supplier: "PT Teh", TotalCost: 400000},
	}

	if err := archive.SaveItems(ctx, items); err != nil {
		t.Fatalf("save items: %v", err)
	}
	if err := archive.SaveTransactions(ctx, txns); err != nil {
		t.Fatalf("save transactions: %v", err)
	}

	gotItems, err := archive.LoadItems(ctx)
	if err != nil {
		t.Fatalf("load items: %v", err)
	}
	if !reflect.DeepEqual(items, gotItems) {
		t.Fatalf("items did not round-trip:\nwant %+v\ngot  %+v", items, gotItems)
	}

	gotTxns, err := archive.LoadTransactions(ctx)
	if err != nil {
		t.Fatalf("load transactions: %v", err)
	}
	if !reflect.DeepEqual(txns, gotTxns) {
		t.Fatalf("transactions did not round-trip:\nwant %+v\ngot  %+v", txns, gotTxns)
	}
}

func TestLoadMissingRecordReportsNotFound(t *testing.T) {
	archive := newTestArchive(t)

	if _, err := archive.LoadItems(context.Background()); !errors.Is(err, snapshot.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty database, got %v", err)
	}
	if _, err := archive.LoadTransactions(context.Background()); !errors.Is(err, snapshot.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty database, got %v", err)
	}
}

func TestLoadCorruptPayloadReportsParseError(t *testing.T) {
	archive := newTestArchive(t)

	err := archive.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(snapshot.ItemsKey), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("plant corrupt payload: %v", err)
	}

	_, err = archive.LoadItems(context.Background())
	if err == nil || errors.Is(err, snapshot.ErrNotFound) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestSaveOverwritesWholeCollection(t *testing.T) {
	archive := newTestArchive(t)
	ctx := context.Background()

	first := []domain.InventoryItem{{ID: "1", Name: "A", Category: "C", Status: domain.StatusOut}}
	second := []domain.InventoryItem{{ID: "2", Name: "B", Category: "C", Stock: 3, MinStock: 1, Status: domain.StatusSafe}}

	if err := archive.SaveItems(ctx, first); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := archive.SaveItems(ctx, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := archive.LoadItems(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(second, got) {
		t.Fatalf("expected last full write to win, got %+v", got)
	}
}
