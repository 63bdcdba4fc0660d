package ledger

import "invenpro/backend/internal/domain"

// seedItems returns the bundled default catalog used when no snapshot exists
// yet (first run) or when a stored record fails to parse.
func seedItems() []domain.InventoryItem {
	items := []domain.InventoryItem{
		{ID: "1", Name: "Laptop ASUS VivoBook", Category: "Elektronik", BuyPrice: 7500000, SellPrice: 8500000, Stock: 15, MinStock: 5, Supplier: "PT Asus Indonesia", Description: "Laptop 14 inch, RAM 8GB"},
		{ID: "2", Name: "Mouse Wireless Logitech", Category: "Elektronik", BuyPrice: 150000, SellPrice: 250000, Stock: 45, MinStock: 10, Supplier: "PT Logitech", Description: "Mouse wireless 2.4GHz"},
		{ID: "3", Name: "Kopi Arabica 250gr", Category: "Makanan & Minuman", BuyPrice: 45000, SellPrice: 75000, Stock: 3, MinStock: 10, Supplier: "CV Kopi Nusantara", Description: "Kopi arabica premium"},
		{ID: "4", Name: "Kaos Polos Cotton", Category: "Pakaian", BuyPrice: 35000, SellPrice: 65000, Stock: 0, MinStock: 20, Supplier: "PT Textile Indo", Description: "Kaos cotton combed 30s"},
		{ID: "5", Name: "Pulpen Pilot G2", Category: "Alat Tulis", BuyPrice: 12000, SellPrice: 18000, Stock: 120, MinStock: 30, Supplier: "PT Pilot Pen", Description: "Pulpen gel 0.5mm"},
		{ID: "6", Name: "Keyboard Mechanical", Category: "Elektronik", BuyPrice: 450000, SellPrice: 650000, Stock: 8, MinStock: 5, Supplier: "PT Keyboard Indo", Description: "Keyboard TKL blue switch"},
		{ID: "7", Name: "Teh Celup 25pcs", Category: "Makanan & Minuman", BuyPrice: 8000, SellPrice: 15000, Stock: 5, MinStock: 15, Supplier: "PT Teh Nusantara", Description: "Teh hitam celup"},
		{ID: "8", Name: "Sapu Ijuk Premium", Category: "Peralatan Rumah", BuyPrice: 25000, SellPrice: 45000, Stock: 22, MinStock: 10, Supplier: "CV Bersih Jaya", Description: "Sapu ijuk kualitas A"},
		{ID: "9", Name: "Headset Gaming", Category: "Elektronik", BuyPrice: 200000, SellPrice: 350000, Stock: 2, MinStock: 5, Supplier: "PT Audio Tech", Description: "Headset 7.1 surround"},
		{ID: "10", Name: "Buku Tulis A5", Category: "Alat Tulis", BuyPrice: 5000, SellPrice: 8000, Stock: 200, MinStock: 50, Supplier: "PT Sinar Dunia", Description: "Buku tulis 80 halaman"},
	}
	for i := range items {
		items[i].Status = domain.DeriveStatus(items[i].Stock, items[i].MinStock)
	}
	return items
}

// seedTransactions returns the bundled default ledger, newest first.
func seedTransactions() []domain.Transaction {
	return []domain.Transaction{
		{ID: "1", Kind: domain.KindIncoming, ItemName: "Laptop ASUS VivoBook", Quantity: 10, Date: "2026-02-14", Supplier: "PT Asus Indonesia", TotalCost: 75000000, Notes: "Restock bulanan"},
		{ID: "2", Kind: domain.KindOutgoing, ItemName: "Mouse Wireless Logitech", Quantity: 5, Date: "2026-02-13", Destination: "Toko Cabang A", Notes: "Transfer stok"},
		{ID: "3", Kind: domain.KindSale, ItemName: "Pulpen Pilot G2", Quantity: 20, Date: "2026-02-13", SellPrice: 18000, TotalAmount: 360000},
		{ID: "4", Kind: domain.KindIncoming, ItemName: "Kopi Arabica 250gr", Quantity: 50, Date: "2026-02-12", Supplier: "CV Kopi Nusantara", TotalCost: 2250000, Notes: "Order besar"},
		{ID: "5", Kind: domain.KindSale, ItemName: "Keyboard Mechanical", Quantity: 3, Date: "2026-02-12", SellPrice: 650000, TotalAmount: 1950000},
		{ID: "6", Kind: domain.KindOutgoing, ItemName: "Kaos Polos Cotton", Quantity: 10, Date: "2026-02-11", Destination: "Event Promo", Notes: "Giveaway"},
		{ID: "7", Kind: domain.KindSale, ItemName: "Laptop ASUS VivoBook", Quantity: 2, Date: "2026-02-10", SellPrice: 8500000, TotalAmount: 17000000},
		{ID: "8", Kind: domain.KindIncoming, ItemName: "Buku Tulis A5", Quantity: 100, Date: "2026-02-10", Supplier: "PT Sinar Dunia", TotalCost: 500000, Notes: "Restock"},
	}
}
