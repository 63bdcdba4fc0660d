package domain

import "time"

type StockStatus string

const (
	StatusSafe StockStatus = "safe"
	StatusLow  StockStatus = "low"
	StatusOut  StockStatus = "out"
)

// DeriveStatus classifies stock health. Status is never authored directly;
// every operation that touches stock or minStock recomputes it through here.
func DeriveStatus(stock int, minStock int) StockStatus {
	if stock <= 0 {
		return StatusOut
	}
	if stock <= minStock {
		return StatusLow
	}
	return StatusSafe
}

type InventoryItem struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	BuyPrice    int64       `json:"buyPrice"`
	SellPrice   int64       `json:"sellPrice"`
	Stock       int         `json:"stock"`
	MinStock    int         `json:"minStock"`
	Supplier    string      `json:"supplier"`
	Description string      `json:"description"`
	Status      StockStatus `json:"status"`
}

type TransactionKind string

const (
	KindIncoming TransactionKind = "in"
	KindOutgoing TransactionKind = "out"
	KindSale     TransactionKind = "sale"
)

// Transaction is one immutable stock-movement record. ItemName is a snapshot
// of the item's name at recording time, not a reference: renaming or deleting
// the item never rewrites history. SellPrice and TotalAmount on sales are
// likewise frozen at transaction time.
type Transaction struct {
	ID          string          `json:"id"`
	Kind        TransactionKind `json:"type"`
	ItemName    string          `json:"itemName"`
	Quantity    int             `json:"quantity"`
	Date        string          `json:"date"`
	Supplier    string          `json:"supplier,omitempty"`
	Destination string          `json:"destination,omitempty"`
	TotalCost   int64           `json:"totalCost,omitempty"`
	SellPrice   int64           `json:"sellPrice,omitempty"`
	TotalAmount int64           `json:"totalAmount,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// DateLayout is the calendar-date format used on transactions.
const DateLayout = "2006-01-02"

type ItemCreateRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	BuyPrice    int64  `json:"buyPrice"`
	SellPrice   int64  `json:"sellPrice"`
	Stock       int    `json:"stock"`
	MinStock    int    `json:"minStock"`
	Supplier    string `json:"supplier"`
	Description string `json:"description"`
}

type ItemUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Category    *string `json:"category,omitempty"`
	BuyPrice    *int64  `json:"buyPrice,omitempty"`
	SellPrice   *int64  `json:"sellPrice,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
	MinStock    *int    `json:"minStock,omitempty"`
	Supplier    *string `json:"supplier,omitempty"`
	Description *string `json:"description,omitempty"`
}

type IncomingRequest struct {
	ItemID    string `json:"itemId"`
	Quantity  int    `json:"quantity"`
	Supplier  string `json:"supplier"`
	Notes     string `json:"notes"`
	TotalCost int64  `json:"totalCost"`
}

type OutgoingRequest struct {
	ItemID      string `json:"itemId"`
	Quantity    int    `json:"quantity"`
	Destination string `json:"destination"`
	Notes       string `json:"notes"`
}

type SaleRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	ExpiresAt   string `json:"expires_at"`
}

type Actor struct {
	Username string
	Role     string
}

// UserAccount is an internal persistence model for auth credentials.
type UserAccount struct {
	Username  string
	Password  string
	Role      string
	Active    bool
	CreatedAt time.Time
}
