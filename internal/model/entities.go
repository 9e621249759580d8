package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus is the derived stock state of an item. It is computed from
// quantity and threshold and never stored.
type StockStatus string

const (
	StockLow StockStatus = "LOW"
	StockOK  StockStatus = "OK"
)

// TransactionType distinguishes money-in from money-out.
type TransactionType string

const (
	TypeSale     TransactionType = "sale"
	TypePurchase TransactionType = "purchase"
)

// Trend describes the direction of a period-over-period change.
type Trend string

const (
	TrendUp       Trend = "up"
	TrendDown     Trend = "down"
	TrendNoChange Trend = "no-change"
)

// Alert types as produced by the backend.
const (
	AlertLowStock = "low stock"
	AlertExpiry   = "expiry"
	AlertWarning  = "warning"
	AlertError    = "error"
	AlertSuccess  = "success"
	AlertInfo     = "info"
)

// Item is a canonical inventory item. Records reaching this type have been
// through the normalize adapter: ID is canonical, Category is never empty and
// LowStockThreshold is never zero.
type Item struct {
	ID                string
	Name              string
	Category          string
	Quantity          int
	Unit              string
	LowStockThreshold int
	SupplierID        string    // empty if unset
	LastRestocked     time.Time // zero if unset
	ExpiryDate        time.Time // zero if unset
}

// Transaction is a canonical sale or purchase record. Amount is sign-agnostic;
// direction is carried by Type.
type Transaction struct {
	ID          string
	Date        time.Time // zero if missing or unparseable
	Description string
	Amount      decimal.Decimal
	Quantity    int
	Type        TransactionType
	Category    string
	Status      string // completed, pending, cancelled
	ItemID      string // empty if unset
}

// Supplier is a canonical supplier record.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	ItemsProvided string
	Status        string // Active, Pending, Inactive
}

// Alert is generated and stored by the backend; this layer only renders it,
// optionally enriched with the referenced item's name.
type Alert struct {
	ID      string
	Title   string
	Message string
	Type    string
	ItemID  string // empty if unset
}

// Event is a day-granular calendar entry owned entirely by the backend.
type Event struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
}
