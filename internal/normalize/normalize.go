// Package normalize is the single adapter between loose backend JSON records
// and the canonical entity types. Backends in the wild disagree on id field
// names and omit optional fields; everything tolerant lives here so the
// aggregation layer can assume complete, valid inputs.
package normalize

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stocklens-dev/stocklens/internal/model"
)

// Record is one decoded JSON object as returned by the backend.
type Record map[string]any

// DefaultLowStockThreshold applies when the backend omits the field.
const DefaultLowStockThreshold = 5

// DefaultCategory applies when an item has no category.
const DefaultCategory = "Uncategorized"

// Candidate id fields, in precedence order.
var (
	entityIDFields   = []string{"id", "uuid", "_id", "itemId"}
	itemRefFields    = []string{"item_id", "itemId"}
	supplierIDFields = []string{"supplier_id", "supplierId"}
)

// ID extracts and canonicalizes an entity's own identifier.
func ID(rec Record) string {
	return firstID(rec, entityIDFields)
}

// Item converts a raw item record into a fully-defaulted canonical Item.
func Item(rec Record) model.Item {
	it := model.Item{
		ID:                firstID(rec, entityIDFields),
		Name:              str(rec, "itemName", "name"),
		Category:          str(rec, "category"),
		Quantity:          integer(rec, "quantity"),
		Unit:              str(rec, "unit"),
		LowStockThreshold: integer(rec, "lowStockThreshold"),
		SupplierID:        firstID(rec, supplierIDFields),
		LastRestocked:     date(rec, "lastRestocked"),
		ExpiryDate:        date(rec, "expiryDate"),
	}
	if it.Category == "" {
		it.Category = DefaultCategory
	}
	if it.LowStockThreshold <= 0 {
		it.LowStockThreshold = DefaultLowStockThreshold
	}
	if it.Quantity < 0 {
		it.Quantity = 0
	}
	return it
}

// Transaction converts a raw transaction record. Missing amounts and
// quantities become zero; an unparseable date becomes the zero time, which
// the aggregation layer treats as "excluded".
func Transaction(rec Record) model.Transaction {
	return model.Transaction{
		ID:          firstID(rec, entityIDFields),
		Date:        date(rec, "date"),
		Description: str(rec, "description"),
		Amount:      amount(rec, "amount"),
		Quantity:    integer(rec, "quantity"),
		Type:        model.TransactionType(strings.ToLower(str(rec, "type"))),
		Category:    str(rec, "category"),
		Status:      strings.ToLower(str(rec, "status")),
		ItemID:      firstID(rec, itemRefFields),
	}
}

// Supplier converts a raw supplier record.
func Supplier(rec Record) model.Supplier {
	return model.Supplier{
		ID:            firstID(rec, entityIDFields),
		Name:          str(rec, "supplierName", "name"),
		ContactPerson: str(rec, "contactPerson"),
		Email:         str(rec, "email"),
		Phone:         str(rec, "phoneNumber", "phone"),
		Address:       str(rec, "address"),
		ItemsProvided: str(rec, "itemsProvided"),
		Status:        str(rec, "status"),
	}
}

// Alert converts a raw alert record. Type defaults to info.
func Alert(rec Record) model.Alert {
	a := model.Alert{
		ID:      firstID(rec, entityIDFields),
		Title:   str(rec, "title"),
		Message: str(rec, "message"),
		Type:    strings.ToLower(str(rec, "type")),
		ItemID:  firstID(rec, itemRefFields),
	}
	if a.Type == "" {
		a.Type = model.AlertInfo
	}
	return a
}

// Event converts a raw calendar event record.
func Event(rec Record) model.Event {
	return model.Event{
		ID:          firstID(rec, entityIDFields),
		Title:       str(rec, "title"),
		Description: str(rec, "description"),
		Date:        date(rec, "date"),
	}
}

// Items maps a raw list through Item.
func Items(recs []Record) []model.Item {
	out := make([]model.Item, len(recs))
	for i, r := range recs {
		out[i] = Item(r)
	}
	return out
}

// Transactions maps a raw list through Transaction.
func Transactions(recs []Record) []model.Transaction {
	out := make([]model.Transaction, len(recs))
	for i, r := range recs {
		out[i] = Transaction(r)
	}
	return out
}

// Suppliers maps a raw list through Supplier.
func Suppliers(recs []Record) []model.Supplier {
	out := make([]model.Supplier, len(recs))
	for i, r := range recs {
		out[i] = Supplier(r)
	}
	return out
}

// Alerts maps a raw list through Alert.
func Alerts(recs []Record) []model.Alert {
	out := make([]model.Alert, len(recs))
	for i, r := range recs {
		out[i] = Alert(r)
	}
	return out
}

// Events maps a raw list through Event.
func Events(recs []Record) []model.Event {
	out := make([]model.Event, len(recs))
	for i, r := range recs {
		out[i] = Event(r)
	}
	return out
}

// CanonicalID normalizes an identifier: UUIDs in any case or format collapse
// to the lowercase canonical form, anything else passes through trimmed.
func CanonicalID(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if u, err := uuid.Parse(s); err == nil {
		return u.String()
	}
	return s
}

func firstID(rec Record, fields []string) string {
	for _, f := range fields {
		if v, ok := rec[f]; ok {
			if s := asString(v); s != "" {
				return CanonicalID(s)
			}
		}
	}
	return ""
}

func str(rec Record, fields ...string) string {
	for _, f := range fields {
		if v, ok := rec[f]; ok {
			if s := asString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

func asString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func integer(rec Record, field string) int {
	switch v := rec[field].(type) {
	case float64: // encoding/json decodes all numbers to float64
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func amount(rec Record, field string) decimal.Decimal {
	switch v := rec[field].(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// date accepts RFC3339 timestamps and plain YYYY-MM-DD days.
func date(rec Record, field string) time.Time {
	s := asString(rec[field])
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
