package normalize

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocklens-dev/stocklens/internal/model"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestItem_Defaults(t *testing.T) {
	it := Item(Record{"id": "a1", "itemName": "Cola"})
	assert.Equal(t, "a1", it.ID)
	assert.Equal(t, "Cola", it.Name)
	assert.Equal(t, DefaultCategory, it.Category)
	assert.Equal(t, DefaultLowStockThreshold, it.LowStockThreshold)
	assert.Zero(t, it.Quantity)
}

func TestItem_FullRecord(t *testing.T) {
	it := Item(Record{
		"id":                "a1",
		"itemName":          "Cola",
		"category":          "Drinks",
		"quantity":          float64(12),
		"unit":              "bottle",
		"lowStockThreshold": float64(3),
		"supplier_id":       "s1",
		"lastRestocked":     "2024-02-01",
		"expiryDate":        "2025-01-01",
	})
	assert.Equal(t, "Drinks", it.Category)
	assert.Equal(t, 12, it.Quantity)
	assert.Equal(t, 3, it.LowStockThreshold)
	assert.Equal(t, "s1", it.SupplierID)
	assert.Equal(t, 2024, it.LastRestocked.Year())
	assert.Equal(t, 2025, it.ExpiryDate.Year())
}

func TestItem_IDFieldTolerance(t *testing.T) {
	assert.Equal(t, "a", Item(Record{"id": "a"}).ID)
	assert.Equal(t, "b", Item(Record{"uuid": "b"}).ID)
	assert.Equal(t, "c", Item(Record{"_id": "c"}).ID)
	assert.Equal(t, "d", Item(Record{"itemId": "d"}).ID)
	// Precedence: "id" wins when several are present.
	assert.Equal(t, "a", Item(Record{"uuid": "b", "id": "a"}).ID)
}

func TestCanonicalID_UUID(t *testing.T) {
	// Differently-cased UUIDs from sloppy backends collapse to one id.
	upper := "C73BCDCC-2669-4BF6-81D3-E4AE73FB11FD"
	lower := "c73bcdcc-2669-4bf6-81d3-e4ae73fb11fd"
	assert.Equal(t, lower, CanonicalID(upper))
	assert.Equal(t, lower, CanonicalID(lower))
	assert.Equal(t, "not-a-uuid", CanonicalID("  not-a-uuid "))
	assert.Empty(t, CanonicalID("  "))
}

func TestTransaction(t *testing.T) {
	tx := Transaction(Record{
		"id":          "t1",
		"date":        "2024-01-01",
		"description": "Friday night",
		"amount":      99.5,
		"quantity":    float64(4),
		"type":        "Sale",
		"status":      "Completed",
		"item_id":     "a1",
	})
	assert.Equal(t, model.TypeSale, tx.Type)
	assert.Equal(t, "completed", tx.Status)
	assert.Equal(t, "a1", tx.ItemID)
	assert.Equal(t, 4, tx.Quantity)
	assert.True(t, tx.Amount.Equal(decimalFromString(t, "99.5")))
}

func TestTransaction_MalformedFieldsDegrade(t *testing.T) {
	tx := Transaction(Record{"id": "t1", "date": "soon", "amount": "not-money"})
	assert.True(t, tx.Date.IsZero())
	assert.True(t, tx.Amount.IsZero())
	assert.Zero(t, tx.Quantity)
}

func TestSupplier(t *testing.T) {
	s := Supplier(Record{
		"id":           "s1",
		"supplierName": "Acme",
		"phoneNumber":  "555-0100",
		"status":       "Active",
	})
	assert.Equal(t, "Acme", s.Name)
	assert.Equal(t, "555-0100", s.Phone)
	assert.Equal(t, "Active", s.Status)
}

func TestAlert_TypeDefaultsToInfo(t *testing.T) {
	a := Alert(Record{"id": "1", "title": "hi"})
	assert.Equal(t, model.AlertInfo, a.Type)

	a = Alert(Record{"id": "1", "type": "Low Stock"})
	assert.Equal(t, model.AlertLowStock, a.Type)
}

func TestEvent(t *testing.T) {
	e := Event(Record{"id": "e1", "title": "Inventory day", "date": "2024-06-01"})
	assert.Equal(t, "Inventory day", e.Title)
	assert.Equal(t, 2024, e.Date.Year())
}

func TestLists_FromBackendJSON(t *testing.T) {
	payload := `[
		{"id": "a1", "itemName": "Cola", "quantity": 2},
		{"uuid": "b2", "itemName": "Chips"}
	]`
	var recs []Record
	require.NoError(t, json.Unmarshal([]byte(payload), &recs))

	items := Items(recs)
	require.Len(t, items, 2)
	assert.Equal(t, "a1", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "b2", items[1].ID)
	assert.Equal(t, DefaultLowStockThreshold, items[1].LowStockThreshold)
}
