package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocklens-dev/stocklens/internal/model"
)

func TestWriteInventory(t *testing.T) {
	items := []model.Item{
		{
			ID: "a1", Name: "Cola", Category: "Drinks", Quantity: 3, Unit: "bottle",
			LowStockThreshold: 5, SupplierID: "s1",
			LastRestocked: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	suppliers := []model.Supplier{{ID: "s1", Name: "Acme"}}

	var buf bytes.Buffer
	require.NoError(t, WriteInventory(&buf, items, suppliers))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, strings.Split(InventoryHeader, ","), rows[0])
	assert.Equal(t, []string{"a1", "Cola", "Drinks", "3", "bottle", "LOW", "5", "Acme", "2024-02-01", ""}, rows[1])
}

func TestWriteTransactions(t *testing.T) {
	txs := []model.Transaction{
		{
			ID: "t1", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Description: "Friday night", Type: model.TypeSale,
			Amount: decimal.RequireFromString("99.5"), Quantity: 4,
			Category: "Drinks", Status: "completed", ItemID: "a1",
		},
		{ID: "t2", Type: model.TypePurchase, Amount: decimal.Zero},
	}
	items := []model.Item{{ID: "a1", Name: "Cola"}}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txs, items))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"t1", "2024-01-01", "Friday night", "sale", "99.5", "4", "Drinks", "completed", "Cola"}, rows[1])
	// Missing date and item reference degrade to empty cells.
	assert.Equal(t, "", rows[2][1])
	assert.Equal(t, "", rows[2][8])
}

func TestReports(t *testing.T) {
	dir := t.TempDir()
	paths, err := Reports(filepath.Join(dir, "out"), nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.NotEmpty(t, data, "header row written even with no records")
	}
}
