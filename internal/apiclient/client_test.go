package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, zerolog.Nop())
}

func TestItems_NormalizesRecords(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/items/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": "A1", "itemName": "Cola", "quantity": 7, "lowStockThreshold": 2},
			{"uuid": "B2", "itemName": "Chips"}
		]`))
	})

	items, err := c.Items(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "A1", items[0].ID)
	assert.Equal(t, 7, items[0].Quantity)
	assert.Equal(t, 5, items[1].LowStockThreshold, "default applied")
}

func TestCreateItem_SendsBackendFieldNames(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/items/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "new-id"}`))
	})

	id, err := c.CreateItem(context.Background(), ItemParams{
		Name:              "Cola",
		Quantity:          10,
		LowStockThreshold: 3,
		SupplierID:        "s1",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-id", id)
	assert.Equal(t, "Cola", got["itemName"])
	assert.Equal(t, "s1", got["supplier_id"])
	assert.NotContains(t, got, "category", "empty optionals omitted")
}

func TestUpdateAndDelete_Paths(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.UpdateItem(context.Background(), "a1", ItemParams{Name: "Cola"}))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/items/a1", gotPath)

	require.NoError(t, c.DeleteEvent(context.Background(), "e9"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/events/e9", gotPath)
}

func TestTransactions_AmountDecimal(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": "t1", "amount": 99.5, "type": "Sale", "date": "2024-01-01", "item_id": "a1"}]`))
	})

	txs, err := c.Transactions(context.Background())
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].Amount.Equal(decimal.NewFromFloat(99.5)))
	assert.Equal(t, "a1", txs[0].ItemID)
}

func TestDo_Non2xxSurfacesStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "item not found", http.StatusNotFound)
	})

	err := c.DeleteItem(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "item not found")
}

func TestDo_ContextCancellation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Items(ctx)
	require.Error(t, err)
}

func TestCreateEvent(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id": "e1"}`))
	})

	id, err := c.CreateEvent(context.Background(), EventParams{Title: "Stock take", Date: "2024-06-01"})
	require.NoError(t, err)
	assert.Equal(t, "e1", id)
	assert.Equal(t, "Stock take", got["title"])
	assert.Equal(t, "2024-06-01", got["date"])
}
