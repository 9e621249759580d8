package apiclient

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/stocklens-dev/stocklens/internal/model"
	"github.com/stocklens-dev/stocklens/internal/normalize"
)

// Write payloads use the backend's own field names; see the entity schemas
// the backend publishes. Zero-valued optional fields are omitted.

// ItemParams is the payload for creating or updating an item.
type ItemParams struct {
	Name              string `json:"itemName"`
	Category          string `json:"category,omitempty"`
	Quantity          int    `json:"quantity"`
	Unit              string `json:"unit,omitempty"`
	LowStockThreshold int    `json:"lowStockThreshold"`
	SupplierID        string `json:"supplier_id,omitempty"`
	LastRestocked     string `json:"lastRestocked,omitempty"` // "2006-01-02"
	ExpiryDate        string `json:"expiryDate,omitempty"`
}

// TransactionParams is the payload for creating or updating a transaction.
type TransactionParams struct {
	Date        string          `json:"date"` // "2006-01-02"
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    int             `json:"quantity"`
	Type        string          `json:"type"`
	Category    string          `json:"category,omitempty"`
	Status      string          `json:"status,omitempty"`
	ItemID      string          `json:"item_id,omitempty"`
}

// SupplierParams is the payload for creating or updating a supplier.
type SupplierParams struct {
	Name          string `json:"supplierName"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phoneNumber,omitempty"`
	Address       string `json:"address,omitempty"`
	ItemsProvided string `json:"itemsProvided,omitempty"`
	Status        string `json:"status,omitempty"`
}

// EventParams is the payload for creating a calendar event.
type EventParams struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // "2006-01-02"
}

// Items fetches all inventory items.
func (c *Client) Items(ctx context.Context) ([]model.Item, error) {
	recs, err := c.list(ctx, "/items/")
	if err != nil {
		return nil, err
	}
	return normalize.Items(recs), nil
}

// CreateItem creates an item and returns its canonical id.
func (c *Client) CreateItem(ctx context.Context, p ItemParams) (string, error) {
	var rec normalize.Record
	if err := c.do(ctx, http.MethodPost, "/items/", p, &rec); err != nil {
		return "", err
	}
	return normalize.ID(rec), nil
}

// UpdateItem updates an existing item.
func (c *Client) UpdateItem(ctx context.Context, id string, p ItemParams) error {
	return c.do(ctx, http.MethodPut, "/items/"+id, p, nil)
}

// DeleteItem removes an item.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/items/"+id, nil, nil)
}

// Transactions fetches all transactions.
func (c *Client) Transactions(ctx context.Context) ([]model.Transaction, error) {
	recs, err := c.list(ctx, "/transactions/")
	if err != nil {
		return nil, err
	}
	return normalize.Transactions(recs), nil
}

// CreateTransaction records a sale or purchase and returns its id.
func (c *Client) CreateTransaction(ctx context.Context, p TransactionParams) (string, error) {
	var rec normalize.Record
	if err := c.do(ctx, http.MethodPost, "/transactions/", p, &rec); err != nil {
		return "", err
	}
	return normalize.ID(rec), nil
}

// UpdateTransaction updates an existing transaction.
func (c *Client) UpdateTransaction(ctx context.Context, id string, p TransactionParams) error {
	return c.do(ctx, http.MethodPut, "/transactions/"+id, p, nil)
}

// DeleteTransaction removes a transaction.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/transactions/"+id, nil, nil)
}

// Suppliers fetches all suppliers.
func (c *Client) Suppliers(ctx context.Context) ([]model.Supplier, error) {
	recs, err := c.list(ctx, "/suppliers/")
	if err != nil {
		return nil, err
	}
	return normalize.Suppliers(recs), nil
}

// CreateSupplier creates a supplier and returns its id.
func (c *Client) CreateSupplier(ctx context.Context, p SupplierParams) (string, error) {
	var rec normalize.Record
	if err := c.do(ctx, http.MethodPost, "/suppliers/", p, &rec); err != nil {
		return "", err
	}
	return normalize.ID(rec), nil
}

// UpdateSupplier updates an existing supplier.
func (c *Client) UpdateSupplier(ctx context.Context, id string, p SupplierParams) error {
	return c.do(ctx, http.MethodPut, "/suppliers/"+id, p, nil)
}

// DeleteSupplier removes a supplier.
func (c *Client) DeleteSupplier(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/suppliers/"+id, nil, nil)
}

// Alerts fetches all alerts. Alerts are generated backend-side; the client
// only reads and dismisses them.
func (c *Client) Alerts(ctx context.Context) ([]model.Alert, error) {
	recs, err := c.list(ctx, "/alerts/")
	if err != nil {
		return nil, err
	}
	return normalize.Alerts(recs), nil
}

// DeleteAlert dismisses an alert.
func (c *Client) DeleteAlert(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/alerts/"+id, nil, nil)
}

// Events fetches all calendar events.
func (c *Client) Events(ctx context.Context) ([]model.Event, error) {
	recs, err := c.list(ctx, "/events/")
	if err != nil {
		return nil, err
	}
	return normalize.Events(recs), nil
}

// CreateEvent adds a calendar event and returns its id.
func (c *Client) CreateEvent(ctx context.Context, p EventParams) (string, error) {
	var rec normalize.Record
	if err := c.do(ctx, http.MethodPost, "/events/", p, &rec); err != nil {
		return "", err
	}
	return normalize.ID(rec), nil
}

// DeleteEvent removes a calendar event.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+id, nil, nil)
}
