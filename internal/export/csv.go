// Package export writes downloadable CSV reports from entity snapshots.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/stocklens-dev/stocklens/internal/aggregate"
	"github.com/stocklens-dev/stocklens/internal/model"
)

// InventoryHeader is the CSV header for the inventory report.
const InventoryHeader = "id,name,category,quantity,unit,status,low_stock_threshold,supplier,last_restocked,expiry_date"

// TransactionsHeader is the CSV header for the transactions report.
const TransactionsHeader = "id,date,description,type,amount,quantity,category,status,item"

const dateFormat = "2006-01-02"

// WriteInventory writes the inventory report, one row per item with the
// derived stock status and the resolved supplier name.
func WriteInventory(w io.Writer, items []model.Item, suppliers []model.Supplier) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(InventoryHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, it := range items {
		supplier := ""
		if it.SupplierID != "" {
			supplier = aggregate.SupplierName(suppliers, it.SupplierID)
		}
		row := []string{
			it.ID,
			it.Name,
			it.Category,
			strconv.Itoa(it.Quantity),
			it.Unit,
			string(aggregate.StatusOf(it)),
			strconv.Itoa(it.LowStockThreshold),
			supplier,
			formatDay(it.LastRestocked),
			formatDay(it.ExpiryDate),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteTransactions writes the transactions report with resolved item names.
func WriteTransactions(w io.Writer, txs []model.Transaction, items []model.Item) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(TransactionsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txs {
		itemName := ""
		if tx.ItemID != "" {
			itemName = aggregate.ItemName(items, tx.ItemID)
		}
		row := []string{
			tx.ID,
			formatDay(tx.Date),
			tx.Description,
			string(tx.Type),
			tx.Amount.String(),
			strconv.Itoa(tx.Quantity),
			tx.Category,
			tx.Status,
			itemName,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// Reports writes both reports into dir and returns the file paths written.
func Reports(dir string, items []model.Item, txs []model.Transaction, suppliers []model.Supplier) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report dir: %w", err)
	}

	invPath := filepath.Join(dir, "inventory.csv")
	f, err := os.Create(invPath)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", invPath, err)
	}
	if err := WriteInventory(f, items, suppliers); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", invPath, err)
	}

	txPath := filepath.Join(dir, "transactions.csv")
	f, err = os.Create(txPath)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", txPath, err)
	}
	if err := WriteTransactions(f, txs, items); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", txPath, err)
	}

	return []string{invPath, txPath}, nil
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}
