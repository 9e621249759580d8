// Package aggregate turns raw entity collections into derived view data.
// Every function is pure: no clocks, no globals, no mutation of inputs.
// Callers pass "now" explicitly wherever a range filter needs it.
package aggregate

import (
	"sort"

	"github.com/stocklens-dev/stocklens/internal/model"
)

// StatusOf derives the stock status of an item. The boundary case
// quantity == threshold counts as low.
func StatusOf(it model.Item) model.StockStatus {
	if it.Quantity <= it.LowStockThreshold {
		return model.StockLow
	}
	return model.StockOK
}

// RankByQuantity returns at most n items sorted descending by quantity.
// The sort is stable, so ties keep their original relative order, and
// ranking an already-ranked slice is a no-op.
func RankByQuantity(items []model.Item, n int) []model.Item {
	ranked := make([]model.Item, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TotalUnits sums the quantity across all items.
func TotalUnits(items []model.Item) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// LowStock returns the number of low-stock items and that number as a
// percentage of the collection (0 for an empty collection).
func LowStock(items []model.Item) (count int, percent float64) {
	for _, it := range items {
		if StatusOf(it) == model.StockLow {
			count++
		}
	}
	if len(items) > 0 {
		percent = float64(count) / float64(len(items)) * 100
	}
	return count, percent
}

// GroupByCategory sums item quantities per category. Normalized items always
// carry a category, so no default is applied here.
func GroupByCategory(items []model.Item) *Tally {
	t := NewTally()
	for _, it := range items {
		t.Add(it.Category, int64(it.Quantity))
	}
	return t
}
