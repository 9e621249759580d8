// Package views composes aggregation results into render-ready view models.
// Nothing here knows about terminals, charts or styling; the structures are
// plain data any presentation layer can consume.
package views

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stocklens-dev/stocklens/internal/aggregate"
	"github.com/stocklens-dev/stocklens/internal/model"
)

// ChartData is a labeled numeric series, one value per label.
type ChartData struct {
	Title  string
	Labels []string
	Values []decimal.Decimal
}

// DashboardSummary is everything the main dashboard screen shows.
type DashboardSummary struct {
	TotalUnits      int
	LowStockCount   int
	LowStockPercent float64
	SupplierCount   int

	TodayRevenue  decimal.Decimal
	RevenueChange int // percent vs yesterday
	RevenueTrend  model.Trend

	StockLevels        ChartData // top items by quantity
	TopSelling         ChartData // top items by units sold
	RecentTransactions []model.Transaction
	Alerts             []aggregate.EnrichedAlert
}

// BuildDashboard assembles the dashboard summary from fresh entity snapshots.
// topN bounds both charts; recent bounds the transaction list.
func BuildDashboard(items []model.Item, txs []model.Transaction, suppliers []model.Supplier, alerts []model.Alert, topN, recent int, now time.Time) DashboardSummary {
	lowCount, lowPercent := aggregate.LowStock(items)

	today := aggregate.RevenueForDate(txs, now)
	yesterday := aggregate.RevenueForDate(txs, now.AddDate(0, 0, -1))
	change, trend := aggregate.PercentChange(today, yesterday)

	return DashboardSummary{
		TotalUnits:         aggregate.TotalUnits(items),
		LowStockCount:      lowCount,
		LowStockPercent:    lowPercent,
		SupplierCount:      len(suppliers),
		TodayRevenue:       today,
		RevenueChange:      change,
		RevenueTrend:       trend,
		StockLevels:        StockLevels(items, topN),
		TopSelling:         TopSelling(txs, items, topN),
		RecentTransactions: lastN(txs, recent),
		Alerts:             aggregate.EnrichAlerts(alerts, items),
	}
}

// StockLevels charts the top-n items by current quantity.
func StockLevels(items []model.Item, n int) ChartData {
	ranked := aggregate.RankByQuantity(items, n)
	data := ChartData{Title: "Top Items by Stock Levels"}
	for _, it := range ranked {
		data.Labels = append(data.Labels, it.Name)
		data.Values = append(data.Values, decimal.NewFromInt(int64(it.Quantity)))
	}
	return data
}

// TopSelling charts the top-n items by units sold, labeled with resolved
// item names.
func TopSelling(txs []model.Transaction, items []model.Item, n int) ChartData {
	data := ChartData{Title: "Top Selling Items"}
	for _, e := range aggregate.SalesByItem(txs).TopN(n) {
		data.Labels = append(data.Labels, aggregate.ItemName(items, e.Key))
		data.Values = append(data.Values, decimal.NewFromInt(e.Value))
	}
	return data
}

// CategoryDistribution charts summed quantity per category.
func CategoryDistribution(items []model.Item) ChartData {
	data := ChartData{Title: "Inventory Distribution by Category"}
	for _, e := range aggregate.GroupByCategory(items).Entries() {
		data.Labels = append(data.Labels, e.Key)
		data.Values = append(data.Values, decimal.NewFromInt(e.Value))
	}
	return data
}

// SalesRevenue charts daily sale revenue over the trailing range.
func SalesRevenue(txs []model.Transaction, rangeDays int, now time.Time) ChartData {
	data := ChartData{Title: "Sales Revenue"}
	for _, p := range aggregate.SalesRevenueSeries(txs, rangeDays, now) {
		data.Labels = append(data.Labels, p.Label)
		data.Values = append(data.Values, p.Value)
	}
	return data
}

// TransactionTrends returns the paired sales and purchases series over the
// trailing range. Both share the same labels.
func TransactionTrends(txs []model.Transaction, rangeDays int, now time.Time) (sales, purchases ChartData) {
	sales = ChartData{Title: "Sales"}
	purchases = ChartData{Title: "Purchases"}
	for _, p := range aggregate.TransactionTrends(txs, rangeDays, now) {
		sales.Labels = append(sales.Labels, p.Label)
		sales.Values = append(sales.Values, p.Sales)
		purchases.Labels = append(purchases.Labels, p.Label)
		purchases.Values = append(purchases.Values, p.Purchases)
	}
	return sales, purchases
}

// ItemSalesHistory charts one item's monthly units sold.
func ItemSalesHistory(txs []model.Transaction, itemID string, months int) ChartData {
	data := ChartData{Title: "Monthly Units Sold"}
	for _, p := range aggregate.MonthlySales(txs, itemID, months) {
		data.Labels = append(data.Labels, p.Month)
		data.Values = append(data.Values, decimal.NewFromInt(p.Units))
	}
	return data
}

// lastN returns the newest n transactions, newest first, matching the
// dashboard's recent-activity panel.
func lastN(txs []model.Transaction, n int) []model.Transaction {
	if n < 0 || n > len(txs) {
		n = len(txs)
	}
	out := make([]model.Transaction, 0, n)
	for i := len(txs) - 1; i >= len(txs)-n; i-- {
		out = append(out, txs[i])
	}
	return out
}
