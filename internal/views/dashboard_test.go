package views

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocklens-dev/stocklens/internal/model"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixtureItems() []model.Item {
	return []model.Item{
		{ID: "a", Name: "Cola", Category: "Drinks", Quantity: 20, LowStockThreshold: 5},
		{ID: "b", Name: "Chips", Category: "Snacks", Quantity: 3, LowStockThreshold: 5},
		{ID: "c", Name: "Beer", Category: "Drinks", Quantity: 40, LowStockThreshold: 10},
	}
}

func fixtureTxs(now time.Time) []model.Transaction {
	return []model.Transaction{
		{ID: "t1", Type: model.TypeSale, ItemID: "a", Quantity: 5, Amount: dec("50"), Date: now.AddDate(0, 0, -1)},
		{ID: "t2", Type: model.TypeSale, ItemID: "c", Quantity: 2, Amount: dec("30"), Date: now},
		{ID: "t3", Type: model.TypePurchase, ItemID: "b", Quantity: 50, Amount: dec("10"), Date: now},
	}
}

func TestBuildDashboard(t *testing.T) {
	now := day(2024, 3, 15)
	sum := BuildDashboard(fixtureItems(), fixtureTxs(now), []model.Supplier{{ID: "s1"}}, nil, 10, 5, now)

	assert.Equal(t, 63, sum.TotalUnits)
	assert.Equal(t, 1, sum.LowStockCount)
	assert.InDelta(t, 33.33, sum.LowStockPercent, 0.01)
	assert.Equal(t, 1, sum.SupplierCount)

	// Today: +30 sale, -10 purchase. Yesterday: +50.
	assert.True(t, sum.TodayRevenue.Equal(dec("20")))
	assert.Equal(t, -60, sum.RevenueChange)
	assert.Equal(t, model.TrendDown, sum.RevenueTrend)

	require.Len(t, sum.StockLevels.Labels, 3)
	assert.Equal(t, "Beer", sum.StockLevels.Labels[0])

	// Newest transaction first.
	require.Len(t, sum.RecentTransactions, 3)
	assert.Equal(t, "t3", sum.RecentTransactions[0].ID)
}

func TestTopSelling_ResolvesNames(t *testing.T) {
	now := day(2024, 3, 15)
	data := TopSelling(fixtureTxs(now), fixtureItems(), 10)
	require.Len(t, data.Labels, 2)
	assert.Equal(t, "Cola", data.Labels[0])
	assert.True(t, data.Values[0].Equal(dec("5")))
	assert.Equal(t, "Beer", data.Labels[1])
}

func TestCategoryDistribution(t *testing.T) {
	data := CategoryDistribution(fixtureItems())
	require.Equal(t, []string{"Drinks", "Snacks"}, data.Labels)
	assert.True(t, data.Values[0].Equal(dec("60")))
	assert.True(t, data.Values[1].Equal(dec("3")))
}

func TestTransactionTrends_SharedLabels(t *testing.T) {
	now := day(2024, 3, 15)
	sales, purchases := TransactionTrends(fixtureTxs(now), 7, now)
	assert.Equal(t, sales.Labels, purchases.Labels)
	require.Len(t, sales.Labels, 2)
}

func TestSalesRevenue_RangeFilter(t *testing.T) {
	now := day(2024, 3, 15)
	txs := append(fixtureTxs(now), model.Transaction{
		ID: "old", Type: model.TypeSale, Amount: dec("999"), Date: now.AddDate(0, 0, -90),
	})
	data := SalesRevenue(txs, 7, now)
	assert.NotContains(t, data.Labels, now.AddDate(0, 0, -90).Format("2006-01-02"))
	require.Len(t, data.Labels, 2)
}

func TestItemSalesHistory(t *testing.T) {
	txs := []model.Transaction{
		{Type: model.TypeSale, ItemID: "a", Quantity: 3, Amount: dec("30"), Date: day(2024, 1, 10)},
		{Type: model.TypeSale, ItemID: "a", Quantity: 4, Amount: dec("40"), Date: day(2024, 2, 10)},
	}
	data := ItemSalesHistory(txs, "a", 12)
	assert.Equal(t, []string{"2024-01", "2024-02"}, data.Labels)
	assert.True(t, data.Values[1].Equal(dec("4")))
}
