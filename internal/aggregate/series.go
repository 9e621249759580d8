package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stocklens-dev/stocklens/internal/model"
)

const dayFormat = "2006-01-02"

// BucketPoint is one day's summed value in a time series.
type BucketPoint struct {
	Day   time.Time
	Label string
	Value decimal.Decimal
}

// TrendPoint carries separately-summed sale and purchase totals for one day.
type TrendPoint struct {
	Day       time.Time
	Label     string
	Sales     decimal.Decimal
	Purchases decimal.Decimal
}

// MonthPoint is one month of an item's sales history.
type MonthPoint struct {
	Month   string // "2006-01"
	Units   int64
	Revenue decimal.Decimal
}

// AmountOf selects a transaction's monetary amount for bucketing.
func AmountOf(tx model.Transaction) decimal.Decimal {
	return tx.Amount
}

// QuantityOf selects a transaction's quantity for bucketing.
func QuantityOf(tx model.Transaction) decimal.Decimal {
	return decimal.NewFromInt(int64(tx.Quantity))
}

// BucketByDay groups transactions into calendar-day buckets and sums the
// selected value per bucket, returning points in ascending date order.
// Transactions older than rangeDays before now, or without a usable date,
// are excluded.
func BucketByDay(txs []model.Transaction, value func(model.Transaction) decimal.Decimal, rangeDays int, now time.Time) []BucketPoint {
	cutoff := now.AddDate(0, 0, -rangeDays)
	sums := make(map[string]decimal.Decimal)
	days := make(map[string]time.Time)
	for _, tx := range txs {
		if tx.Date.IsZero() || tx.Date.Before(cutoff) {
			continue
		}
		key := tx.Date.Format(dayFormat)
		sums[key] = sums[key].Add(value(tx))
		if _, ok := days[key]; !ok {
			days[key] = tx.Date.Truncate(24 * time.Hour)
		}
	}

	points := make([]BucketPoint, 0, len(sums))
	for key, sum := range sums {
		points = append(points, BucketPoint{Day: days[key], Label: key, Value: sum})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Label < points[j].Label })
	return points
}

// SalesRevenueSeries is the daily sale-amount series over the range.
func SalesRevenueSeries(txs []model.Transaction, rangeDays int, now time.Time) []BucketPoint {
	return BucketByDay(filterType(txs, model.TypeSale), AmountOf, rangeDays, now)
}

// TransactionTrends buckets sales and purchases separately over shared
// calendar-day buckets, ascending by date. Days where only one side has
// activity carry a zero for the other.
func TransactionTrends(txs []model.Transaction, rangeDays int, now time.Time) []TrendPoint {
	cutoff := now.AddDate(0, 0, -rangeDays)
	byDay := make(map[string]*TrendPoint)
	for _, tx := range txs {
		if tx.Date.IsZero() || tx.Date.Before(cutoff) {
			continue
		}
		if tx.Type != model.TypeSale && tx.Type != model.TypePurchase {
			continue
		}
		key := tx.Date.Format(dayFormat)
		p, ok := byDay[key]
		if !ok {
			p = &TrendPoint{Day: tx.Date.Truncate(24 * time.Hour), Label: key}
			byDay[key] = p
		}
		if tx.Type == model.TypeSale {
			p.Sales = p.Sales.Add(tx.Amount)
		} else {
			p.Purchases = p.Purchases.Add(tx.Amount)
		}
	}

	points := make([]TrendPoint, 0, len(byDay))
	for _, p := range byDay {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Label < points[j].Label })
	return points
}

// MonthlySales returns an item's sales history grouped by calendar month,
// ascending, truncated to the most recent months entries. Used to feed the
// external forecasting endpoint.
func MonthlySales(txs []model.Transaction, itemID string, months int) []MonthPoint {
	byMonth := make(map[string]*MonthPoint)
	for _, tx := range txs {
		if tx.Type != model.TypeSale || tx.ItemID != itemID || tx.Date.IsZero() {
			continue
		}
		key := tx.Date.Format("2006-01")
		p, ok := byMonth[key]
		if !ok {
			p = &MonthPoint{Month: key}
			byMonth[key] = p
		}
		p.Units += int64(tx.Quantity)
		p.Revenue = p.Revenue.Add(tx.Amount)
	}

	points := make([]MonthPoint, 0, len(byMonth))
	for _, p := range byMonth {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })
	if months >= 0 && len(points) > months {
		points = points[len(points)-months:]
	}
	return points
}

func filterType(txs []model.Transaction, typ model.TransactionType) []model.Transaction {
	var out []model.Transaction
	for _, tx := range txs {
		if tx.Type == typ {
			out = append(out, tx)
		}
	}
	return out
}
