package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stocklens-dev/stocklens/internal/model"
)

// Tally accumulates integer values per string key while remembering the order
// in which keys first appeared. First-seen order is the tie-break for TopN,
// which keeps ranking output deterministic.
type Tally struct {
	sums  map[string]int64
	order []string
}

// Entry is one (key, summed value) pair from a Tally.
type Entry struct {
	Key   string
	Value int64
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{sums: make(map[string]int64)}
}

// Add accumulates v under key.
func (t *Tally) Add(key string, v int64) {
	if _, seen := t.sums[key]; !seen {
		t.order = append(t.order, key)
	}
	t.sums[key] += v
}

// Get returns the summed value for key (zero if absent).
func (t *Tally) Get(key string) int64 {
	return t.sums[key]
}

// Len returns the number of distinct keys.
func (t *Tally) Len() int {
	return len(t.order)
}

// Entries returns all pairs in first-seen order.
func (t *Tally) Entries() []Entry {
	out := make([]Entry, len(t.order))
	for i, k := range t.order {
		out[i] = Entry{Key: k, Value: t.sums[k]}
	}
	return out
}

// TopN returns at most n entries sorted descending by value, ties broken by
// first-seen order.
func (t *Tally) TopN(n int) []Entry {
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// SalesByItem sums sold quantities per item id. Non-sale transactions and
// sales without an item reference are excluded.
func SalesByItem(txs []model.Transaction) *Tally {
	t := NewTally()
	for _, tx := range txs {
		if tx.Type != model.TypeSale || tx.ItemID == "" {
			continue
		}
		t.Add(tx.ItemID, int64(tx.Quantity))
	}
	return t
}

// RevenueForDate computes net revenue for one calendar day: sale amounts
// added, purchase amounts subtracted. Dates are compared at day granularity;
// transactions with no usable date are excluded.
func RevenueForDate(txs []model.Transaction, day time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Date.IsZero() || !sameDay(tx.Date, day) {
			continue
		}
		switch tx.Type {
		case model.TypeSale:
			total = total.Add(tx.Amount)
		case model.TypePurchase:
			total = total.Sub(tx.Amount)
		}
	}
	return total
}

// PercentChange computes the rounded percentage change from previous to
// current and its direction. A zero baseline is special-cased: any movement
// off zero reads as +100% up, and zero-to-zero is no change.
func PercentChange(current, previous decimal.Decimal) (int, model.Trend) {
	if previous.IsZero() {
		if current.IsZero() {
			return 0, model.TrendNoChange
		}
		return 100, model.TrendUp
	}
	pct := int(current.Sub(previous).Div(previous.Abs()).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	switch {
	case pct > 0:
		return pct, model.TrendUp
	case pct < 0:
		return pct, model.TrendDown
	default:
		return 0, model.TrendNoChange
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
