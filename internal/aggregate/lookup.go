package aggregate

import "github.com/stocklens-dev/stocklens/internal/model"

// EnrichedAlert is an alert plus the resolved name of its referenced item.
type EnrichedAlert struct {
	model.Alert
	ItemName string // empty when the alert references no item
}

// ItemName resolves an item id to a display label. A miss is a normal,
// render-safe outcome: the label falls back to a truncated form of the id.
func ItemName(items []model.Item, id string) string {
	for _, it := range items {
		if it.ID == id {
			return it.Name
		}
	}
	short := id
	if len(short) > 8 {
		short = short[:8] + "..."
	}
	return "Item " + short
}

// SupplierName resolves a supplier id to a display label, falling back to a
// sentinel on a miss.
func SupplierName(suppliers []model.Supplier, id string) string {
	for _, s := range suppliers {
		if s.ID == id {
			return s.Name
		}
	}
	return "Unknown Supplier"
}

// FindItem returns the item with the given id, or false.
func FindItem(items []model.Item, id string) (model.Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

// EnrichAlerts attaches referenced item names to alerts. Alerts without an
// item reference pass through with an empty name.
func EnrichAlerts(alerts []model.Alert, items []model.Item) []EnrichedAlert {
	out := make([]EnrichedAlert, len(alerts))
	for i, a := range alerts {
		e := EnrichedAlert{Alert: a}
		if a.ItemID != "" {
			e.ItemName = ItemName(items, a.ItemID)
		}
		out[i] = e
	}
	return out
}
