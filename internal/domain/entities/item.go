package entities

// DefaultServiceUOM is used when a catalog item has no service unit.
const DefaultServiceUOM = "Hrs"

// ServiceUOMs are the units a service item row may carry.
var ServiceUOMs = []string{"Hrs", "Visit", "Session"}

func IsServiceUOM(uom string) bool {
	for _, u := range ServiceUOMs {
		if u == uom {
			return true
		}
	}
	return false
}

// Item is a catalog entry that service item rows reference by code.
type Item struct {
	ItemCode    string `json:"item_code"`
	ItemName    string `json:"item_name"`
	Description string `json:"description"`
	StockUOM    string `json:"stock_uom"`
	IsStockItem bool   `json:"is_stock_item"`
	Disabled    bool   `json:"disabled"`
	HasVariants bool   `json:"has_variants"`
}

// IsSelectableService reports whether the item may be picked on a service
// item row.
func (i Item) IsSelectableService() bool {
	return !i.IsStockItem && !i.Disabled && !i.HasVariants
}

// ServiceUOM returns the stock unit when it is a service unit, otherwise the default.
func (i Item) ServiceUOM() string {
	if IsServiceUOM(i.StockUOM) {
		return i.StockUOM
	}
	return DefaultServiceUOM
}

// DisplayDescription prefers the description and falls back to the item name.
func (i Item) DisplayDescription() string {
	if i.Description != "" {
		return i.Description
	}
	return i.ItemName
}
