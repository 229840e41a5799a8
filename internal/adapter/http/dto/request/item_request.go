package request

import "maintenance_contracts/internal/domain/entities"

// ItemRequest registers or replaces a catalog item.
type ItemRequest struct {
	ItemName    string `json:"item_name"`
	Description string `json:"description"`
	StockUOM    string `json:"stock_uom"`
	IsStockItem bool   `json:"is_stock_item"`
	Disabled    bool   `json:"disabled"`
	HasVariants bool   `json:"has_variants"`
}

func (r ItemRequest) ToItem(code string) entities.Item {
	return entities.Item{
		ItemCode:    code,
		ItemName:    r.ItemName,
		Description: r.Description,
		StockUOM:    r.StockUOM,
		IsStockItem: r.IsStockItem,
		Disabled:    r.Disabled,
		HasVariants: r.HasVariants,
	}
}
