package response

import (
	"maintenance_contracts/internal/domain/entities"
	"maintenance_contracts/internal/usecase"
)

type ServiceItemDetailsResponse struct {
	Valid       bool   `json:"valid"`
	Description string `json:"description,omitempty"`
	UOM         string `json:"uom,omitempty"`
}

type ItemResponse struct {
	ItemCode    string `json:"item_code"`
	ItemName    string `json:"item_name"`
	Description string `json:"description"`
	StockUOM    string `json:"stock_uom"`
	IsStockItem bool   `json:"is_stock_item"`
	Disabled    bool   `json:"disabled"`
	HasVariants bool   `json:"has_variants"`
}

func FromServiceItemDetails(d usecase.ServiceItemDetails) ServiceItemDetailsResponse {
	if !d.Valid {
		return ServiceItemDetailsResponse{Valid: false}
	}
	return ServiceItemDetailsResponse{Valid: true, Description: d.Description, UOM: d.UOM}
}

func FromItem(i entities.Item) ItemResponse {
	return ItemResponse(i)
}

func FromItems(items []entities.Item) []ItemResponse {
	res := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		res = append(res, FromItem(i))
	}
	return res
}
