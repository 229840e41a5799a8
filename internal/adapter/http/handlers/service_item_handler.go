package handlers

import (
	"net/http"

	request "maintenance_contracts/internal/adapter/http/dto/request"
	response "maintenance_contracts/internal/adapter/http/dto/response"
	"maintenance_contracts/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceItemHandler exposes the item catalog used by service item rows.
type ServiceItemHandler struct {
	usecase usecase.IServiceItemUseCase
}

func NewServiceItemHandler(uc usecase.IServiceItemUseCase) *ServiceItemHandler {
	return &ServiceItemHandler{usecase: uc}
}

// ListServiceItems godoc
// @Summary Items selectable on a service item row
// @Description Non-stock, enabled, non-template items.
// @Tags catalog
// @Produce json
// @Success 200 {array} response.ItemResponse
// @Router /service-items [get]
func (h *ServiceItemHandler) ListServiceItems(c *gin.Context) {
	items, err := h.usecase.ListSelectable(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromItems(items))
}

// GetServiceItemDetails godoc
// @Summary Description and unit of a service item
// @Description Unknown and stock items answer valid=false.
// @Tags catalog
// @Produce json
// @Param item_code path string true "Item code"
// @Success 200 {object} response.ServiceItemDetailsResponse
// @Router /service-items/{item_code}/details [get]
func (h *ServiceItemHandler) GetServiceItemDetails(c *gin.Context) {
	details, err := h.usecase.GetServiceItemDetails(c.Request.Context(), c.Param("item_code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceItemDetails(details))
}

// UpsertItem godoc
// @Summary Register or replace a catalog item
// @Tags catalog
// @Accept json
// @Produce json
// @Param item_code path string true "Item code"
// @Param item body request.ItemRequest true "Item"
// @Success 200 {object} response.ItemResponse
// @Router /service-items/{item_code} [put]
func (h *ServiceItemHandler) UpsertItem(c *gin.Context) {
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.UpsertItem(c.Request.Context(), payload.ToItem(c.Param("item_code")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromItem(item))
}
