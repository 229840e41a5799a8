package handlers

import (
	"net/http"

	request "maintenance_contracts/internal/adapter/http/dto/request"
	response "maintenance_contracts/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

// AddServiceItem godoc
// @Summary Add a service item row to a draft contract
// @Tags service-items
// @Accept json
// @Produce json
// @Param id path string true "Contract id"
// @Param row body request.ServiceItemRequest true "Row"
// @Success 201 {object} response.ContractResponse
// @Router /contracts/{id}/service-items [post]
func (h *ContractHandler) AddServiceItem(c *gin.Context) {
	var payload request.ServiceItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.AddServiceItem(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromContract(contract))
}

// UpdateServiceItem godoc
// @Summary Edit a service item row
// @Tags service-items
// @Accept json
// @Produce json
// @Param id path string true "Contract id"
// @Param row_id path string true "Row id"
// @Param row body request.ServiceItemPatchRequest true "Changed fields"
// @Success 200 {object} response.ContractResponse
// @Router /contracts/{id}/service-items/{row_id} [patch]
func (h *ContractHandler) UpdateServiceItem(c *gin.Context) {
	var payload request.ServiceItemPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.UpdateServiceItem(c.Request.Context(), c.Param("id"), c.Param("row_id"), payload.ToPatch())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// RemoveServiceItem godoc
// @Summary Remove a service item row
// @Tags service-items
// @Produce json
// @Param id path string true "Contract id"
// @Param row_id path string true "Row id"
// @Success 200 {object} response.ContractResponse
// @Router /contracts/{id}/service-items/{row_id} [delete]
func (h *ContractHandler) RemoveServiceItem(c *gin.Context) {
	contract, err := h.usecase.RemoveServiceItem(c.Request.Context(), c.Param("id"), c.Param("row_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// SelectServiceItem godoc
// @Summary Pick the catalog item of a service item row
// @Description Fills description and unit from the catalog. Unknown or stock items clear the row's item.
// @Tags service-items
// @Accept json
// @Produce json
// @Param id path string true "Contract id"
// @Param row_id path string true "Row id"
// @Param body body request.SelectServiceItemRequest true "Item code"
// @Success 200 {object} response.SelectServiceItemResponse
// @Router /contracts/{id}/service-items/{row_id}/select [post]
func (h *ContractHandler) SelectServiceItem(c *gin.Context) {
	var payload request.SelectServiceItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.SelectServiceItem(c.Request.Context(), c.Param("id"), c.Param("row_id"), payload.ItemCode)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSelectServiceItem(res))
}

// AddBillingEntry godoc
// @Summary Add a billing schedule row
// @Tags billing-schedule
// @Accept json
// @Produce json
// @Param id path string true "Contract id"
// @Param row body request.BillingEntryRequest true "Row"
// @Success 201 {object} response.ContractResponse
// @Router /contracts/{id}/billing-schedule [post]
func (h *ContractHandler) AddBillingEntry(c *gin.Context) {
	var payload request.BillingEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		writeError(c, err)
		return
	}

	contract, err := h.usecase.AddBillingEntry(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromContract(contract))
}

// UpdateBillingEntry godoc
// @Summary Edit a billing schedule row
// @Tags billing-schedule
// @Accept json
// @Produce json
// @Param id path string true "Contract id"
// @Param row_id path string true "Row id"
// @Param row body request.BillingEntryPatchRequest true "Changed fields"
// @Success 200 {object} response.ContractResponse
// @Router /contracts/{id}/billing-schedule/{row_id} [patch]
func (h *ContractHandler) UpdateBillingEntry(c *gin.Context) {
	var payload request.BillingEntryPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	patch, err := payload.ToPatch()
	if err != nil {
		writeError(c, err)
		return
	}

	contract, err := h.usecase.UpdateBillingEntry(c.Request.Context(), c.Param("id"), c.Param("row_id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// RemoveBillingEntry godoc
// @Summary Remove a billing schedule row
// @Tags billing-schedule
// @Produce json
// @Param id path string true "Contract id"
// @Param row_id path string true "Row id"
// @Success 200 {object} response.ContractResponse
// @Router /contracts/{id}/billing-schedule/{row_id} [delete]
func (h *ContractHandler) RemoveBillingEntry(c *gin.Context) {
	contract, err := h.usecase.RemoveBillingEntry(c.Request.Context(), c.Param("id"), c.Param("row_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}
