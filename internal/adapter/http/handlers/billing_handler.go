package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "maintenance_contracts/internal/adapter/http/dto/request"
	response "maintenance_contracts/internal/adapter/http/dto/response"
	"maintenance_contracts/internal/infrastructure/logger"
	"maintenance_contracts/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BillingHandler serves the server procedures of submitted contracts.
type BillingHandler struct {
	usecase      usecase.IBillingUseCase
	mockPayments bool
	log          *logger.Logger
}

// NewBillingHandler builds the handler. With mockPayments an unreadable
// payment payload is replaced by an empty one instead of being rejected.
func NewBillingHandler(uc usecase.IBillingUseCase, mockPayments bool, log *logger.Logger) *BillingHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &BillingHandler{usecase: uc, mockPayments: mockPayments, log: log.With("handler", "billing")}
}

// CreateBillingEntry godoc
// @Summary Add a manual billing entry to a submitted contract
// @Tags billing
// @Accept json
// @Produce json
// @Param id path string true "Contract id"
// @Param entry body request.BillingEntryRequest true "Entry"
// @Success 201 {object} response.MessageResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /contracts/{id}/billing-entries [post]
func (h *BillingHandler) CreateBillingEntry(c *gin.Context) {
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

	msg, err := h.usecase.CreateBillingEntry(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: msg})
}

// GenerateNextInvoice godoc
// @Summary Schedule the next installment of a contract
// @Description Expected failures are reported with success=false and status 200.
// @Tags billing
// @Produce json
// @Param id path string true "Contract id"
// @Success 200 {object} response.InvoiceResultResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /contracts/{id}/invoices/next [post]
func (h *BillingHandler) GenerateNextInvoice(c *gin.Context) {
	res, err := h.usecase.GenerateNextInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoiceResult(res))
}

// PayBillingEntry godoc
// @Summary Pay a billing schedule entry through Mercado Pago
// @Description Returns 200 when the entry was paid and 202 when the provider did not approve the payment.
// @Tags billing
// @Accept json
// @Produce json
// @Param id path string true "Contract id"
// @Param row_id path string true "Billing entry id"
// @Param body body request.PaymentRequest false "Mercado Pago payment payload"
// @Success 200 {object} response.PaymentResponse
// @Success 202 {object} response.PaymentResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 503 {object} pkg.HTTPError
// @Router /contracts/{id}/billing-schedule/{row_id}/payments [post]
func (h *BillingHandler) PayBillingEntry(c *gin.Context) {
	id, rowID := c.Param("id"), c.Param("row_id")
	h.log.Debug("payment start", "contract_id", id, "entry_id", rowID)

	payload, err := readMPPayload(c)
	if err != nil {
		if !h.mockPayments {
			h.log.Warn("invalid payment payload", "contract_id", id, "entry_id", rowID, "error", err)
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
		h.log.Info("payload invalid in mock mode, using empty payload", "contract_id", id, "entry_id", rowID, "error", err)
		payload = json.RawMessage("{}")
	}

	res, err := h.usecase.PayBillingEntry(c.Request.Context(), id, rowID, payload)
	if err != nil {
		h.log.Warn("payment failed", "contract_id", id, "entry_id", rowID, "error", err)
		writeError(c, err)
		return
	}

	status := http.StatusOK
	if !res.Paid {
		status = http.StatusAccepted
	}
	c.JSON(status, response.FromPayment(res))
}

// readMPPayload accepts either {"mp_payload": {...}} or a bare payment object.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
