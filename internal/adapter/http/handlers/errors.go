package handlers

import (
	"errors"
	"net/http"

	request "maintenance_contracts/internal/adapter/http/dto/request"
	"maintenance_contracts/internal/usecase"
	"maintenance_contracts/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// validationErrors are rejected inputs whose message is shown to the user.
var validationErrors = []error{
	usecase.ErrInvalidContractType,
	usecase.ErrInvalidDateRange,
	usecase.ErrNegativeFactor,
	usecase.ErrValueOutOfRange,
	usecase.ErrInvalidInvoiceStatus,
	usecase.ErrInvalidInvoiceAmount,
	usecase.ErrInvoiceAmountExceedsRemaining,
	usecase.ErrInvalidStatusFilter,
	usecase.ErrInvalidPaymentPayload,
	usecase.ErrZeroEstimatedHours,
	usecase.ErrZeroContractValue,
	usecase.ErrInvoicedExceedsValue,
	usecase.ErrCustomerNameRequired,
	usecase.ErrContractTypeRequired,
	usecase.ErrServiceItemsRequired,
	usecase.ErrServiceItemDescriptionRequired,
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID), errors.Is(err, usecase.ErrInvalidItemCode), errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionNotConfirmed):
		return pkg.NewDomainErrorSimple("ACTION_CANCELLED", "Action cancelled by user.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceItemNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ITEM_NOT_FOUND", "Service item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillingEntryNotFound):
		return pkg.NewDomainErrorSimple("BILLING_ENTRY_NOT_FOUND", "Billing entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractConflict):
		return pkg.NewDomainErrorSimple("CONTRACT_CONFLICT", "Contract was modified by another request, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrContractNotEditable):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_EDITABLE", "Only draft contracts can be edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrContractCancelled):
		return pkg.NewDomainErrorSimple("CONTRACT_CANCELLED", "Cancelled contracts cannot be changed", http.StatusConflict)
	case errors.Is(err, usecase.ErrContractNotSubmitted):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_SUBMITTED", "Contract is not submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingEntryAlreadyPaid):
		return pkg.NewDomainErrorSimple("BILLING_ENTRY_ALREADY_PAID", "Billing entry is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainError("VALIDATION_ERROR", "Invalid status. Only 'Completed' or 'Terminated' allowed.", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	}
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return pkg.NewDomainError("VALIDATION_ERROR", v.Error(), err, http.StatusUnprocessableEntity)
		}
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func writeError(c *gin.Context, err error) {
	appErr := mapContractError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
