package request

import (
	"errors"
	"strings"
	"time"

	"maintenance_contracts/internal/domain/entities"
	"maintenance_contracts/internal/usecase"
)

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// ContractRequest is the payload for creating or editing a contract header.
// Rows are only read on create.
type ContractRequest struct {
	ContractTitle         string                `json:"contract_title"`
	CustomerName          string                `json:"customer_name"`
	CustomerEmail         string                `json:"customer_email"`
	CustomerContactNumber string                `json:"customer_contact_number"`
	ContractType          string                `json:"contract_type"`
	Supervisor            string                `json:"supervisor"`
	ContractStartDate     string                `json:"contract_start_date"`
	ContractEndDate       string                `json:"contract_end_date"`
	CreatedBy             string                `json:"created_by"`
	ServiceItems          []ServiceItemRequest  `json:"service_items"`
	BillingSchedule       []BillingEntryRequest `json:"billing_schedule"`
}

type ServiceItemRequest struct {
	ServiceItem    string   `json:"service_item"`
	Description    string   `json:"description"`
	UOM            string   `json:"uom"`
	EstimatedHours *float64 `json:"estimated_hours"`
	RatePerHour    *float64 `json:"rate_per_hour"`
}

// ServiceItemPatchRequest carries the changed fields of a service item row.
type ServiceItemPatchRequest struct {
	ServiceItem    *string  `json:"service_item"`
	Description    *string  `json:"description"`
	UOM            *string  `json:"uom"`
	EstimatedHours *float64 `json:"estimated_hours"`
	RatePerHour    *float64 `json:"rate_per_hour"`
}

type BillingEntryRequest struct {
	InvoiceDate   string   `json:"invoice_date"`
	InvoiceAmount *float64 `json:"invoice_amount"`
	InvoiceStatus string   `json:"invoice_status"`
	Remarks       string   `json:"remarks"`
}

// BillingEntryPatchRequest carries the changed fields of a billing schedule row.
type BillingEntryPatchRequest struct {
	InvoiceDate   *string  `json:"invoice_date"`
	InvoiceAmount *float64 `json:"invoice_amount"`
	InvoiceStatus *string  `json:"invoice_status"`
	Remarks       *string  `json:"remarks"`
}

type StatusRequest struct {
	NewStatus string `json:"new_status" binding:"required"`
}

type SubmitRequest struct {
	Confirmed bool `json:"confirmed"`
}

type SelectServiceItemRequest struct {
	ItemCode string `json:"item_code"`
}

// ToInput converts the payload. createdBy is used when the payload does not
// name the author.
func (r ContractRequest) ToInput(createdBy string) (usecase.ContractInput, error) {
	start, err := ParseDate(r.ContractStartDate)
	if err != nil {
		return usecase.ContractInput{}, err
	}
	end, err := ParseDate(r.ContractEndDate)
	if err != nil {
		return usecase.ContractInput{}, err
	}

	in := usecase.ContractInput{
		ContractTitle:         r.ContractTitle,
		CustomerName:          r.CustomerName,
		CustomerEmail:         r.CustomerEmail,
		CustomerContactNumber: r.CustomerContactNumber,
		ContractType:          entities.ContractType(strings.TrimSpace(r.ContractType)),
		Supervisor:            r.Supervisor,
		ContractStartDate:     start,
		ContractEndDate:       end,
		CreatedBy:             r.CreatedBy,
	}
	if strings.TrimSpace(in.CreatedBy) == "" {
		in.CreatedBy = createdBy
	}

	for _, row := range r.ServiceItems {
		in.ServiceItems = append(in.ServiceItems, row.ToInput())
	}
	for _, row := range r.BillingSchedule {
		entry, err := row.ToInput()
		if err != nil {
			return usecase.ContractInput{}, err
		}
		in.BillingSchedule = append(in.BillingSchedule, entry)
	}
	return in, nil
}

func (r ServiceItemRequest) ToInput() usecase.ServiceItemInput {
	return usecase.ServiceItemInput{
		ServiceItem:    r.ServiceItem,
		Description:    r.Description,
		UOM:            r.UOM,
		EstimatedHours: r.EstimatedHours,
		RatePerHour:    r.RatePerHour,
	}
}

func (r ServiceItemPatchRequest) ToPatch() usecase.ServiceItemPatch {
	return usecase.ServiceItemPatch{
		ServiceItem:    r.ServiceItem,
		Description:    r.Description,
		UOM:            r.UOM,
		EstimatedHours: r.EstimatedHours,
		RatePerHour:    r.RatePerHour,
	}
}

func (r BillingEntryRequest) ToInput() (usecase.BillingEntryInput, error) {
	date, err := ParseDate(r.InvoiceDate)
	if err != nil {
		return usecase.BillingEntryInput{}, err
	}
	return usecase.BillingEntryInput{
		InvoiceDate:   date,
		InvoiceAmount: r.InvoiceAmount,
		InvoiceStatus: entities.InvoiceStatus(strings.TrimSpace(r.InvoiceStatus)),
		Remarks:       r.Remarks,
	}, nil
}

func (r BillingEntryPatchRequest) ToPatch() (usecase.BillingEntryPatch, error) {
	patch := usecase.BillingEntryPatch{
		InvoiceAmount: r.InvoiceAmount,
		Remarks:       r.Remarks,
	}
	if r.InvoiceDate != nil {
		date, err := ParseDate(*r.InvoiceDate)
		if err != nil {
			return usecase.BillingEntryPatch{}, err
		}
		patch.InvoiceDate = &date
	}
	if r.InvoiceStatus != nil {
		status := entities.InvoiceStatus(strings.TrimSpace(*r.InvoiceStatus))
		patch.InvoiceStatus = &status
	}
	return patch, nil
}

// ParseDate reads a YYYY-MM-DD date. An empty string is the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(entities.DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
