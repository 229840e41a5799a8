package usecase

import (
	"time"

	"maintenance_contracts/internal/domain/entities"
)

// ContractInput carries the user-editable header fields of a contract and,
// on create, its initial rows.
type ContractInput struct {
	ContractTitle         string
	CustomerName          string
	CustomerEmail         string
	CustomerContactNumber string
	ContractType          entities.ContractType
	Supervisor            string
	ContractStartDate     time.Time
	ContractEndDate       time.Time
	CreatedBy             string

	ServiceItems    []ServiceItemInput
	BillingSchedule []BillingEntryInput
}

type ServiceItemInput struct {
	ServiceItem    string
	Description    string
	UOM            string
	EstimatedHours *float64
	RatePerHour    *float64
}

// ServiceItemPatch changes only the non-nil fields of a row.
type ServiceItemPatch struct {
	ServiceItem    *string
	Description    *string
	UOM            *string
	EstimatedHours *float64
	RatePerHour    *float64
}

func (p ServiceItemPatch) changesFactor() bool {
	return p.EstimatedHours != nil || p.RatePerHour != nil
}

type BillingEntryInput struct {
	InvoiceDate   time.Time
	InvoiceAmount *float64
	InvoiceStatus entities.InvoiceStatus
	Remarks       string
}

// BillingEntryPatch changes only the non-nil fields of a row.
type BillingEntryPatch struct {
	InvoiceDate   *time.Time
	InvoiceAmount *float64
	InvoiceStatus *entities.InvoiceStatus
	Remarks       *string
}
