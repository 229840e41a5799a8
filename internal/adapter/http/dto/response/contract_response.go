package response

import (
	"time"

	"maintenance_contracts/internal/domain/entities"
)

type ServiceItemResponse struct {
	ID             string   `json:"id"`
	Idx            int      `json:"idx"`
	ServiceItem    string   `json:"service_item"`
	Description    string   `json:"description"`
	UOM            string   `json:"uom"`
	EstimatedHours *float64 `json:"estimated_hours"`
	RatePerHour    *float64 `json:"rate_per_hour"`
	TotalCost      float64  `json:"total_cost"`
}

type BillingEntryResponse struct {
	ID               string   `json:"id"`
	Idx              int      `json:"idx"`
	InvoiceDate      string   `json:"invoice_date"`
	InvoiceAmount    *float64 `json:"invoice_amount"`
	InvoiceStatus    string   `json:"invoice_status"`
	Remarks          string   `json:"remarks,omitempty"`
	PaymentReference string   `json:"payment_reference,omitempty"`
	PaidOn           *string  `json:"paid_on,omitempty"`
}

type ContractResponse struct {
	ID                    string                 `json:"id"`
	ContractTitle         string                 `json:"contract_title"`
	CustomerName          string                 `json:"customer_name"`
	CustomerEmail         string                 `json:"customer_email,omitempty"`
	CustomerContactNumber string                 `json:"customer_contact_number,omitempty"`
	ContractType          string                 `json:"contract_type"`
	Supervisor            string                 `json:"supervisor,omitempty"`
	ContractStartDate     string                 `json:"contract_start_date"`
	ContractEndDate       string                 `json:"contract_end_date"`
	DurationInDays        int                    `json:"duration_in_days"`
	Status                string                 `json:"status"`
	DocStatus             int                    `json:"docstatus"`
	ServiceItems          []ServiceItemResponse  `json:"service_items"`
	BillingSchedule       []BillingEntryResponse `json:"billing_schedule"`
	TotalEstimatedHours   float64                `json:"total_estimated_hours"`
	TotalContractValue    float64                `json:"total_contract_value"`
	TotalInvoicedAmount   float64                `json:"total_invoiced_amount"`
	PendingBalance        float64                `json:"pending_balance"`
	CreatedBy             string                 `json:"created_by"`
	CreatedOn             string                 `json:"created_on"`
	Version               int64                  `json:"version"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             time.Time              `json:"updated_at"`
}

func FromContract(c entities.Contract) ContractResponse {
	res := ContractResponse{
		ID:                    c.ID,
		ContractTitle:         c.ContractTitle,
		CustomerName:          c.CustomerName,
		CustomerEmail:         c.CustomerEmail,
		CustomerContactNumber: c.CustomerContactNumber,
		ContractType:          string(c.ContractType),
		Supervisor:            c.Supervisor,
		ContractStartDate:     formatDate(c.ContractStartDate),
		ContractEndDate:       formatDate(c.ContractEndDate),
		DurationInDays:        c.DurationInDays,
		Status:                string(c.Status),
		DocStatus:             int(c.DocStatus),
		ServiceItems:          make([]ServiceItemResponse, 0, len(c.ServiceItems)),
		BillingSchedule:       make([]BillingEntryResponse, 0, len(c.BillingSchedule)),
		TotalEstimatedHours:   c.TotalEstimatedHours,
		TotalContractValue:    c.TotalContractValue,
		TotalInvoicedAmount:   c.TotalInvoicedAmount,
		PendingBalance:        c.PendingBalance,
		CreatedBy:             c.CreatedBy,
		CreatedOn:             formatDate(c.CreatedOn),
		Version:               c.Version,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}

	for _, row := range c.ServiceItems {
		res.ServiceItems = append(res.ServiceItems, ServiceItemResponse{
			ID:             row.ID,
			Idx:            row.Idx,
			ServiceItem:    row.ServiceItem,
			Description:    row.Description,
			UOM:            row.UOM,
			EstimatedHours: row.EstimatedHours,
			RatePerHour:    row.RatePerHour,
			TotalCost:      row.TotalCost,
		})
	}
	for _, entry := range c.BillingSchedule {
		e := BillingEntryResponse{
			ID:               entry.ID,
			Idx:              entry.Idx,
			InvoiceDate:      formatDate(entry.InvoiceDate),
			InvoiceAmount:    entry.InvoiceAmount,
			InvoiceStatus:    string(entry.InvoiceStatus),
			Remarks:          entry.Remarks,
			PaymentReference: entry.PaymentReference,
		}
		if entry.PaidOn != nil {
			paid := entry.PaidOn.UTC().Format(time.RFC3339)
			e.PaidOn = &paid
		}
		res.BillingSchedule = append(res.BillingSchedule, e)
	}
	return res
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(entities.DateLayout)
}
