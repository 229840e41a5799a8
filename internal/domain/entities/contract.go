package entities

import "time"

// DateLayout is the wire and storage layout for date-only fields.
const DateLayout = "2006-01-02"

// DocStatus is the document lifecycle flag: draft documents are editable,
// submitted documents only accept billing changes, cancelled documents are frozen.
type DocStatus int

const (
	DocStatusDraft     DocStatus = 0
	DocStatusSubmitted DocStatus = 1
	DocStatusCancelled DocStatus = 2
)

// ContractStatus is the business status of a maintenance contract.
type ContractStatus string

const (
	ContractStatusDraft      ContractStatus = "Draft"
	ContractStatusActive     ContractStatus = "Active"
	ContractStatusCompleted  ContractStatus = "Completed"
	ContractStatusTerminated ContractStatus = "Terminated"
)

// AllContractStatuses lists statuses in display order.
var AllContractStatuses = []ContractStatus{
	ContractStatusDraft,
	ContractStatusActive,
	ContractStatusCompleted,
	ContractStatusTerminated,
}

func (s ContractStatus) Valid() bool {
	for _, v := range AllContractStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// InvoiceStatus is the payment state of a billing schedule entry.
// Only Paid entries count towards the invoiced total.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "Draft"
	InvoiceStatusPending InvoiceStatus = "Pending"
	InvoiceStatusSent    InvoiceStatus = "Sent"
	InvoiceStatusPaid    InvoiceStatus = "Paid"
)

var AllInvoiceStatuses = []InvoiceStatus{
	InvoiceStatusDraft,
	InvoiceStatusPending,
	InvoiceStatusSent,
	InvoiceStatusPaid,
}

func (s InvoiceStatus) Valid() bool {
	for _, v := range AllInvoiceStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ServiceItem is a billable line of a contract.
//
// EstimatedHours and RatePerHour are optional: nil means the user has not
// filled the field yet and reads as zero through Hours and Rate.
type ServiceItem struct {
	ID             string   `json:"id"`
	Idx            int      `json:"idx"`
	ServiceItem    string   `json:"service_item"`
	Description    string   `json:"description"`
	UOM            string   `json:"uom"`
	EstimatedHours *float64 `json:"estimated_hours"`
	RatePerHour    *float64 `json:"rate_per_hour"`
	TotalCost      float64  `json:"total_cost"`
}

func (s ServiceItem) Hours() float64 { return Float(s.EstimatedHours) }

func (s ServiceItem) Rate() float64 { return Float(s.RatePerHour) }

// BillingScheduleEntry is one scheduled invoice of a contract.
type BillingScheduleEntry struct {
	ID               string        `json:"id"`
	Idx              int           `json:"idx"`
	InvoiceDate      time.Time     `json:"invoice_date"`
	InvoiceAmount    *float64      `json:"invoice_amount"`
	InvoiceStatus    InvoiceStatus `json:"invoice_status"`
	Remarks          string        `json:"remarks"`
	PaymentReference string        `json:"payment_reference,omitempty"`
	PaidOn           *time.Time    `json:"paid_on,omitempty"`
}

func (b BillingScheduleEntry) Amount() float64 { return Float(b.InvoiceAmount) }

func (b BillingScheduleEntry) IsPaid() bool { return b.InvoiceStatus == InvoiceStatusPaid }

// Contract is the maintenance contract aggregate. It owns its service items
// and billing schedule; the four totals are derived and never set by callers.
type Contract struct {
	ID                    string       `json:"id"`
	ContractTitle         string       `json:"contract_title"`
	CustomerName          string       `json:"customer_name"`
	CustomerEmail         string       `json:"customer_email"`
	CustomerContactNumber string       `json:"customer_contact_number"`
	ContractType          ContractType `json:"contract_type"`
	Supervisor            string       `json:"supervisor"`

	ContractStartDate time.Time `json:"contract_start_date"`
	ContractEndDate   time.Time `json:"contract_end_date"`
	DurationInDays    int       `json:"duration_in_days"`

	Status    ContractStatus `json:"status"`
	DocStatus DocStatus      `json:"docstatus"`

	ServiceItems    []ServiceItem          `json:"service_items"`
	BillingSchedule []BillingScheduleEntry `json:"billing_schedule"`

	TotalEstimatedHours float64 `json:"total_estimated_hours"`
	TotalContractValue  float64 `json:"total_contract_value"`
	TotalInvoicedAmount float64 `json:"total_invoiced_amount"`
	PendingBalance      float64 `json:"pending_balance"`

	CreatedBy string    `json:"created_by"`
	CreatedOn time.Time `json:"created_on"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Contract) IsDraft() bool { return c.DocStatus == DocStatusDraft }

func (c *Contract) IsSubmitted() bool { return c.DocStatus == DocStatusSubmitted }

func (c *Contract) IsCancelled() bool { return c.DocStatus == DocStatusCancelled }

// RemainingBalance is what can still be invoiced, based on stored totals.
func (c *Contract) RemainingBalance() float64 {
	return c.TotalContractValue - c.TotalInvoicedAmount
}

// ServiceItemIndex returns the position of the row with the given id, or -1.
func (c *Contract) ServiceItemIndex(rowID string) int {
	for i, row := range c.ServiceItems {
		if row.ID == rowID {
			return i
		}
	}
	return -1
}

func (c *Contract) BillingEntryIndex(rowID string) int {
	for i, row := range c.BillingSchedule {
		if row.ID == rowID {
			return i
		}
	}
	return -1
}

func (c *Contract) NextServiceItemIdx() int {
	highest := 0
	for _, row := range c.ServiceItems {
		if row.Idx > highest {
			highest = row.Idx
		}
	}
	return highest + 1
}

func (c *Contract) NextBillingEntryIdx() int {
	highest := 0
	for _, row := range c.BillingSchedule {
		if row.Idx > highest {
			highest = row.Idx
		}
	}
	return highest + 1
}

// LatestBillingEntry returns the entry with the latest invoice date.
func (c *Contract) LatestBillingEntry() (BillingScheduleEntry, bool) {
	if len(c.BillingSchedule) == 0 {
		return BillingScheduleEntry{}, false
	}
	latest := c.BillingSchedule[0]
	for _, row := range c.BillingSchedule[1:] {
		if row.InvoiceDate.After(latest.InvoiceDate) {
			latest = row
		}
	}
	return latest, true
}

// Float reads an optional number, treating nil as zero.
func Float(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func FloatPtr(v float64) *float64 {
	return &v
}
