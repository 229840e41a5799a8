package entities

import "time"

// ContractReportFilter selects contracts for the active maintenance contracts
// report. Zero fields do not filter; StartDate and EndDate both bound the
// contract start date.
type ContractReportFilter struct {
	ContractType ContractType
	StartDate    *time.Time
	EndDate      *time.Time
	Statuses     []ContractStatus
}
