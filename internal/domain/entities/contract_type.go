package entities

import "time"

// ContractType is the billing cadence of a contract.
type ContractType string

const (
	ContractTypeMonthly   ContractType = "Monthly"
	ContractTypeQuarterly ContractType = "Quarterly"
	ContractTypeBiAnnual  ContractType = "Bi-Annual"
	ContractTypeAnnual    ContractType = "Annual"
)

var AllContractTypes = []ContractType{
	ContractTypeMonthly,
	ContractTypeQuarterly,
	ContractTypeBiAnnual,
	ContractTypeAnnual,
}

func (t ContractType) Valid() bool {
	_, ok := t.BillingIntervalMonths()
	return ok
}

// BillingIntervalMonths is the number of months between two invoices.
func (t ContractType) BillingIntervalMonths() (int, bool) {
	switch t {
	case ContractTypeMonthly:
		return 1, true
	case ContractTypeQuarterly:
		return 3, true
	case ContractTypeBiAnnual:
		return 6, true
	case ContractTypeAnnual:
		return 12, true
	default:
		return 0, false
	}
}

// InstallmentsPerYear is the divisor applied to the contract value to get
// one invoice amount.
func (t ContractType) InstallmentsPerYear() (int, bool) {
	months, ok := t.BillingIntervalMonths()
	if !ok {
		return 0, false
	}
	return 12 / months, true
}

// NextBillingDate returns the invoice date that follows last.
func (t ContractType) NextBillingDate(last time.Time) (time.Time, bool) {
	months, ok := t.BillingIntervalMonths()
	if !ok {
		return time.Time{}, false
	}
	return AddMonths(last, months), true
}

// AddMonths adds n calendar months, clamping the day to the end of the target
// month (Jan 31 + 1 month is Feb 28 or 29, not Mar 3).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	hh, mm, ss := t.Clock()
	return time.Date(first.Year(), first.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}

// DaysBetween counts calendar days from start to end, ignoring the clock.
func DaysBetween(start, end time.Time) int {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	from := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC).Unix()
	to := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC).Unix()
	return int((to - from) / 86400)
}
