// Package totals keeps the derived fields of a contract in step with its rows.
//
// Every edit of a contributing field (a service item factor, a billing entry
// amount or status) or a row removal must pass through one of the On* hooks
// before the contract is saved. Sums use decimal arithmetic so the result does
// not depend on row order.
package totals

import (
	"math"

	"maintenance_contracts/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// OnServiceItemFactorChanged refreshes the total cost of the row at index and
// recomputes the contract. An out of range index only recomputes.
func OnServiceItemFactorChanged(c *entities.Contract, index int) *entities.Contract {
	if index >= 0 && index < len(c.ServiceItems) {
		row := &c.ServiceItems[index]
		row.TotalCost = rowCost(*row)
	}
	return RecomputeContractTotals(c)
}

func OnServiceItemRemoved(c *entities.Contract) *entities.Contract {
	return RecomputeContractTotals(c)
}

func OnBillingEntryRemoved(c *entities.Contract) *entities.Contract {
	return RecomputeContractTotals(c)
}

func OnBillingEntryFieldChanged(c *entities.Contract) *entities.Contract {
	return RecomputeContractTotals(c)
}

// RecomputeAll refreshes every row cost before recomputing the contract.
// Used when a whole record is saved rather than a single row edited.
func RecomputeAll(c *entities.Contract) *entities.Contract {
	for i := range c.ServiceItems {
		c.ServiceItems[i].TotalCost = rowCost(c.ServiceItems[i])
	}
	return RecomputeContractTotals(c)
}

// RecomputeContractTotals overwrites the four derived contract fields from
// the current rows. It only reads the rows.
func RecomputeContractTotals(c *entities.Contract) *entities.Contract {
	hours := decimal.Zero
	value := decimal.Zero
	for _, row := range c.ServiceItems {
		hours = hours.Add(fromFloat(row.Hours()))
		value = value.Add(fromFloat(row.TotalCost))
	}

	invoiced := decimal.Zero
	for _, entry := range c.BillingSchedule {
		if entry.IsPaid() {
			invoiced = invoiced.Add(fromFloat(entry.Amount()))
		}
	}

	c.TotalEstimatedHours = toFloat(hours)
	c.TotalContractValue = toFloat(value)
	c.TotalInvoicedAmount = toFloat(invoiced)
	c.PendingBalance = toFloat(value.Sub(invoiced))
	return c
}

func rowCost(row entities.ServiceItem) float64 {
	return toFloat(fromFloat(row.Hours()).Mul(fromFloat(row.Rate())))
}

// fromFloat reads NaN as zero and infinities as the largest finite float.
func fromFloat(v float64) decimal.Decimal {
	switch {
	case math.IsNaN(v):
		return decimal.Zero
	case math.IsInf(v, 1):
		return decimal.NewFromFloat(math.MaxFloat64)
	case math.IsInf(v, -1):
		return decimal.NewFromFloat(-math.MaxFloat64)
	}
	return decimal.NewFromFloat(v)
}

// toFloat saturates at the largest finite float instead of returning an
// infinity.
func toFloat(d decimal.Decimal) float64 {
	v := d.InexactFloat64()
	switch {
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}
