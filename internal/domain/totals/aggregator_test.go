package totals

import (
	"math"
	"math/rand"
	"testing"

	"maintenance_contracts/internal/domain/entities"
)

func f(v float64) *float64 { return entities.FloatPtr(v) }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestServiceItemScenario(t *testing.T) {
	c := &entities.Contract{
		ServiceItems: []entities.ServiceItem{
			{ID: "r1", EstimatedHours: f(2), RatePerHour: f(100)},
			{ID: "r2", EstimatedHours: f(3), RatePerHour: f(50)},
		},
	}
	OnServiceItemFactorChanged(c, 0)
	OnServiceItemFactorChanged(c, 1)

	if c.ServiceItems[0].TotalCost != 200 || c.ServiceItems[1].TotalCost != 150 {
		t.Fatalf("unexpected row costs: %v %v", c.ServiceItems[0].TotalCost, c.ServiceItems[1].TotalCost)
	}
	if c.TotalEstimatedHours != 5 || c.TotalContractValue != 350 {
		t.Fatalf("unexpected totals: hours=%v value=%v", c.TotalEstimatedHours, c.TotalContractValue)
	}
	if c.PendingBalance != 350 {
		t.Fatalf("expected pending 350, got %v", c.PendingBalance)
	}
}

func TestBillingScenario(t *testing.T) {
	c := &entities.Contract{
		ServiceItems: []entities.ServiceItem{
			{ID: "r1", EstimatedHours: f(2), RatePerHour: f(100), TotalCost: 200},
			{ID: "r2", EstimatedHours: f(3), RatePerHour: f(50), TotalCost: 150},
		},
		BillingSchedule: []entities.BillingScheduleEntry{
			{ID: "b1", InvoiceAmount: f(100), InvoiceStatus: entities.InvoiceStatusPaid},
			{ID: "b2", InvoiceAmount: f(50), InvoiceStatus: entities.InvoiceStatusDraft},
		},
	}
	OnBillingEntryFieldChanged(c)

	if c.TotalContractValue != 350 || c.TotalInvoicedAmount != 100 || c.PendingBalance != 250 {
		t.Fatalf("unexpected totals: %+v", c)
	}
}

func TestRemovingOnlyServiceItem(t *testing.T) {
	c := &entities.Contract{
		ServiceItems: []entities.ServiceItem{
			{ID: "r1", EstimatedHours: f(4), RatePerHour: f(25), TotalCost: 100},
		},
		BillingSchedule: []entities.BillingScheduleEntry{
			{ID: "b1", InvoiceAmount: f(40), InvoiceStatus: entities.InvoiceStatusPaid},
		},
	}
	RecomputeContractTotals(c)

	c.ServiceItems = c.ServiceItems[:0]
	OnServiceItemRemoved(c)

	if c.TotalEstimatedHours != 0 || c.TotalContractValue != 0 {
		t.Fatalf("expected zero service totals, got hours=%v value=%v", c.TotalEstimatedHours, c.TotalContractValue)
	}
	if c.TotalInvoicedAmount != 40 || c.PendingBalance != -40 {
		t.Fatalf("expected invoiced 40 and pending -40, got %v %v", c.TotalInvoicedAmount, c.PendingBalance)
	}
}

func TestRemovingBillingEntry(t *testing.T) {
	c := &entities.Contract{
		ServiceItems: []entities.ServiceItem{{ID: "r1", EstimatedHours: f(1), RatePerHour: f(80), TotalCost: 80}},
		BillingSchedule: []entities.BillingScheduleEntry{
			{ID: "b1", InvoiceAmount: f(30), InvoiceStatus: entities.InvoiceStatusPaid},
			{ID: "b2", InvoiceAmount: f(20), InvoiceStatus: entities.InvoiceStatusPaid},
		},
	}
	RecomputeContractTotals(c)
	if c.TotalInvoicedAmount != 50 {
		t.Fatalf("expected invoiced 50, got %v", c.TotalInvoicedAmount)
	}

	c.BillingSchedule = c.BillingSchedule[:1]
	OnBillingEntryRemoved(c)
	if c.TotalInvoicedAmount != 30 || c.PendingBalance != 50 {
		t.Fatalf("unexpected totals after removal: invoiced=%v pending=%v", c.TotalInvoicedAmount, c.PendingBalance)
	}
}

func TestMissingValuesReadAsZero(t *testing.T) {
	c := &entities.Contract{
		ServiceItems: []entities.ServiceItem{
			{ID: "r1", EstimatedHours: f(5)},
			{ID: "r2", RatePerHour: f(40)},
			{ID: "r3"},
		},
		BillingSchedule: []entities.BillingScheduleEntry{
			{ID: "b1", InvoiceStatus: entities.InvoiceStatusPaid},
		},
	}
	for i := range c.ServiceItems {
		OnServiceItemFactorChanged(c, i)
	}

	for _, row := range c.ServiceItems {
		if row.TotalCost != 0 {
			t.Fatalf("expected zero cost for row %s, got %v", row.ID, row.TotalCost)
		}
	}
	if c.TotalEstimatedHours != 5 || c.TotalContractValue != 0 || c.TotalInvoicedAmount != 0 || c.PendingBalance != 0 {
		t.Fatalf("unexpected totals: %+v", c)
	}
}

func TestOutOfRangeIndexOnlyRecomputes(t *testing.T) {
	c := &entities.Contract{
		ServiceItems: []entities.ServiceItem{{ID: "r1", EstimatedHours: f(2), RatePerHour: f(10), TotalCost: 20}},
	}
	OnServiceItemFactorChanged(c, 3)
	OnServiceItemFactorChanged(c, -1)
	if c.TotalContractValue != 20 {
		t.Fatalf("expected 20, got %v", c.TotalContractValue)
	}
}

func TestRecomputeAllRefreshesStaleRows(t *testing.T) {
	c := &entities.Contract{
		ServiceItems: []entities.ServiceItem{{ID: "r1", EstimatedHours: f(2), RatePerHour: f(10), TotalCost: 999}},
	}
	RecomputeAll(c)
	if c.ServiceItems[0].TotalCost != 20 || c.TotalContractValue != 20 {
		t.Fatalf("expected refreshed row cost, got %+v", c.ServiceItems[0])
	}
}

func randomContract(r *rand.Rand) *entities.Contract {
	c := &entities.Contract{}
	for i := 0; i < 1+r.Intn(12); i++ {
		row := entities.ServiceItem{}
		if r.Intn(5) > 0 {
			row.EstimatedHours = f(float64(r.Intn(4000)) / 100)
		}
		if r.Intn(5) > 0 {
			row.RatePerHour = f(float64(r.Intn(100000)) / 100)
		}
		c.ServiceItems = append(c.ServiceItems, row)
	}
	statuses := entities.AllInvoiceStatuses
	for i := 0; i < r.Intn(8); i++ {
		entry := entities.BillingScheduleEntry{InvoiceStatus: statuses[r.Intn(len(statuses))]}
		if r.Intn(5) > 0 {
			entry.InvoiceAmount = f(float64(r.Intn(50000)) / 100)
		}
		c.BillingSchedule = append(c.BillingSchedule, entry)
	}
	return c
}

func TestRecomputeProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for n := 0; n < 200; n++ {
		c := RecomputeAll(randomContract(r))

		wantValue := 0.0
		for _, row := range c.ServiceItems {
			wantValue += row.Hours() * row.Rate()
		}
		if !almostEqual(c.TotalContractValue, wantValue) {
			t.Fatalf("value %v does not match row products %v", c.TotalContractValue, wantValue)
		}
		if !almostEqual(c.PendingBalance, c.TotalContractValue-c.TotalInvoicedAmount) {
			t.Fatalf("pending %v != %v - %v", c.PendingBalance, c.TotalContractValue, c.TotalInvoicedAmount)
		}

		before := *c
		RecomputeContractTotals(c)
		if c.TotalEstimatedHours != before.TotalEstimatedHours ||
			c.TotalContractValue != before.TotalContractValue ||
			c.TotalInvoicedAmount != before.TotalInvoicedAmount ||
			c.PendingBalance != before.PendingBalance {
			t.Fatalf("recompute is not idempotent: %+v vs %+v", before, *c)
		}

		r.Shuffle(len(c.ServiceItems), func(i, j int) {
			c.ServiceItems[i], c.ServiceItems[j] = c.ServiceItems[j], c.ServiceItems[i]
		})
		r.Shuffle(len(c.BillingSchedule), func(i, j int) {
			c.BillingSchedule[i], c.BillingSchedule[j] = c.BillingSchedule[j], c.BillingSchedule[i]
		})
		RecomputeContractTotals(c)
		if c.TotalEstimatedHours != before.TotalEstimatedHours ||
			c.TotalContractValue != before.TotalContractValue ||
			c.TotalInvoicedAmount != before.TotalInvoicedAmount ||
			c.PendingBalance != before.PendingBalance {
			t.Fatalf("recompute depends on row order")
		}
	}
}

func TestHugeFactorsSaturate(t *testing.T) {
	c := &entities.Contract{
		ServiceItems: []entities.ServiceItem{
			{ID: "r1", EstimatedHours: f(1e200), RatePerHour: f(1e200)},
			{ID: "r2", EstimatedHours: f(2), RatePerHour: f(math.Inf(1))},
		},
		BillingSchedule: []entities.BillingScheduleEntry{
			{ID: "b1", InvoiceAmount: f(math.MaxFloat64), InvoiceStatus: entities.InvoiceStatusPaid},
			{ID: "b2", InvoiceAmount: f(math.MaxFloat64), InvoiceStatus: entities.InvoiceStatusPaid},
			{ID: "b3", InvoiceAmount: f(math.NaN()), InvoiceStatus: entities.InvoiceStatusPaid},
		},
	}
	OnServiceItemFactorChanged(c, 0)
	RecomputeAll(c)

	if c.ServiceItems[0].TotalCost != math.MaxFloat64 || c.ServiceItems[1].TotalCost != math.MaxFloat64 {
		t.Fatalf("expected saturated row costs, got %v %v", c.ServiceItems[0].TotalCost, c.ServiceItems[1].TotalCost)
	}
	for name, v := range map[string]float64{
		"hours":    c.TotalEstimatedHours,
		"value":    c.TotalContractValue,
		"invoiced": c.TotalInvoicedAmount,
		"pending":  c.PendingBalance,
	} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			t.Fatalf("%s is not finite: %v", name, v)
		}
	}
}
