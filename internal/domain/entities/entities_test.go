package entities

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestContractType_Schedule(t *testing.T) {
	tests := []struct {
		typ          ContractType
		months       int
		installments int
	}{
		{ContractTypeMonthly, 1, 12},
		{ContractTypeQuarterly, 3, 4},
		{ContractTypeBiAnnual, 6, 2},
		{ContractTypeAnnual, 12, 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			months, ok := tt.typ.BillingIntervalMonths()
			if !ok || months != tt.months {
				t.Fatalf("BillingIntervalMonths() = %d, %v", months, ok)
			}
			n, ok := tt.typ.InstallmentsPerYear()
			if !ok || n != tt.installments {
				t.Fatalf("InstallmentsPerYear() = %d, %v", n, ok)
			}
		})
	}

	if ContractType("Weekly").Valid() {
		t.Fatalf("expected unknown type to be invalid")
	}
	if _, ok := ContractType("").NextBillingDate(date(2025, 1, 1)); ok {
		t.Fatalf("expected no next date for empty type")
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		n    int
		want time.Time
	}{
		{"plain", date(2025, 3, 15), 1, date(2025, 4, 15)},
		{"clamps to february", date(2025, 1, 31), 1, date(2025, 2, 28)},
		{"leap year", date(2024, 1, 31), 1, date(2024, 2, 29)},
		{"crosses year", date(2025, 11, 30), 3, date(2026, 2, 28)},
		{"annual", date(2025, 6, 1), 12, date(2026, 6, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddMonths(tt.from, tt.n); !got.Equal(tt.want) {
				t.Errorf("AddMonths() = %s, want %s", got.Format(DateLayout), tt.want.Format(DateLayout))
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"same day", date(2025, 3, 10), date(2025, 3, 10), 0},
		{"one year", date(2025, 1, 1), date(2026, 1, 1), 365},
		{"leap year", date(2024, 1, 1), date(2025, 1, 1), 366},
		{"ignores clock", time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC), time.Date(2025, 1, 2, 1, 0, 0, 0, time.UTC), 1},
		{"beyond duration range", date(1, 1, 1), date(9999, 12, 31), 3652058},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContract_RowHelpers(t *testing.T) {
	c := &Contract{
		ServiceItems: []ServiceItem{{ID: "a", Idx: 1}, {ID: "b", Idx: 4}},
		BillingSchedule: []BillingScheduleEntry{
			{ID: "x", Idx: 2, InvoiceDate: date(2025, 1, 1)},
			{ID: "y", Idx: 1, InvoiceDate: date(2025, 4, 1)},
			{ID: "z", Idx: 3, InvoiceDate: date(2025, 2, 1)},
		},
		TotalContractValue:  500,
		TotalInvoicedAmount: 120,
	}

	if c.ServiceItemIndex("b") != 1 || c.ServiceItemIndex("missing") != -1 {
		t.Fatalf("unexpected service item index")
	}
	if c.BillingEntryIndex("z") != 2 || c.BillingEntryIndex("missing") != -1 {
		t.Fatalf("unexpected billing entry index")
	}
	if c.NextServiceItemIdx() != 5 || c.NextBillingEntryIdx() != 4 {
		t.Fatalf("unexpected next idx: %d %d", c.NextServiceItemIdx(), c.NextBillingEntryIdx())
	}
	latest, ok := c.LatestBillingEntry()
	if !ok || latest.ID != "y" {
		t.Fatalf("expected latest entry y, got %+v", latest)
	}
	if c.RemainingBalance() != 380 {
		t.Fatalf("RemainingBalance() = %v", c.RemainingBalance())
	}

	empty := &Contract{}
	if _, ok := empty.LatestBillingEntry(); ok {
		t.Fatalf("expected no latest entry")
	}
	if empty.NextBillingEntryIdx() != 1 {
		t.Fatalf("expected idx 1 on empty schedule")
	}
}

func TestOptionalNumbers(t *testing.T) {
	row := ServiceItem{}
	if row.Hours() != 0 || row.Rate() != 0 {
		t.Fatalf("expected missing factors to read as zero")
	}
	row.EstimatedHours = FloatPtr(2.5)
	if row.Hours() != 2.5 {
		t.Fatalf("Hours() = %v", row.Hours())
	}
	entry := BillingScheduleEntry{InvoiceStatus: InvoiceStatusPaid}
	if entry.Amount() != 0 || !entry.IsPaid() {
		t.Fatalf("unexpected entry helpers")
	}
}

func TestItem_ServiceHelpers(t *testing.T) {
	tests := []struct {
		name     string
		item     Item
		uom      string
		desc     string
		selectOK bool
	}{
		{"service with visit unit", Item{ItemName: "AC check", StockUOM: "Visit"}, "Visit", "AC check", true},
		{"unknown unit falls back", Item{Description: "Cleaning", StockUOM: "Nos"}, "Hrs", "Cleaning", true},
		{"stock item", Item{IsStockItem: true}, "Hrs", "", false},
		{"disabled", Item{Disabled: true, StockUOM: "Session"}, "Session", "", false},
		{"template", Item{HasVariants: true}, "Hrs", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.ServiceUOM(); got != tt.uom {
				t.Errorf("ServiceUOM() = %q, want %q", got, tt.uom)
			}
			if got := tt.item.DisplayDescription(); got != tt.desc {
				t.Errorf("DisplayDescription() = %q, want %q", got, tt.desc)
			}
			if got := tt.item.IsSelectableService(); got != tt.selectOK {
				t.Errorf("IsSelectableService() = %v, want %v", got, tt.selectOK)
			}
		})
	}
}
