package request

import (
	"errors"
	"testing"
	"time"

	"maintenance_contracts/internal/domain/entities"
)

func TestContractRequest_ToInput(t *testing.T) {
	hours := 2.0
	r := ContractRequest{
		ContractTitle:     "HVAC",
		ContractType:      " Monthly ",
		ContractStartDate: "2025-01-01",
		ContractEndDate:   "2025-12-31",
		ServiceItems:      []ServiceItemRequest{{ServiceItem: "AC", EstimatedHours: &hours}},
		BillingSchedule:   []BillingEntryRequest{{InvoiceDate: "2025-02-01", InvoiceStatus: "Paid"}},
	}

	in, err := r.ToInput("jane")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ContractType != entities.ContractTypeMonthly || in.CreatedBy != "jane" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if !in.ContractStartDate.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start date: %s", in.ContractStartDate)
	}
	if len(in.ServiceItems) != 1 || *in.ServiceItems[0].EstimatedHours != 2 {
		t.Fatalf("unexpected rows: %+v", in.ServiceItems)
	}
	if in.BillingSchedule[0].InvoiceStatus != entities.InvoiceStatusPaid {
		t.Fatalf("unexpected billing rows: %+v", in.BillingSchedule)
	}

	r.CreatedBy = "ops"
	if in, _ := r.ToInput("jane"); in.CreatedBy != "ops" {
		t.Fatalf("expected payload author to win, got %q", in.CreatedBy)
	}

	r.ContractEndDate = "31/12/2025"
	if _, err := r.ToInput(""); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestBillingEntryPatchRequest_ToPatch(t *testing.T) {
	date := "2025-03-01"
	status := "Sent"
	patch, err := BillingEntryPatchRequest{InvoiceDate: &date, InvoiceStatus: &status}.ToPatch()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patch.InvoiceDate == nil || patch.InvoiceDate.Month() != time.March || *patch.InvoiceStatus != entities.InvoiceStatusSent {
		t.Fatalf("unexpected patch: %+v", patch)
	}
	if patch.InvoiceAmount != nil || patch.Remarks != nil {
		t.Fatalf("expected untouched fields to stay nil")
	}

	bad := "soon"
	if _, err := (BillingEntryPatchRequest{InvoiceDate: &bad}).ToPatch(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestReportFilterRequest_ToFilter(t *testing.T) {
	f, err := ReportFilterRequest{
		ContractType: "Annual",
		StartDate:    "2025-01-01",
		Status:       []string{"Active, Completed", "Draft", " "},
	}.ToFilter()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.ContractType != entities.ContractTypeAnnual || f.StartDate == nil || f.EndDate != nil {
		t.Fatalf("unexpected filter: %+v", f)
	}
	want := []entities.ContractStatus{entities.ContractStatusActive, entities.ContractStatusCompleted, entities.ContractStatusDraft}
	if len(f.Statuses) != len(want) {
		t.Fatalf("unexpected statuses: %v", f.Statuses)
	}
	for i := range want {
		if f.Statuses[i] != want[i] {
			t.Fatalf("unexpected statuses: %v", f.Statuses)
		}
	}

	empty, err := ReportFilterRequest{}.ToFilter()
	if err != nil || empty.ContractType != "" || empty.StartDate != nil || empty.Statuses != nil {
		t.Fatalf("expected empty filter, got %+v err=%v", empty, err)
	}
}
