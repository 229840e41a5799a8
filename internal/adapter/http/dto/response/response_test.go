package response

import (
	"encoding/json"
	"testing"
	"time"

	"maintenance_contracts/internal/domain/entities"
	"maintenance_contracts/internal/usecase"
)

func TestFromContract(t *testing.T) {
	paidOn := time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC)
	c := entities.Contract{
		ID:                "c-1",
		ContractType:      entities.ContractTypeBiAnnual,
		ContractStartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:            entities.ContractStatusActive,
		DocStatus:         entities.DocStatusSubmitted,
		ServiceItems:      []entities.ServiceItem{{ID: "s1", Idx: 1, TotalCost: 10}},
		BillingSchedule: []entities.BillingScheduleEntry{
			{ID: "b1", Idx: 1, InvoiceDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), InvoiceStatus: entities.InvoiceStatusPaid, PaidOn: &paidOn},
		},
		PendingBalance: -5,
	}

	res := FromContract(c)
	if res.ContractStartDate != "2025-01-01" || res.ContractEndDate != "" || res.DocStatus != 1 {
		t.Fatalf("unexpected header: %+v", res)
	}
	if res.BillingSchedule[0].InvoiceDate != "2025-02-01" || *res.BillingSchedule[0].PaidOn != "2025-02-03T10:00:00Z" {
		t.Fatalf("unexpected billing row: %+v", res.BillingSchedule[0])
	}
	if res.PendingBalance != -5 || len(res.ServiceItems) != 1 {
		t.Fatalf("unexpected rows or totals: %+v", res)
	}

	b, err := json.Marshal(FromContract(entities.Contract{}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	_ = json.Unmarshal(b, &raw)
	if rows, ok := raw["service_items"].([]any); !ok || len(rows) != 0 {
		t.Fatalf("expected empty service_items array, got %v", raw["service_items"])
	}
}

func TestFromServiceItemDetails(t *testing.T) {
	res := FromServiceItemDetails(usecase.ServiceItemDetails{Valid: false, Description: "ignored"})
	b, _ := json.Marshal(res)
	if string(b) != `{"valid":false}` {
		t.Fatalf("unexpected json: %s", b)
	}

	res = FromServiceItemDetails(usecase.ServiceItemDetails{Valid: true, Description: "AC", UOM: "Hrs"})
	if !res.Valid || res.Description != "AC" || res.UOM != "Hrs" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromReport(t *testing.T) {
	cols := []usecase.ReportColumn{{FieldName: "status", Label: "Status", FieldType: "Data", Width: 120}}
	res := FromReport(cols, []entities.Contract{{ContractTitle: "A", Status: entities.ContractStatusActive}})
	if len(res.Columns) != 1 || res.Columns[0].Width != 120 {
		t.Fatalf("unexpected columns: %+v", res.Columns)
	}
	if len(res.Data) != 1 || res.Data[0].ContractTitle != "A" || res.Data[0].Status != "Active" {
		t.Fatalf("unexpected data: %+v", res.Data)
	}
}

func TestFromPayment(t *testing.T) {
	res := FromPayment(usecase.PaymentResult{EntryID: "b1", Paid: true, ProviderStatus: "approved", ProviderResponse: json.RawMessage(`{`)})
	if res.ProviderResponse != nil || !res.Paid || res.EntryID != "b1" {
		t.Fatalf("unexpected response: %+v", res)
	}
}
