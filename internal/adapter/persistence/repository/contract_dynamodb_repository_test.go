package repository

import (
	"testing"
	"time"

	"maintenance_contracts/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestBuildReportFilter(t *testing.T) {
	t.Run("empty filter", func(t *testing.T) {
		expr, names, values := buildReportFilter(entities.ContractReportFilter{})
		if expr != "" || names != nil || values != nil {
			t.Fatalf("expected no filter, got %q", expr)
		}
	})

	t.Run("all filters", func(t *testing.T) {
		from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
		expr, names, values := buildReportFilter(entities.ContractReportFilter{
			ContractType: entities.ContractTypeMonthly,
			StartDate:    &from,
			EndDate:      &to,
			Statuses:     []entities.ContractStatus{entities.ContractStatusActive, entities.ContractStatusDraft},
		})

		want := "#contract_type = :contract_type AND #contract_start_date >= :start_date AND #contract_start_date <= :end_date AND #status IN (:status0, :status1)"
		if expr != want {
			t.Fatalf("unexpected expression:\n got %s\nwant %s", expr, want)
		}
		if names["#contract_start_date"] != "contract_start_date" || names["#status"] != "status" {
			t.Fatalf("unexpected names: %v", names)
		}
		if v, ok := values[":start_date"].(*types.AttributeValueMemberS); !ok || v.Value != "2025-01-01" {
			t.Fatalf("unexpected start date value: %#v", values[":start_date"])
		}
		if v, ok := values[":status1"].(*types.AttributeValueMemberS); !ok || v.Value != "Draft" {
			t.Fatalf("unexpected status value: %#v", values[":status1"])
		}
	})
}

func TestContractItemConversion_KeepsMissingNumbers(t *testing.T) {
	paidOn := time.Date(2025, 3, 2, 10, 30, 0, 0, time.UTC)
	c := entities.Contract{
		ID:                "pmc-1",
		ContractType:      entities.ContractTypeAnnual,
		ContractStartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ServiceItems: []entities.ServiceItem{
			{ID: "r1", Idx: 1, EstimatedHours: entities.FloatPtr(2)},
		},
		BillingSchedule: []entities.BillingScheduleEntry{
			{ID: "b1", Idx: 1, InvoiceDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), InvoiceStatus: entities.InvoiceStatusPaid, PaidOn: &paidOn},
			{ID: "b2", Idx: 2, InvoiceStatus: entities.InvoiceStatusDraft},
		},
		Version: 3,
	}

	it := toContractItem(c)
	if it.ContractEndDate != "" || it.CreatedAt != "" {
		t.Fatalf("expected zero times stored as empty strings, got %+v", it)
	}
	if it.ServiceItems[0].RatePerHour != nil {
		t.Fatalf("expected missing rate to stay missing")
	}

	back := fromContractItem(it)
	if back.ServiceItems[0].RatePerHour != nil || back.ServiceItems[0].Hours() != 2 {
		t.Fatalf("unexpected service item: %+v", back.ServiceItems[0])
	}
	if back.BillingSchedule[0].PaidOn == nil || !back.BillingSchedule[0].PaidOn.Equal(paidOn) {
		t.Fatalf("expected paid_on to survive, got %+v", back.BillingSchedule[0])
	}
	if back.BillingSchedule[1].PaidOn != nil || back.BillingSchedule[1].InvoiceAmount != nil {
		t.Fatalf("expected unpaid entry without amount, got %+v", back.BillingSchedule[1])
	}
	if !back.ContractEndDate.IsZero() || back.Version != 3 || !back.ContractStartDate.Equal(c.ContractStartDate) {
		t.Fatalf("unexpected contract fields: %+v", back)
	}
}
