package usecase

import (
	"context"
	"errors"
	"testing"

	"maintenance_contracts/internal/domain/entities"
	mock_interfaces "maintenance_contracts/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReportUseCase_ActiveMaintenanceContracts(t *testing.T) {
	t.Run("orders by start date descending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewReportUseCase(repo, nil)

		filter := entities.ContractReportFilter{
			ContractType: entities.ContractTypeAnnual,
			Statuses:     []entities.ContractStatus{entities.ContractStatusActive},
		}
		repo.EXPECT().List(gomock.Any(), filter).Return([]entities.Contract{
			{ID: "a", ContractStartDate: day(2024, 5, 1)},
			{ID: "b", ContractStartDate: day(2025, 2, 1)},
			{ID: "c", ContractStartDate: day(2024, 11, 1)},
		}, nil)

		got, err := uc.ActiveMaintenanceContracts(context.Background(), filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 || got[0].ID != "b" || got[1].ID != "c" || got[2].ID != "a" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("invalid filters", func(t *testing.T) {
		uc := NewReportUseCase(nil, nil)
		if _, err := uc.ActiveMaintenanceContracts(context.Background(), entities.ContractReportFilter{ContractType: "Weekly"}); !errors.Is(err, ErrInvalidContractType) {
			t.Fatalf("expected ErrInvalidContractType, got %v", err)
		}
		bad := entities.ContractReportFilter{Statuses: []entities.ContractStatus{"Paused"}}
		if _, err := uc.ActiveMaintenanceContracts(context.Background(), bad); !errors.Is(err, ErrInvalidStatusFilter) {
			t.Fatalf("expected ErrInvalidStatusFilter, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewReportUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("scan"))
		if _, err := uc.ActiveMaintenanceContracts(context.Background(), entities.ContractReportFilter{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestReportUseCase_Schema(t *testing.T) {
	uc := NewReportUseCase(nil, nil)

	fields := uc.FilterSchema()
	if len(fields) != 4 || fields[0].FieldName != "contract_type" || fields[3].FieldType != "MultiSelectList" {
		t.Fatalf("unexpected filter schema: %+v", fields)
	}
	if fields[0].Options[0] != "" || len(fields[0].Options) != 5 {
		t.Fatalf("expected blank first contract type option: %v", fields[0].Options)
	}

	cols := uc.Columns()
	if len(cols) != 9 || cols[0].Label != "Contract Title" || cols[7].FieldName != "total_invoiced_amount" || cols[8].Width != 120 {
		t.Fatalf("unexpected columns: %+v", cols)
	}
}
