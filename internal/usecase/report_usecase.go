package usecase

import (
	"context"
	"errors"
	"sort"

	"maintenance_contracts/internal/domain/entities"
	"maintenance_contracts/internal/infrastructure/logger"
	"maintenance_contracts/internal/usecase/interfaces"
)

var ErrInvalidStatusFilter = errors.New("invalid status filter")

// FilterField describes one input of a report's filter form.
type FilterField struct {
	FieldName string
	Label     string
	FieldType string
	Options   []string
}

// ReportColumn describes one column of a report's result grid.
type ReportColumn struct {
	FieldName string
	Label     string
	FieldType string
	Options   string
	Width     int
}

//go:generate mockgen -source=report_usecase.go -destination=../adapter/http/handlers/mocks/mock_report_usecase.go -package=mocks

type IReportUseCase interface {
	FilterSchema() []FilterField
	Columns() []ReportColumn
	ActiveMaintenanceContracts(ctx context.Context, filter entities.ContractReportFilter) ([]entities.Contract, error)
}

type ReportUseCase struct {
	repo interfaces.IContractRepository
	log  *logger.Logger
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(repo interfaces.IContractRepository, log *logger.Logger) *ReportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportUseCase{repo: repo, log: log.With("usecase", "report")}
}

func (u *ReportUseCase) FilterSchema() []FilterField {
	return []FilterField{
		{
			FieldName: "contract_type",
			Label:     "Contract Type",
			FieldType: "Select",
			Options: []string{
				"",
				string(entities.ContractTypeMonthly),
				string(entities.ContractTypeQuarterly),
				string(entities.ContractTypeBiAnnual),
				string(entities.ContractTypeAnnual),
			},
		},
		{FieldName: "start_date", Label: "Start Date", FieldType: "Date"},
		{FieldName: "end_date", Label: "End Date", FieldType: "Date"},
		{
			FieldName: "status",
			Label:     "Status",
			FieldType: "MultiSelectList",
			Options: []string{
				string(entities.ContractStatusDraft),
				string(entities.ContractStatusActive),
				string(entities.ContractStatusCompleted),
				string(entities.ContractStatusTerminated),
			},
		},
	}
}

func (u *ReportUseCase) Columns() []ReportColumn {
	return []ReportColumn{
		{FieldName: "contract_title", Label: "Contract Title", FieldType: "Data", Width: 200},
		{FieldName: "customer_name", Label: "Customer Name", FieldType: "Link", Options: "Customer", Width: 200},
		{FieldName: "contract_type", Label: "Contract Type", FieldType: "Data", Width: 120},
		{FieldName: "supervisor", Label: "Supervisor", FieldType: "Link", Options: "Employee", Width: 180},
		{FieldName: "contract_start_date", Label: "Start Date", FieldType: "Date", Width: 120},
		{FieldName: "contract_end_date", Label: "End Date", FieldType: "Date", Width: 120},
		{FieldName: "total_contract_value", Label: "Total Contract Value", FieldType: "Currency", Width: 150},
		{FieldName: "total_invoiced_amount", Label: "Invoiced Amount", FieldType: "Currency", Width: 150},
		{FieldName: "status", Label: "Status", FieldType: "Data", Width: 120},
	}
}

// ActiveMaintenanceContracts returns the contracts matching filter, latest
// start date first.
func (u *ReportUseCase) ActiveMaintenanceContracts(ctx context.Context, filter entities.ContractReportFilter) ([]entities.Contract, error) {
	if filter.ContractType != "" && !filter.ContractType.Valid() {
		return nil, ErrInvalidContractType
	}
	for _, s := range filter.Statuses {
		if !s.Valid() {
			return nil, ErrInvalidStatusFilter
		}
	}

	contracts, err := u.repo.List(ctx, filter)
	if err != nil {
		u.log.Error("report query failed", "error", err)
		return nil, err
	}

	sort.SliceStable(contracts, func(i, j int) bool {
		return contracts[i].ContractStartDate.After(contracts[j].ContractStartDate)
	})
	u.log.Debug("report executed", "rows", len(contracts))
	return contracts, nil
}
