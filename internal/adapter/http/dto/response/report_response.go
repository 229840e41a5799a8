package response

import (
	"maintenance_contracts/internal/domain/entities"
	"maintenance_contracts/internal/usecase"
)

type FilterFieldResponse struct {
	FieldName string   `json:"fieldname"`
	Label     string   `json:"label"`
	FieldType string   `json:"fieldtype"`
	Options   []string `json:"options,omitempty"`
}

type ReportColumnResponse struct {
	FieldName string `json:"fieldname"`
	Label     string `json:"label"`
	FieldType string `json:"fieldtype"`
	Options   string `json:"options,omitempty"`
	Width     int    `json:"width"`
}

type ContractReportRowResponse struct {
	ContractTitle       string  `json:"contract_title"`
	CustomerName        string  `json:"customer_name"`
	ContractType        string  `json:"contract_type"`
	Supervisor          string  `json:"supervisor"`
	ContractStartDate   string  `json:"contract_start_date"`
	ContractEndDate     string  `json:"contract_end_date"`
	TotalContractValue  float64 `json:"total_contract_value"`
	TotalInvoicedAmount float64 `json:"total_invoiced_amount"`
	Status              string  `json:"status"`
}

type ReportResponse struct {
	Columns []ReportColumnResponse      `json:"columns"`
	Data    []ContractReportRowResponse `json:"data"`
}

func FromFilterSchema(fields []usecase.FilterField) []FilterFieldResponse {
	res := make([]FilterFieldResponse, 0, len(fields))
	for _, f := range fields {
		res = append(res, FilterFieldResponse(f))
	}
	return res
}

func FromReport(cols []usecase.ReportColumn, contracts []entities.Contract) ReportResponse {
	res := ReportResponse{
		Columns: make([]ReportColumnResponse, 0, len(cols)),
		Data:    make([]ContractReportRowResponse, 0, len(contracts)),
	}
	for _, col := range cols {
		res.Columns = append(res.Columns, ReportColumnResponse(col))
	}
	for _, c := range contracts {
		res.Data = append(res.Data, ContractReportRowResponse{
			ContractTitle:       c.ContractTitle,
			CustomerName:        c.CustomerName,
			ContractType:        string(c.ContractType),
			Supervisor:          c.Supervisor,
			ContractStartDate:   formatDate(c.ContractStartDate),
			ContractEndDate:     formatDate(c.ContractEndDate),
			TotalContractValue:  c.TotalContractValue,
			TotalInvoicedAmount: c.TotalInvoicedAmount,
			Status:              string(c.Status),
		})
	}
	return res
}
