package request

import (
	"strings"

	"maintenance_contracts/internal/domain/entities"
)

// ReportFilterRequest is bound from the report query string. status may be
// repeated or given as a comma separated list.
type ReportFilterRequest struct {
	ContractType string   `form:"contract_type"`
	StartDate    string   `form:"start_date"`
	EndDate      string   `form:"end_date"`
	Status       []string `form:"status"`
}

func (r ReportFilterRequest) ToFilter() (entities.ContractReportFilter, error) {
	filter := entities.ContractReportFilter{
		ContractType: entities.ContractType(strings.TrimSpace(r.ContractType)),
	}

	start, err := ParseDate(r.StartDate)
	if err != nil {
		return entities.ContractReportFilter{}, err
	}
	if !start.IsZero() {
		filter.StartDate = &start
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return entities.ContractReportFilter{}, err
	}
	if !end.IsZero() {
		filter.EndDate = &end
	}

	for _, raw := range r.Status {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Statuses = append(filter.Statuses, entities.ContractStatus(s))
			}
		}
	}
	return filter, nil
}
