package handlers

import (
	"net/http"

	request "maintenance_contracts/internal/adapter/http/dto/request"
	response "maintenance_contracts/internal/adapter/http/dto/response"
	"maintenance_contracts/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// GetFilters godoc
// @Summary Filter form of the active maintenance contracts report
// @Tags reports
// @Produce json
// @Success 200 {array} response.FilterFieldResponse
// @Router /reports/active-maintenance-contracts/filters [get]
func (h *ReportHandler) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromFilterSchema(h.usecase.FilterSchema()))
}

// ActiveMaintenanceContracts godoc
// @Summary Run the active maintenance contracts report
// @Tags reports
// @Produce json
// @Param contract_type query string false "Monthly, Quarterly, Bi-Annual or Annual"
// @Param start_date query string false "Earliest contract start date (YYYY-MM-DD)"
// @Param end_date query string false "Latest contract start date (YYYY-MM-DD)"
// @Param status query []string false "Statuses, repeated or comma separated"
// @Success 200 {object} response.ReportResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /reports/active-maintenance-contracts [get]
func (h *ReportHandler) ActiveMaintenanceContracts(c *gin.Context) {
	var query request.ReportFilterRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		writeError(c, err)
		return
	}

	contracts, err := h.usecase.ActiveMaintenanceContracts(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReport(h.usecase.Columns(), contracts))
}
