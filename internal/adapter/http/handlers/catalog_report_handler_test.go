package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"maintenance_contracts/internal/adapter/http/handlers/mocks"
	"maintenance_contracts/internal/domain/entities"
	"maintenance_contracts/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestServiceItemHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("details of unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceItemUseCase(ctrl)
		h := NewServiceItemHandler(uc)

		r := gin.New()
		r.GET("/v1/service-items/:item_code/details", h.GetServiceItemDetails)

		uc.EXPECT().GetServiceItemDetails(gomock.Any(), "NOPE").Return(usecase.ServiceItemDetails{}, nil)

		w := serve(r, http.MethodGet, "/v1/service-items/NOPE/details", "", nil)
		if w.Code != http.StatusOK || w.Body.String() != `{"valid":false}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("details storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceItemUseCase(ctrl)
		h := NewServiceItemHandler(uc)

		r := gin.New()
		r.GET("/v1/service-items/:item_code/details", h.GetServiceItemDetails)

		uc.EXPECT().GetServiceItemDetails(gomock.Any(), "X").Return(usecase.ServiceItemDetails{}, errors.New("db"))

		w := serve(r, http.MethodGet, "/v1/service-items/X/details", "", nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("list and upsert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceItemUseCase(ctrl)
		h := NewServiceItemHandler(uc)

		r := gin.New()
		r.GET("/v1/service-items", h.ListServiceItems)
		r.PUT("/v1/service-items/:item_code", h.UpsertItem)

		uc.EXPECT().ListSelectable(gomock.Any()).Return([]entities.Item{{ItemCode: "AC"}}, nil)
		w := serve(r, http.MethodGet, "/v1/service-items", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		uc.EXPECT().UpsertItem(gomock.Any(), entities.Item{ItemCode: "AC", ItemName: "AC service", StockUOM: "Visit"}).Return(entities.Item{ItemCode: "AC"}, nil)
		w = serve(r, http.MethodPut, "/v1/service-items/AC", `{"item_name":"AC service","stock_uom":"Visit"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestReportHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("runs with filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/active-maintenance-contracts", h.ActiveMaintenanceContracts)

		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().ActiveMaintenanceContracts(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, f entities.ContractReportFilter) ([]entities.Contract, error) {
			if f.ContractType != entities.ContractTypeQuarterly || f.StartDate == nil || !f.StartDate.Equal(start) || len(f.Statuses) != 2 {
				t.Fatalf("unexpected filter: %+v", f)
			}
			return []entities.Contract{{ContractTitle: "A", ContractStartDate: start}}, nil
		})
		uc.EXPECT().Columns().Return([]usecase.ReportColumn{{FieldName: "contract_title", Label: "Contract Title", Width: 200}})

		w := serve(r, http.MethodGet, "/v1/reports/active-maintenance-contracts?contract_type=Quarterly&start_date=2025-01-01&status=Active&status=Completed", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		data, ok := body["data"].([]any)
		if !ok || len(data) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/active-maintenance-contracts", h.ActiveMaintenanceContracts)

		w := serve(r, http.MethodGet, "/v1/reports/active-maintenance-contracts?end_date=2025-13-01", "", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/active-maintenance-contracts/filters", h.GetFilters)

		uc.EXPECT().FilterSchema().Return([]usecase.FilterField{{FieldName: "status", FieldType: "MultiSelectList", Options: []string{"Draft"}}})

		w := serve(r, http.MethodGet, "/v1/reports/active-maintenance-contracts/filters", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
