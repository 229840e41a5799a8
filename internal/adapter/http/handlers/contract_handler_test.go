package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"maintenance_contracts/internal/adapter/http/handlers/mocks"
	"maintenance_contracts/internal/domain/entities"
	"maintenance_contracts/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func serve(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestContractHandler_CreateContract(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts", h.CreateContract)

		w := serve(r, http.MethodPost, "/v1/contracts", "{", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts", h.CreateContract)

		w := serve(r, http.MethodPost, "/v1/contracts", `{"contract_start_date":"01/02/2025"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("uses author header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts", h.CreateContract)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.ContractInput) (entities.Contract, error) {
			if in.CreatedBy != "jane" || in.ContractType != entities.ContractTypeMonthly {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Contract{ID: "c-1", CreatedBy: in.CreatedBy, ContractType: in.ContractType, TotalContractValue: 350}, nil
		})

		w := serve(r, http.MethodPost, "/v1/contracts", `{"contract_title":"HVAC","contract_type":"Monthly"}`, map[string]string{HeaderUser: "jane"})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["id"] != "c-1" || body["total_contract_value"] != 350.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts", h.CreateContract)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Contract{}, usecase.ErrInvalidDateRange)

		w := serve(r, http.MethodPost, "/v1/contracts", `{}`, nil)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["message"] != usecase.ErrInvalidDateRange.Error() {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestContractHandler_Workflow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.GET("/v1/contracts/:id", h.GetContract)

		uc.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.Contract{}, usecase.ErrContractNotFound)

		w := serve(r, http.MethodGet, "/v1/contracts/c-9", "", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("submit not confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts/:id/submit", h.SubmitContract)

		uc.EXPECT().Submit(gomock.Any(), "c-1", false).Return(entities.Contract{}, usecase.ErrSubmissionNotConfirmed)

		w := serve(r, http.MethodPost, "/v1/contracts/c-1/submit", `{"confirmed":false}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["message"] != "Action cancelled by user." {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("submit conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts/:id/submit", h.SubmitContract)

		uc.EXPECT().Submit(gomock.Any(), "c-1", true).Return(entities.Contract{}, usecase.ErrContractConflict)

		w := serve(r, http.MethodPost, "/v1/contracts/c-1/submit", `{"confirmed":true}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("update status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.PATCH("/v1/contracts/:id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "c-1", entities.ContractStatusTerminated).Return("Contract status updated to Terminated", nil)

		w := serve(r, http.MethodPatch, "/v1/contracts/c-1/status", `{"new_status":"Terminated"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["message"] != "Contract status updated to Terminated" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("update status requires field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.PATCH("/v1/contracts/:id/status", h.UpdateStatus)

		w := serve(r, http.MethodPatch, "/v1/contracts/c-1/status", `{}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("actions and preview", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.GET("/v1/contracts/:id/actions", h.GetActions)
		r.GET("/v1/contracts/:id/submission-preview", h.SubmissionPreview)

		uc.EXPECT().AvailableActions(gomock.Any(), "c-1").Return(usecase.ContractActions{UpdateStatus: true}, nil)
		uc.EXPECT().SubmissionPreview(gomock.Any(), "c-1").Return(usecase.SubmissionPreview{Title: "Confirm Submission", TotalContractValue: 350}, nil)

		w := serve(r, http.MethodGet, "/v1/contracts/c-1/actions", "", nil)
		if body := decodeBody(t, w); body["update_status"] != true || body["generate_next_invoice"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}

		w = serve(r, http.MethodGet, "/v1/contracts/c-1/submission-preview", "", nil)
		if body := decodeBody(t, w); body["title"] != "Confirm Submission" || body["total_contract_value"] != 350.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestContractHandler_Rows(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("update service item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.PATCH("/v1/contracts/:id/service-items/:row_id", h.UpdateServiceItem)

		uc.EXPECT().UpdateServiceItem(gomock.Any(), "c-1", "s1", gomock.Any()).DoAndReturn(func(_ any, _, _ string, patch usecase.ServiceItemPatch) (entities.Contract, error) {
			if patch.EstimatedHours == nil || *patch.EstimatedHours != 4 || patch.RatePerHour != nil {
				t.Fatalf("unexpected patch: %+v", patch)
			}
			return entities.Contract{ID: "c-1", TotalEstimatedHours: 4}, nil
		})

		w := serve(r, http.MethodPatch, "/v1/contracts/c-1/service-items/s1", `{"estimated_hours":4}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("remove unknown billing entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.DELETE("/v1/contracts/:id/billing-schedule/:row_id", h.RemoveBillingEntry)

		uc.EXPECT().RemoveBillingEntry(gomock.Any(), "c-1", "b9").Return(entities.Contract{}, usecase.ErrBillingEntryNotFound)

		w := serve(r, http.MethodDelete, "/v1/contracts/c-1/billing-schedule/b9", "", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("select invalid item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts/:id/service-items/:row_id/select", h.SelectServiceItem)

		uc.EXPECT().SelectServiceItem(gomock.Any(), "c-1", "s1", "BOLT").Return(usecase.SelectServiceItemResult{
			Contract: entities.Contract{ID: "c-1"},
			Message:  "Please select a valid service item.",
		}, nil)

		w := serve(r, http.MethodPost, "/v1/contracts/c-1/service-items/s1/select", `{"item_code":"BOLT"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["valid"] != false || body["message"] != "Please select a valid service item." {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("billing entry invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts/:id/billing-schedule", h.AddBillingEntry)

		w := serve(r, http.MethodPost, "/v1/contracts/c-1/billing-schedule", `{"invoice_date":"tomorrow"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
