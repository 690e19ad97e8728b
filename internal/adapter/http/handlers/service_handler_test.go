package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"gestao_reparos/internal/adapter/http/handlers/mocks"
	"gestao_reparos/internal/domain/entities"
	"gestao_reparos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestServiceHandler_ListInProgress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.GET("/v1/services", h.ListInProgress)

		deadline := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().ListInProgress(gomock.Any()).Return([]usecase.TrackedService{{
			Service: entities.Service{ID: "s-3", ClientName: "Ana Costa", Status: entities.ServiceStatusEmAndamento, Deadline: deadline},
			Urgency: entities.Urgency{DaysRemaining: 0, Kind: entities.UrgencyDueToday, Severity: entities.SeverityWarning, Label: "Prazo hoje"},
		}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/services", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var list []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &list)
		if len(list) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		urgency, _ := list[0]["urgency"].(map[string]any)
		if urgency["kind"] != "due_today" || urgency["severity"] != "warning" || urgency["label"] != "Prazo hoje" {
			t.Fatalf("unexpected urgency: %s", w.Body.String())
		}
	})

	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.GET("/v1/services", h.ListInProgress)

		uc.EXPECT().ListInProgress(gomock.Any()).Return(nil, errors.New("db"))

		w := doRequest(r, http.MethodGet, "/v1/services", nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INTERNAL_ERROR" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestServiceHandler_FinalizeService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(h *ServiceHandler) *gin.Engine {
		r := gin.New()
		r.PATCH("/v1/services/:id/finalize", h.FinalizeService)
		return r
	}

	t.Run("success with date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := build(NewServiceHandler(uc))

		finishedAt := time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().FinalizeService(gomock.Any(), "s-3", finishedAt).
			Return(entities.FinishedService{ID: "f-1", ServiceID: "s-3", ClientName: "Ana Costa", ServiceType: entities.ServiceTypePintura, Value: 2100, FinishedAt: finishedAt}, nil)

		w := doRequest(r, http.MethodPatch, "/v1/services/s-3/finalize", bytes.NewBufferString(`{"finished_at":"2024-01-25"}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["id"] != "f-1" || body["service_id"] != "s-3" || body["value"] != 2100.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("no body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := build(NewServiceHandler(uc))

		uc.EXPECT().FinalizeService(gomock.Any(), "s-3", time.Time{}).Return(entities.FinishedService{ID: "f-1"}, nil)

		w := doRequest(r, http.MethodPatch, "/v1/services/s-3/finalize", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := build(NewServiceHandler(uc))

		w := doRequest(r, http.MethodPatch, "/v1/services/s-3/finalize", bytes.NewBufferString("{"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already finalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := build(NewServiceHandler(uc))

		uc.EXPECT().FinalizeService(gomock.Any(), "s-3", time.Time{}).
			Return(entities.FinishedService{}, &usecase.InvalidTransitionError{Entity: "service", ID: "s-3", Expected: "em_andamento", Actual: "finalizado"})

		w := doRequest(r, http.MethodPatch, "/v1/services/s-3/finalize", nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := build(NewServiceHandler(uc))

		uc.EXPECT().FinalizeService(gomock.Any(), "s-9", time.Time{}).
			Return(entities.FinishedService{}, &usecase.NotFoundError{Entity: "service", ID: "s-9"})

		w := doRequest(r, http.MethodPatch, "/v1/services/s-9/finalize", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "SERVICE_NOT_FOUND" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
