package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"contractor_crm/internal/adapter/http/handlers/mocks"
	"contractor_crm/internal/domain/entities"
	"contractor_crm/internal/domain/estimate"
	"contractor_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_SendEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("dispatching send returns the token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/send", h.SendEstimate)

		sent := sampleEstimate()
		sent.EstimateState = entities.EstimateStateEstimate
		sent.ClientState = entities.ClientStateSent
		sent.EmailToken = "tok-1"
		uc.EXPECT().SendEstimate(gomock.Any(), "est-1", gomock.Any()).Return(sent, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/send", bytes.NewBufferString(`{"recipient_email":"pat@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Token != "tok-1" {
			t.Fatalf("expected token in body, got %s", w.Body.String())
		}
	})

	t.Run("dispatch=false only prepares", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/send", h.SendEstimate)

		prepared := sampleEstimate()
		prepared.EstimateState = entities.EstimateStateEstimate
		uc.EXPECT().PrepareForSending(gomock.Any(), "est-1", "pat@example.com").Return(prepared, "tok-2", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/send", bytes.NewBufferString(`{"recipient_email":"pat@example.com","dispatch":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Token != "tok-2" {
			t.Fatalf("expected prepared token, got %s", w.Body.String())
		}
	})

	t.Run("dispatch failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/send", h.SendEstimate)

		uc.EXPECT().SendEstimate(gomock.Any(), "est-1", gomock.Any()).
			Return(entities.Estimate{}, usecase.ErrEmailDispatchFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/send", bytes.NewBufferString(`{"recipient_email":"pat@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("missing recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/send", h.SendEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/send", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_ConvertToInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not accepted maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/invoice", h.ConvertToInvoice)

		uc.EXPECT().ConvertToInvoice(gomock.Any(), "est-1", gomock.Any()).
			Return(entities.Estimate{}, estimate.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/invoice", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/invoice", h.ConvertToInvoice)

		converted := sampleEstimate()
		converted.EstimateState = entities.EstimateStateInvoice
		uc.EXPECT().ConvertToInvoice(gomock.Any(), "est-1", "Dana").Return(converted, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/invoice", bytes.NewBufferString(`{"modified_by":"Dana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_CreateChangeOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	h := NewEstimateHandler(uc)

	r := gin.New()
	r.POST("/v1/estimates/:id/change-order", h.CreateChangeOrder)

	co := sampleEstimate()
	co.ID = "est-2"
	co.EstimateState = entities.EstimateStateChangeOrder
	co.ParentEstimateID = "est-1"
	uc.EXPECT().CreateChangeOrder(gomock.Any(), "est-1").Return(co, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/change-order", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["parent_estimate_id"] != "est-1" {
		t.Fatalf("expected parent link, got %v", body)
	}
}

func TestEstimateHandler_GeneratePurchaseOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already linked maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/purchase-order", h.GeneratePurchaseOrder)

		uc.EXPECT().GeneratePurchaseOrder(gomock.Any(), "est-1").
			Return(entities.Estimate{}, "", usecase.ErrPurchaseOrderExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/purchase-order", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created with po id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/purchase-order", h.GeneratePurchaseOrder)

		linked := sampleEstimate()
		linked.PurchaseOrderIDs = []string{"po-77"}
		uc.EXPECT().GeneratePurchaseOrder(gomock.Any(), "est-1").Return(linked, "po-77", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/purchase-order", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			PurchaseOrderID string `json:"purchase_order_id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.PurchaseOrderID != "po-77" {
			t.Fatalf("expected po id, got %s", w.Body.String())
		}
	})
}
