package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gerador_orcamentos/internal/adapter/http/handlers/mocks"
	"gerador_orcamentos/internal/adapter/http/middleware"
	"gerador_orcamentos/internal/domain/entities"
	"gerador_orcamentos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const validQuoteBody = `{
	"company": {"name": "Acme Ltda"},
	"client": {"name": "João Silva"},
	"items": [{"id": "1", "description": "Pintura", "quantity": 2, "unit_price": 150}],
	"discount_percent": 10
}`

func asCaller(ownerID string, privileged bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextCallerIDKey, ownerID)
		c.Set(middleware.ContextPrivilegedKey, privileged)
		c.Next()
	}
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", asCaller("user-1", false), h.CreateQuote)

		w := serve(r, http.MethodPost, "/v1/quotes", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid logo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", asCaller("user-1", false), h.CreateQuote)

		w := serve(r, http.MethodPost, "/v1/quotes", `{"company":{"name":"Acme","logo_base64":"%%%"},"client":{"name":"João"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("domain validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", asCaller("user-1", false), h.CreateQuote)

		uc.EXPECT().Create(gomock.Any(), "user-1", gomock.Any()).Return(entities.QuoteRecord{}, entities.ErrClientNameRequired)

		w := serve(r, http.MethodPost, "/v1/quotes", validQuoteBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_QUOTE" || body["message"] != "client name is required" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", asCaller("user-1", false), h.CreateQuote)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, ownerID string, doc entities.QuoteDocument) (entities.QuoteRecord, error) {
				if len(doc.LineItems) != 1 || !doc.LineItems[0].UnitPrice.Equal(decimal.NewFromInt(150)) {
					t.Fatalf("unexpected document %+v", doc)
				}
				return entities.QuoteRecord{ID: "q-1", OwnerID: ownerID, Document: doc, Total: decimal.NewFromInt(270), Status: entities.QuoteStatusPendente, CreatedAt: now, UpdatedAt: now}, nil
			})

		w := serve(r, http.MethodPost, "/v1/quotes", validQuoteBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q-1" || body["total"] != "270" || body["client_name"] != "João Silva" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestQuoteHandler_GetAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", asCaller("user-1", false), h.GetQuote)

		uc.EXPECT().GetByID(gomock.Any(), "user-1", "q-9").Return(entities.QuoteRecord{}, usecase.ErrQuoteNotFound)

		w := serve(r, http.MethodGet, "/v1/quotes/q-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes", asCaller("user-1", false), h.ListQuotes)

		uc.EXPECT().ListByOwner(gomock.Any(), "user-1").Return([]entities.QuoteRecord{{ID: "q-1"}, {ID: "q-2"}}, nil)

		w := serve(r, http.MethodGet, "/v1/quotes", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 quotes, got %d", len(body))
		}
	})
}

func TestQuoteHandler_PatchStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/approve", asCaller("user-1", false), h.ApproveQuote)

		uc.EXPECT().Approve(gomock.Any(), "user-1", "q-1").Return(entities.QuoteRecord{ID: "q-1", Status: entities.QuoteStatusAprovado}, nil)

		w := serve(r, http.MethodPatch, "/v1/quotes/q-1/approve", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject after approval conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/reject", asCaller("user-1", false), h.RejectQuote)

		uc.EXPECT().Reject(gomock.Any(), "user-1", "q-1").Return(entities.QuoteRecord{}, usecase.ErrQuoteStatusTransition)

		w := serve(r, http.MethodPatch, "/v1/quotes/q-1/reject", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancel internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/cancel", asCaller("user-1", false), h.CancelQuote)

		uc.EXPECT().Cancel(gomock.Any(), "user-1", "q-1").Return(entities.QuoteRecord{}, errors.New("db down"))

		w := serve(r, http.MethodPatch, "/v1/quotes/q-1/cancel", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMapQuoteError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{entities.ErrInvalidQuantity, http.StatusBadRequest},
		{usecase.ErrInvalidQuoteID, http.StatusBadRequest},
		{usecase.ErrInvalidOwnerID, http.StatusBadRequest},
		{usecase.ErrQuoteNotFound, http.StatusNotFound},
		{usecase.ErrQuoteStatusTransition, http.StatusConflict},
		{errors.New("x"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapQuoteError(tc.err); got.HTTPStatus != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, got.HTTPStatus)
		}
	}
}
