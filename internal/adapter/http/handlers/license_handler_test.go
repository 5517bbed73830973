package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"gerador_orcamentos/internal/adapter/http/handlers/mocks"
	"gerador_orcamentos/internal/domain/entities"
	"gerador_orcamentos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestLicenseHandler_GetMyLicense(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns remaining quota", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILicenseUseCase(ctrl)
		h := NewLicenseHandler(uc)

		r := gin.New()
		r.GET("/v1/licenses/me", asCaller("user-1", false), h.GetMyLicense)

		uc.EXPECT().GetByOwner(gomock.Any(), "user-1").Return(entities.License{
			OwnerID:       "user-1",
			Plan:          "basico",
			Status:        entities.LicenseStatusActive,
			PDFsGenerated: 12,
			PDFLimit:      50,
			ExpiresAt:     time.Date(2026, 2, 14, 23, 59, 59, 0, time.UTC),
		}, nil)

		w := serve(r, http.MethodGet, "/v1/licenses/me", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["remaining"] != float64(38) || body["status"] != "active" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("no license", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILicenseUseCase(ctrl)
		h := NewLicenseHandler(uc)

		r := gin.New()
		r.GET("/v1/licenses/me", asCaller("user-1", false), h.GetMyLicense)

		uc.EXPECT().GetByOwner(gomock.Any(), "user-1").Return(entities.License{}, entities.ErrLicenseNotFound)

		w := serve(r, http.MethodGet, "/v1/licenses/me", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestLicenseHandler_ListPlans(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := NewLicenseHandler(mocks.NewMockILicenseUseCase(ctrl))

	r := gin.New()
	r.GET("/v1/licenses/plans", h.ListPlans)

	w := serve(r, http.MethodGet, "/v1/licenses/plans", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []planResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 3 || body[0].ID != "basico" || body[0].Price != "29.90" {
		t.Fatalf("unexpected plans %+v", body)
	}
}

func TestLicenseHandler_SetLicenseStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rejects unknown status at binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILicenseUseCase(ctrl)
		h := NewLicenseHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/licenses/:owner_id/status", asCaller("admin-1", true), h.SetLicenseStatus)

		w := serve(r, http.MethodPatch, "/v1/admin/licenses/user-1/status", `{"status":"paused"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("license not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILicenseUseCase(ctrl)
		h := NewLicenseHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/licenses/:owner_id/status", asCaller("admin-1", true), h.SetLicenseStatus)

		uc.EXPECT().SetStatus(gomock.Any(), "user-9", entities.LicenseStatusSuspended).Return(entities.License{}, entities.ErrLicenseNotFound)

		w := serve(r, http.MethodPatch, "/v1/admin/licenses/user-9/status", `{"status":"suspended"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILicenseUseCase(ctrl)
		h := NewLicenseHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/licenses/:owner_id/status", asCaller("admin-1", true), h.SetLicenseStatus)

		uc.EXPECT().SetStatus(gomock.Any(), "user-1", entities.LicenseStatusSuspended).
			Return(entities.License{OwnerID: "user-1", Status: entities.LicenseStatusSuspended}, nil)

		w := serve(r, http.MethodPatch, "/v1/admin/licenses/user-1/status", `{"status":"suspended"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestLicenseHandler_AdminReads(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILicenseUseCase(ctrl)
	h := NewLicenseHandler(uc)

	r := gin.New()
	r.GET("/v1/admin/licenses/:owner_id", asCaller("admin-1", true), h.GetLicense)
	r.GET("/v1/admin/licenses/:owner_id/usage", asCaller("admin-1", true), h.ListUsage)

	uc.EXPECT().GetByOwner(gomock.Any(), "user-1").Return(entities.License{OwnerID: "user-1", PDFLimit: 50}, nil)
	uc.EXPECT().ListUsage(gomock.Any(), "user-1").Return([]entities.UsageLog{
		{ID: "idem-2", OwnerID: "user-1", ClientName: "João Silva", TotalValue: decimal.NewFromInt(270), Path: entities.RenderPathSecure},
		{ID: "idem-1", OwnerID: "user-1", ClientName: "Maria", TotalValue: decimal.NewFromInt(90), Path: entities.RenderPathSecure},
	}, nil)
	uc.EXPECT().ListUsage(gomock.Any(), "user-2").Return(nil, errors.New("db down"))

	if w := serve(r, http.MethodGet, "/v1/admin/licenses/user-1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w := serve(r, http.MethodGet, "/v1/admin/licenses/user-1/usage", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var logs []map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &logs)
	if len(logs) != 2 || logs[0]["id"] != "idem-2" || logs[0]["total_value"] != "270" {
		t.Fatalf("unexpected usage %v", logs)
	}

	if w := serve(r, http.MethodGet, "/v1/admin/licenses/user-2/usage", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestMapLicenseError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{usecase.ErrInvalidOwnerID, http.StatusBadRequest},
		{usecase.ErrInvalidLicenseStatus, http.StatusBadRequest},
		{entities.ErrLicenseNotFound, http.StatusNotFound},
		{errors.New("x"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapLicenseError(tc.err); got.HTTPStatus != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, got.HTTPStatus)
		}
	}
}
