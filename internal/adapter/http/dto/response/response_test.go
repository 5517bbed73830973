package response

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"gerador_orcamentos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromRenderedPDF(t *testing.T) {
	p := entities.RenderedPDF{
		Bytes:       []byte("%PDF-1.4"),
		Filename:    "Orcamento_Joao_0042.pdf",
		Path:        entities.RenderPathSecure,
		Fingerprint: "abcd",
		Total:       decimal.RequireFromString("270"),
	}

	res := FromRenderedPDF(p)
	raw, err := base64.StdEncoding.DecodeString(res.PDFBase64)
	if err != nil || string(raw) != "%PDF-1.4" {
		t.Fatalf("unexpected base64 %q err=%v", res.PDFBase64, err)
	}
	if res.ContentType != "application/pdf" || res.Path != "secure" || res.Filename != p.Filename {
		t.Fatalf("unexpected response: %+v", res)
	}

	body, _ := json.Marshal(res)
	var decoded map[string]any
	_ = json.Unmarshal(body, &decoded)
	if decoded["total"] != "270" {
		t.Fatalf("total must serialize as an exact string, got %v", decoded["total"])
	}
}

func TestFromLicense(t *testing.T) {
	exp := time.Date(2026, 2, 14, 23, 59, 59, 0, time.UTC)
	res := FromLicense(entities.License{OwnerID: "user-1", Status: entities.LicenseStatusActive, PDFsGenerated: 60, PDFLimit: 50, ExpiresAt: exp})
	if res.Remaining != 0 || res.Status != "active" || !res.ExpiresAt.Equal(exp) {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromLicensePayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.LicensePayment{
		ID:           "pay-1",
		OwnerID:      "user-1",
		Plan:         "basico",
		Amount:       decimal.RequireFromString("29.90"),
		Date:         now,
		Status:       entities.PaymentStatusAprovado,
		MPPayloadRaw: json.RawMessage(`{"id":123}`),
		MPPayload:    map[string]interface{}{"a": "b"},
	}

	res := FromLicensePayment(p)
	if res.PaymentID != "pay-1" || res.Plan != "basico" || res.Status != "aprovado" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.PaymentDate.Equal(now) || res.MPPayloadRaw != `{"id":123}` || res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected payload fields: %+v", res)
	}
	if len(FromLicensePayments([]entities.LicensePayment{p, p})) != 2 {
		t.Fatalf("expected two payments")
	}
}
