package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"gerador_orcamentos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func sampleCharge() entities.PaymentCharge {
	return entities.PaymentCharge{
		PlanID:            "profissional",
		Amount:            decimal.RequireFromString("59.90"),
		ExternalReference: "user-1:profissional",
		Description:       "Licença Profissional",
		PaymentMethodID:   "master",
		Token:             "card-token",
		Installments:      3,
		IssuerID:          "24",
		Payer: entities.PaymentPayer{
			Type:      "customer",
			Email:     "cliente@exemplo.com",
			FirstName: "João",
			DocType:   "CPF",
			DocNumber: "12345678909",
		},
	}
}

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway("", false)
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock ignores token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("", true)
		if err != nil || g == nil || !g.mockMode {
			t.Fatalf("expected mock gateway, got %+v err=%v", g, err)
		}
	})
}

func TestPaymentRequest_FromCharge(t *testing.T) {
	req := paymentRequest(sampleCharge())

	if req.TransactionAmount != 59.9 || req.ExternalReference != "user-1:profissional" || req.Description != "Licença Profissional" {
		t.Fatalf("amount, reference and description must come from the charge: %+v", req)
	}
	if req.PaymentMethodID != "master" || req.Token != "card-token" || req.Installments != 3 || req.IssuerID != "24" {
		t.Fatalf("checkout fields not forwarded: %+v", req)
	}
	if req.Metadata["plan_id"] != "profissional" {
		t.Fatalf("expected plan id in metadata, got %v", req.Metadata)
	}
	if req.Payer == nil || req.Payer.Email != "cliente@exemplo.com" || req.Payer.Type != "customer" {
		t.Fatalf("unexpected payer: %+v", req.Payer)
	}
	if req.Payer.Identification == nil || req.Payer.Identification.Number != "12345678909" {
		t.Fatalf("expected payer identification, got %+v", req.Payer.Identification)
	}

	charge := sampleCharge()
	charge.Payer.DocNumber = ""
	if paymentRequest(charge).Payer.Identification != nil {
		t.Fatalf("identification should be omitted without a document number")
	}
}

func TestMercadoPagoGateway_CreatePayment_Mock(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", true)
	at := time.Date(2026, 1, 15, 18, 30, 0, 0, time.UTC)
	g.now = func() time.Time { return at }

	receipt, err := g.CreatePayment(context.Background(), sampleCharge())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(receipt.ProviderPaymentID, "mock-") || receipt.ProviderStatus != "approved" {
		t.Fatalf("unexpected id/status: %+v", receipt)
	}

	var body map[string]any
	if err := json.Unmarshal(receipt.Raw, &body); err != nil {
		t.Fatalf("response should be json: %v", err)
	}
	if body["external_reference"] != "user-1:profissional" || body["transaction_amount"] != 59.9 {
		t.Fatalf("mock response must echo the charged amount and reference: %v", body)
	}
	if body["status_detail"] != "accredited" || body["date_approved"] != at.Format(time.RFC3339Nano) {
		t.Fatalf("unexpected mock response: %v", body)
	}
	if body["metadata"].(map[string]any)["plan_id"] != "profissional" {
		t.Fatalf("expected plan id in metadata, got %v", body["metadata"])
	}
}

func TestMercadoPagoGateway_CreatePayment_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, err := g.CreatePayment(context.Background(), sampleCharge())
	if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}

	_, err = (&MercadoPagoGateway{}).CreatePayment(context.Background(), sampleCharge())
	if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
