package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"gerador_orcamentos/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges license plans through the Mercado Pago payments API.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
}

// NewMercadoPagoGateway builds the license plan gateway. In mock mode no SDK client is
// created and every charge is approved locally.
func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	now := func() time.Time { return time.Now().UTC() }
	if mock {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: now}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, charge entities.PaymentCharge) (entities.PaymentReceipt, error) {
	if g != nil && g.mockMode {
		return g.approveLocally(charge)
	}
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.PaymentReceipt{}, ErrMercadoPagoGatewayNotConfigured
	}

	log.Printf("[payment][gateway] create start plan=%s reference=%s amount=%s method=%s",
		charge.PlanID, charge.ExternalReference, charge.Amount.StringFixed(2), charge.PaymentMethodID)
	resp, err := g.client.Create(ctx, paymentRequest(charge))
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed reference=%s err=%v", charge.ExternalReference, err)
		return entities.PaymentReceipt{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return entities.PaymentReceipt{}, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return entities.PaymentReceipt{
		ProviderPaymentID: fmt.Sprintf("%d", resp.ID),
		ProviderStatus:    resp.Status,
		Raw:               raw,
	}, nil
}

// paymentRequest maps a plan charge onto the SDK request. Only the charge decides the
// amount and the reference.
func paymentRequest(c entities.PaymentCharge) payment.Request {
	req := payment.Request{
		TransactionAmount: c.Amount.InexactFloat64(),
		Description:       c.Description,
		ExternalReference: c.ExternalReference,
		PaymentMethodID:   c.PaymentMethodID,
		Token:             c.Token,
		Installments:      c.Installments,
		IssuerID:          c.IssuerID,
		Metadata:          map[string]any{"plan_id": c.PlanID},
		Payer: &payment.PayerRequest{
			Type:      c.Payer.Type,
			ID:        c.Payer.ID,
			Email:     c.Payer.Email,
			FirstName: c.Payer.FirstName,
			LastName:  c.Payer.LastName,
		},
	}
	if c.Payer.DocNumber != "" {
		req.Payer.Identification = &payment.IdentificationRequest{Type: c.Payer.DocType, Number: c.Payer.DocNumber}
	}
	return req
}

// approveLocally answers like the payments API would for an accredited charge, echoing
// what was charged.
func (g *MercadoPagoGateway) approveLocally(c entities.PaymentCharge) (entities.PaymentReceipt, error) {
	now := g.now()
	id := "mock-" + strconv.FormatInt(now.UnixNano(), 10)
	resp := map[string]any{
		"id":                 id,
		"status":             "approved",
		"status_detail":      "accredited",
		"external_reference": c.ExternalReference,
		"transaction_amount": c.Amount.InexactFloat64(),
		"description":        c.Description,
		"payment_method_id":  c.PaymentMethodID,
		"metadata":           map[string]any{"plan_id": c.PlanID},
		"date_created":       now.Format(time.RFC3339Nano),
		"date_approved":      now.Format(time.RFC3339Nano),
	}
	if c.Payer.Email != "" {
		resp["payer"] = map[string]any{"email": c.Payer.Email}
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return entities.PaymentReceipt{}, err
	}
	log.Printf("[payment][gateway] mock create success provider_payment_id=%s reference=%s amount=%s",
		id, c.ExternalReference, c.Amount.StringFixed(2))
	return entities.PaymentReceipt{ProviderPaymentID: id, ProviderStatus: "approved", Raw: raw}, nil
}
