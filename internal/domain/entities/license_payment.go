package entities

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// LicensePayment is a license plan purchase persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (owner_id-index): owner_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the original provider response for traceability/audit.
//   - MPPayload is an optional parsed representation, useful for querying/debugging.
type LicensePayment struct {
	ID      string          `json:"id"`
	OwnerID string          `json:"owner_id"`
	Plan    string          `json:"plan"`
	Amount  decimal.Decimal `json:"amount"`
	Date    time.Time       `json:"date"`
	Status  PaymentStatus   `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

// PaymentStatusFromProvider maps a Mercado Pago status onto the local lifecycle.
func PaymentStatusFromProvider(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved", "authorized":
		return PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusNegado
	default:
		return PaymentStatusPendente
	}
}

// PaymentCharge is a license plan charge sent to the payment provider. Amount,
// ExternalReference and Description come from the plan catalog; the remaining fields
// are copied from the checkout form.
type PaymentCharge struct {
	PlanID            string
	Amount            decimal.Decimal
	ExternalReference string
	Description       string
	PaymentMethodID   string
	Token             string
	Installments      int
	IssuerID          string
	Payer             PaymentPayer
}

type PaymentPayer struct {
	ID        string
	Type      string
	Email     string
	FirstName string
	LastName  string
	DocType   string
	DocNumber string
}

// Identified reports whether the provider can tell who pays.
func (p PaymentPayer) Identified() bool {
	return strings.TrimSpace(p.Email) != "" || strings.TrimSpace(p.ID) != ""
}

// PaymentReceipt is the provider answer to a charge. Raw is persisted with the payment.
type PaymentReceipt struct {
	ProviderPaymentID string
	ProviderStatus    string
	Raw               json.RawMessage
}
