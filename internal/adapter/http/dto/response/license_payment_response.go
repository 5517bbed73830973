package response

import (
	"time"

	"gerador_orcamentos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type LicensePaymentResponse struct {
	PaymentID   string          `json:"payment_id"`
	OwnerID     string          `json:"owner_id"`
	Plan        string          `json:"plan"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
	PaymentDate time.Time       `json:"payment_date"`
	Status      string          `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromLicensePayment(p entities.LicensePayment) LicensePaymentResponse {
	return LicensePaymentResponse{
		PaymentID:    p.ID,
		OwnerID:      p.OwnerID,
		Plan:         p.Plan,
		Amount:       p.Amount,
		PaymentDate:  p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromLicensePayments(ps []entities.LicensePayment) []LicensePaymentResponse {
	out := make([]LicensePaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromLicensePayment(p))
	}
	return out
}
