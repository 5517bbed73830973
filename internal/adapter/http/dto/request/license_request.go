package request

import "encoding/json"

// LicenseStatusRequest is the admin payload to change a license status.
type LicenseStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active expired suspended"`
}

// LicensePurchaseRequest buys a plan.
//
// `mp_payload` is forwarded to Mercado Pago after the amount and reference are
// overwritten from the plan catalog.
type LicensePurchaseRequest struct {
	Plan      string          `json:"plan" binding:"required"`
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
