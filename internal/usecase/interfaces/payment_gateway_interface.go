package interfaces

import (
	"context"

	"gerador_orcamentos/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// License plan purchases go through it; the provider response payload is persisted
// with the payment for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, charge entities.PaymentCharge) (entities.PaymentReceipt, error)
}
