package interfaces

import (
	"context"

	"gerador_orcamentos/internal/domain/entities"
)

//go:generate mockgen -source=license_payment_repository_interface.go -destination=mocks/license_payment_repository_interface_mock.go -package=mock_interfaces

// ILicensePaymentRepository abstracts DynamoDB persistence for LicensePayment.

type ILicensePaymentRepository interface {
	Create(ctx context.Context, p entities.LicensePayment) (entities.LicensePayment, error)
	GetByID(ctx context.Context, id string) (entities.LicensePayment, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]entities.LicensePayment, error)
}
