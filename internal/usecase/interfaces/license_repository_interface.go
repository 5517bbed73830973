package interfaces

import (
	"context"
	"time"

	"gerador_orcamentos/internal/domain/entities"
)

//go:generate mockgen -source=license_repository_interface.go -destination=mocks/license_repository_interface_mock.go -package=mock_interfaces

// ILicenseRepository is the license-accounting collaborator.
type ILicenseRepository interface {
	GetByOwnerID(ctx context.Context, ownerID string) (entities.License, error)

	// RecordGeneration stores the usage log and increments the owner's counter as one
	// atomic operation. It fails with entities.ErrLicenseQuotaExceeded when the license
	// is no longer usable at now, and with entities.ErrDuplicateGeneration when
	// usage.ID was already recorded. The counter never moves on failure.
	RecordGeneration(ctx context.Context, usage entities.UsageLog, now time.Time) (entities.License, error)

	Save(ctx context.Context, l entities.License) (entities.License, error)
	UpdateStatus(ctx context.Context, ownerID string, status entities.LicenseStatus) (entities.License, error)
}
