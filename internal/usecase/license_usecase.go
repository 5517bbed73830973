package usecase

import (
	"context"
	"errors"
	"strings"

	"gerador_orcamentos/internal/domain/entities"
	"gerador_orcamentos/internal/usecase/interfaces"
)

var ErrInvalidLicenseStatus = errors.New("invalid license status")

// ILicenseUseCase reads licenses and serves the admin back-office. Whether a caller
// may use the admin operations is decided by the transport layer.
type ILicenseUseCase interface {
	GetByOwner(ctx context.Context, ownerID string) (entities.License, error)
	SetStatus(ctx context.Context, ownerID string, status entities.LicenseStatus) (entities.License, error)
	ListUsage(ctx context.Context, ownerID string) ([]entities.UsageLog, error)
}

type LicenseUseCase struct {
	licenses interfaces.ILicenseRepository
	usage    interfaces.IUsageLogRepository
}

var _ ILicenseUseCase = (*LicenseUseCase)(nil)

func NewLicenseUseCase(licenses interfaces.ILicenseRepository, usage interfaces.IUsageLogRepository) *LicenseUseCase {
	return &LicenseUseCase{licenses: licenses, usage: usage}
}

func (u *LicenseUseCase) GetByOwner(ctx context.Context, ownerID string) (entities.License, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.License{}, ErrInvalidOwnerID
	}
	lic, err := u.licenses.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return entities.License{}, err
	}
	if lic.OwnerID == "" {
		return entities.License{}, entities.ErrLicenseNotFound
	}
	return lic, nil
}

func (u *LicenseUseCase) SetStatus(ctx context.Context, ownerID string, status entities.LicenseStatus) (entities.License, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.License{}, ErrInvalidOwnerID
	}
	status = entities.LicenseStatus(strings.ToLower(strings.TrimSpace(string(status))))
	if !status.Valid() {
		return entities.License{}, ErrInvalidLicenseStatus
	}

	lic, err := u.licenses.UpdateStatus(ctx, ownerID, status)
	if err != nil {
		return entities.License{}, err
	}
	if lic.OwnerID == "" {
		return entities.License{}, entities.ErrLicenseNotFound
	}
	return lic, nil
}

func (u *LicenseUseCase) ListUsage(ctx context.Context, ownerID string) ([]entities.UsageLog, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	return u.usage.ListByOwnerID(ctx, ownerID)
}
