package interfaces

import (
	"context"

	"gerador_orcamentos/internal/domain/entities"
)

//go:generate mockgen -source=usage_log_repository_interface.go -destination=mocks/usage_log_repository_interface_mock.go -package=mock_interfaces

// IUsageLogRepository reads the generation log written by ILicenseRepository.RecordGeneration.
type IUsageLogRepository interface {
	ListByOwnerID(ctx context.Context, ownerID string) ([]entities.UsageLog, error)
}
