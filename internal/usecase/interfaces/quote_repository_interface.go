package interfaces

import (
	"context"

	"gerador_orcamentos/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_interface_mock.go -package=mock_interfaces

// IQuoteRepository abstracts DynamoDB persistence for QuoteRecord.
//
// Not found is reported as a zero-value record, not an error.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.QuoteRecord) (entities.QuoteRecord, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRecord, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]entities.QuoteRecord, error)
	// UpdateStatus moves a record from one status to another. A record that no longer
	// has status from comes back as the zero value.
	UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.QuoteRecord, error)
}
