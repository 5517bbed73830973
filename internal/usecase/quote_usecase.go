package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gerador_orcamentos/internal/domain/entities"
	"gerador_orcamentos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrInvalidQuoteID         = errors.New("invalid quote id")
	ErrInvalidOwnerID         = errors.New("invalid owner id")
	ErrQuoteStatusTransition  = errors.New("quote status transition not allowed")
)

// IQuoteUseCase manages stored quotes and their approval lifecycle.
//
//   - pendente => aprovado | rejeitado | cancelado
//   - aprovado => cancelado
//
// Records are scoped by owner: someone else's quote is reported as not found.
type IQuoteUseCase interface {
	Create(ctx context.Context, ownerID string, doc entities.QuoteDocument) (entities.QuoteRecord, error)
	GetByID(ctx context.Context, ownerID, id string) (entities.QuoteRecord, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.QuoteRecord, error)
	Approve(ctx context.Context, ownerID, id string) (entities.QuoteRecord, error)
	Reject(ctx context.Context, ownerID, id string) (entities.QuoteRecord, error)
	Cancel(ctx context.Context, ownerID, id string) (entities.QuoteRecord, error)
}

type QuoteUseCase struct {
	repo                interfaces.IQuoteRepository
	defaultValidityDays int
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, defaultValidityDays int) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, defaultValidityDays: defaultValidityDays}
}

var allowedTransitions = map[entities.QuoteStatus][]entities.QuoteStatus{
	entities.QuoteStatusAprovado:  {entities.QuoteStatusPendente},
	entities.QuoteStatusRejeitado: {entities.QuoteStatusPendente},
	entities.QuoteStatusCancelado: {entities.QuoteStatusPendente, entities.QuoteStatusAprovado},
}

func (u *QuoteUseCase) Create(ctx context.Context, ownerID string, doc entities.QuoteDocument) (entities.QuoteRecord, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.QuoteRecord{}, ErrInvalidOwnerID
	}

	doc.Normalize(u.defaultValidityDays)
	if err := doc.Validate(); err != nil {
		return entities.QuoteRecord{}, err
	}

	now := time.Now().UTC()
	q := entities.QuoteRecord{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Document:  doc,
		Subtotal:  doc.Subtotal(),
		Discount:  doc.DiscountAmount(),
		Total:     doc.FinalTotal(),
		Status:    entities.QuoteStatusPendente,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, ownerID, id string) (entities.QuoteRecord, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.QuoteRecord{}, ErrInvalidOwnerID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRecord{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRecord{}, err
	}
	if q.ID == "" || q.OwnerID != ownerID {
		return entities.QuoteRecord{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByOwner(ctx context.Context, ownerID string) ([]entities.QuoteRecord, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	return u.repo.ListByOwnerID(ctx, ownerID)
}

func (u *QuoteUseCase) Approve(ctx context.Context, ownerID, id string) (entities.QuoteRecord, error) {
	return u.updateStatus(ctx, ownerID, id, entities.QuoteStatusAprovado)
}

func (u *QuoteUseCase) Reject(ctx context.Context, ownerID, id string) (entities.QuoteRecord, error) {
	return u.updateStatus(ctx, ownerID, id, entities.QuoteStatusRejeitado)
}

func (u *QuoteUseCase) Cancel(ctx context.Context, ownerID, id string) (entities.QuoteRecord, error) {
	return u.updateStatus(ctx, ownerID, id, entities.QuoteStatusCancelado)
}

func (u *QuoteUseCase) updateStatus(ctx context.Context, ownerID, id string, to entities.QuoteStatus) (entities.QuoteRecord, error) {
	current, err := u.GetByID(ctx, ownerID, id)
	if err != nil {
		return entities.QuoteRecord{}, err
	}
	if !transitionAllowed(current.Status, to) {
		return entities.QuoteRecord{}, ErrQuoteStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, current.Status, to)
	if err != nil {
		return entities.QuoteRecord{}, err
	}
	if updated.ID == "" {
		// status changed between the read and the conditional write
		return entities.QuoteRecord{}, ErrQuoteStatusTransition
	}
	return updated, nil
}

func transitionAllowed(from, to entities.QuoteStatus) bool {
	for _, s := range allowedTransitions[to] {
		if s == from {
			return true
		}
	}
	return false
}
