package usecase

import (
	"context"
	"errors"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"gerador_orcamentos/internal/domain/entities"
	"gerador_orcamentos/internal/domain/format"
	"gerador_orcamentos/internal/domain/trace"
	"gerador_orcamentos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrMissingCaller = errors.New("missing caller identity")

// IQuotePDFUseCase generates quote PDFs.
//
// GenerateSecure is the license-enforcing path: gate, render, then record usage and
// increment the counter once. Generate tries it first and falls back to the paginated
// renderer, unaccounted, when the secure path fails with a render or dependency error.
type IQuotePDFUseCase interface {
	Generate(ctx context.Context, doc entities.QuoteDocument, gen entities.GenerationContext) (entities.RenderedPDF, error)
	GenerateSecure(ctx context.Context, doc entities.QuoteDocument, gen entities.GenerationContext) (entities.RenderedPDF, error)
	GenerateFromQuote(ctx context.Context, quoteID string, gen entities.GenerationContext) (entities.RenderedPDF, error)
}

type QuotePDFOptions struct {
	// RawMaxItems is the item count above which the secure path renders with the
	// paginated renderer. Zero keeps every document on the single-page renderer.
	RawMaxItems int
	// FallbackPrivilegedOnly closes the unaccounted fallback to non-privileged callers.
	FallbackPrivilegedOnly bool
	DefaultValidityDays    int
}

type QuotePDFUseCase struct {
	singlePage interfaces.IQuoteRenderer
	paginated  interfaces.IQuoteRenderer
	licenses   interfaces.ILicenseRepository
	quotes     interfaces.IQuoteRepository
	opts       QuotePDFOptions

	now   func() time.Time
	randN func(n int) int
}

var _ IQuotePDFUseCase = (*QuotePDFUseCase)(nil)

func NewQuotePDFUseCase(
	singlePage, paginated interfaces.IQuoteRenderer,
	licenses interfaces.ILicenseRepository,
	quotes interfaces.IQuoteRepository,
	opts QuotePDFOptions,
) *QuotePDFUseCase {
	return &QuotePDFUseCase{
		singlePage: singlePage,
		paginated:  paginated,
		licenses:   licenses,
		quotes:     quotes,
		opts:       opts,
		now:        func() time.Time { return time.Now().UTC() },
		randN:      rand.IntN,
	}
}

func (u *QuotePDFUseCase) Generate(ctx context.Context, doc entities.QuoteDocument, gen entities.GenerationContext) (entities.RenderedPDF, error) {
	gen = u.withDefaults(gen)
	pdf, err := u.GenerateSecure(ctx, doc, gen)
	if err == nil {
		return pdf, nil
	}
	if !shouldFallback(err) {
		return entities.RenderedPDF{}, err
	}
	if u.opts.FallbackPrivilegedOnly && !gen.Privileged {
		log.Printf("[pdf][usecase] fallback refused for non-privileged caller owner_id=%s err=%v", gen.CallerID, err)
		return entities.RenderedPDF{}, err
	}

	log.Printf("[pdf][usecase] secure path failed, falling back to standard owner_id=%s err=%v", gen.CallerID, err)
	return u.generateStandard(doc, gen)
}

// shouldFallback reports whether a secure-path failure may be retried on the
// standard path. Caller errors would fail identically there.
func shouldFallback(err error) bool {
	return errors.Is(err, entities.ErrRender) || errors.Is(err, entities.ErrDependency)
}

func (u *QuotePDFUseCase) GenerateSecure(ctx context.Context, doc entities.QuoteDocument, gen entities.GenerationContext) (entities.RenderedPDF, error) {
	gen = u.withDefaults(gen)
	if gen.CallerID == "" {
		return entities.RenderedPDF{}, ErrMissingCaller
	}

	doc.Normalize(u.opts.DefaultValidityDays)
	if err := doc.Validate(); err != nil {
		log.Printf("[pdf][usecase] invalid document owner_id=%s err=%v", gen.CallerID, err)
		return entities.RenderedPDF{}, err
	}

	lic, err := u.licenses.GetByOwnerID(ctx, gen.CallerID)
	if err != nil {
		return entities.RenderedPDF{}, entities.NewDependencyError("load license", err)
	}
	if lic.OwnerID == "" {
		return entities.RenderedPDF{}, entities.ErrLicenseNotFound
	}
	if err := lic.CheckUsable(gen.GeneratedAt); err != nil {
		log.Printf("[pdf][usecase] license rejected owner_id=%s status=%s used=%d limit=%d err=%v",
			gen.CallerID, lic.Status, lic.PDFsGenerated, lic.PDFLimit, err)
		return entities.RenderedPDF{}, err
	}
	gen.License = &lic

	data, path, err := u.renderSecure(doc, gen)
	if err != nil {
		log.Printf("[pdf][usecase] secure render failed owner_id=%s err=%v", gen.CallerID, err)
		return entities.RenderedPDF{}, err
	}

	fp := trace.Fingerprint(gen.CallerID, gen.DeviceFingerprint, gen.GeneratedAt)
	usage := entities.UsageLog{
		ID:          gen.IdempotencyKey,
		OwnerID:     gen.CallerID,
		ClientName:  doc.Client.Name,
		TotalValue:  doc.FinalTotal(),
		Fingerprint: fp,
		Path:        path,
		ClientIP:    gen.ClientIP,
		UserAgent:   gen.UserAgent,
		CreatedAt:   gen.GeneratedAt,
	}
	updated, err := u.licenses.RecordGeneration(ctx, usage, gen.GeneratedAt)
	if err != nil {
		log.Printf("[pdf][usecase] record generation failed owner_id=%s usage_id=%s err=%v", gen.CallerID, usage.ID, err)
		if errors.Is(err, entities.ErrLicense) || errors.Is(err, entities.ErrDuplicateGeneration) {
			return entities.RenderedPDF{}, err
		}
		return entities.RenderedPDF{}, entities.NewDependencyError("record generation", err)
	}
	log.Printf("[pdf][usecase] secure generation success owner_id=%s usage_id=%s path=%s used=%d limit=%d",
		gen.CallerID, usage.ID, path, updated.PDFsGenerated, updated.PDFLimit)

	return u.result(doc, data, path, fp), nil
}

// renderSecure keeps short documents on the single-page renderer. Longer ones, or
// ones that overflow the page, are laid out by the paginated renderer; they are still
// license-checked and accounted. The returned path is the one of the renderer that
// produced the bytes.
func (u *QuotePDFUseCase) renderSecure(doc entities.QuoteDocument, gen entities.GenerationContext) ([]byte, entities.RenderPath, error) {
	if u.opts.RawMaxItems > 0 && len(doc.LineItems) > u.opts.RawMaxItems {
		log.Printf("[pdf][usecase] %d items above single-page limit %d, using paginated layout owner_id=%s",
			len(doc.LineItems), u.opts.RawMaxItems, gen.CallerID)
		return u.renderWith(u.paginated, doc, gen)
	}

	data, path, err := u.renderWith(u.singlePage, doc, gen)
	if errors.Is(err, entities.ErrPageOverflow) {
		log.Printf("[pdf][usecase] single page overflow, using paginated layout owner_id=%s items=%d", gen.CallerID, len(doc.LineItems))
		return u.renderWith(u.paginated, doc, gen)
	}
	return data, path, err
}

func (u *QuotePDFUseCase) renderWith(r interfaces.IQuoteRenderer, doc entities.QuoteDocument, gen entities.GenerationContext) ([]byte, entities.RenderPath, error) {
	data, err := r.Render(doc, gen)
	if err != nil {
		return nil, "", err
	}
	return data, r.Path(), nil
}

func (u *QuotePDFUseCase) generateStandard(doc entities.QuoteDocument, gen entities.GenerationContext) (entities.RenderedPDF, error) {
	doc.Normalize(u.opts.DefaultValidityDays)
	if err := doc.Validate(); err != nil {
		return entities.RenderedPDF{}, err
	}
	data, path, err := u.renderWith(u.paginated, doc, gen)
	if err != nil {
		log.Printf("[pdf][usecase] standard render failed owner_id=%s err=%v", gen.CallerID, err)
		return entities.RenderedPDF{}, err
	}
	fp := trace.Fingerprint(gen.CallerID, gen.DeviceFingerprint, gen.GeneratedAt)
	return u.result(doc, data, path, fp), nil
}

func (u *QuotePDFUseCase) GenerateFromQuote(ctx context.Context, quoteID string, gen entities.GenerationContext) (entities.RenderedPDF, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.RenderedPDF{}, ErrInvalidQuoteID
	}
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.RenderedPDF{}, err
	}
	if q.ID == "" || q.OwnerID != strings.TrimSpace(gen.CallerID) {
		return entities.RenderedPDF{}, ErrQuoteNotFound
	}
	return u.Generate(ctx, q.Document, gen)
}

func (u *QuotePDFUseCase) withDefaults(gen entities.GenerationContext) entities.GenerationContext {
	gen.CallerID = strings.TrimSpace(gen.CallerID)
	if gen.GeneratedAt.IsZero() {
		gen.GeneratedAt = u.now()
	}
	if gen.IdempotencyKey == "" {
		gen.IdempotencyKey = uuid.NewString()
	}
	return gen
}

func (u *QuotePDFUseCase) result(doc entities.QuoteDocument, data []byte, path entities.RenderPath, fp string) entities.RenderedPDF {
	return entities.RenderedPDF{
		Bytes:       data,
		Filename:    format.Filename(doc.Client.Name, u.randN(10000)),
		Path:        path,
		Fingerprint: fp,
		Subtotal:    doc.Subtotal(),
		Discount:    doc.DiscountAmount(),
		Total:       doc.FinalTotal(),
	}
}
