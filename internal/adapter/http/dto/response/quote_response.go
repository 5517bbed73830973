package response

import (
	"time"

	"gerador_orcamentos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type QuoteResponse struct {
	ID         string                 `json:"id"`
	OwnerID    string                 `json:"owner_id"`
	ClientName string                 `json:"client_name"`
	Document   entities.QuoteDocument `json:"document"`
	Subtotal   decimal.Decimal        `json:"subtotal" swaggertype:"string"`
	Discount   decimal.Decimal        `json:"discount" swaggertype:"string"`
	Total      decimal.Decimal        `json:"total" swaggertype:"string"`
	Status     string                 `json:"status"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

func FromQuote(q entities.QuoteRecord) QuoteResponse {
	return QuoteResponse{
		ID:         q.ID,
		OwnerID:    q.OwnerID,
		ClientName: q.Document.Client.Name,
		Document:   q.Document,
		Subtotal:   q.Subtotal,
		Discount:   q.Discount,
		Total:      q.Total,
		Status:     string(q.Status),
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func FromQuotes(qs []entities.QuoteRecord) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

// SecurePDFResponse is the JSON envelope of the secure generation route.
type SecurePDFResponse struct {
	Filename    string          `json:"filename"`
	ContentType string          `json:"content_type"`
	PDFBase64   string          `json:"pdf_base64"`
	Path        string          `json:"path"`
	Fingerprint string          `json:"fingerprint"`
	Subtotal    decimal.Decimal `json:"subtotal" swaggertype:"string"`
	Discount    decimal.Decimal `json:"discount" swaggertype:"string"`
	Total       decimal.Decimal `json:"total" swaggertype:"string"`
}

func FromRenderedPDF(p entities.RenderedPDF) SecurePDFResponse {
	return SecurePDFResponse{
		Filename:    p.Filename,
		ContentType: p.ContentType(),
		PDFBase64:   p.Base64(),
		Path:        string(p.Path),
		Fingerprint: p.Fingerprint,
		Subtotal:    p.Subtotal,
		Discount:    p.Discount,
		Total:       p.Total,
	}
}
