package entities

import (
	"encoding/base64"
	"time"

	"github.com/shopspring/decimal"
)

// RenderPath identifies which strategy produced a document.
type RenderPath string

const (
	// RenderPathSecure is the raw-markup path with license enforcement and accounting.
	RenderPathSecure RenderPath = "secure"
	// RenderPathStandard is the library-assisted path without accounting.
	RenderPathStandard RenderPath = "standard"
)

const ContentTypePDF = "application/pdf"

// GenerationContext is the ambient input supplied by the caller of a generation.
//
// License is a read-only snapshot for the quota-enforcing path; renderers never mutate it.
// Privileged is an authorization decision made outside the engine (token claim), never an
// identity allow-list.
type GenerationContext struct {
	GeneratedAt       time.Time
	CallerID          string
	DeviceFingerprint string
	Privileged        bool
	IdempotencyKey    string
	ClientIP          string
	UserAgent         string
	TraceID           string
	License           *License
}

// Accounted reports whether the generation runs under a license and lands in the
// usage log. Accounted documents carry the trace watermark.
func (g GenerationContext) Accounted() bool {
	return g.License != nil
}

// RenderedPDF is the output of a successful generation.
type RenderedPDF struct {
	Bytes       []byte
	Filename    string
	Path        RenderPath
	Fingerprint string
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
}

// ContentType is always application/pdf.
func (p RenderedPDF) ContentType() string {
	return ContentTypePDF
}

// Base64 exposes the bytes for text-based RPC transports.
func (p RenderedPDF) Base64() string {
	return base64.StdEncoding.EncodeToString(p.Bytes)
}
