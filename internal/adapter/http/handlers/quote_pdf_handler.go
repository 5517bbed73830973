package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "gerador_orcamentos/internal/adapter/http/dto/request"
	response "gerador_orcamentos/internal/adapter/http/dto/response"
	"gerador_orcamentos/internal/domain/entities"
	"gerador_orcamentos/internal/usecase"
	"gerador_orcamentos/pkg"

	"github.com/gin-gonic/gin"
)

var errPDFGenerationFailed = pkg.NewDomainErrorSimple("PDF_GENERATION_FAILED", "PDF generation failed, try again", http.StatusInternalServerError)

// QuotePDFHandler serves quote PDFs. Render and dependency failures are logged with
// their cause and answered with a generic message.
type QuotePDFHandler struct {
	usecase usecase.IQuotePDFUseCase
}

func NewQuotePDFHandler(uc usecase.IQuotePDFUseCase) *QuotePDFHandler {
	return &QuotePDFHandler{usecase: uc}
}

// GeneratePDF godoc
// @Summary      Generate a quote PDF
// @Description  Tries the license-enforcing single-page path first and falls back to the paginated renderer on render or dependency failures.
// @Tags         pdf
// @Accept       json
// @Produce      application/pdf
// @Param        quote                 body    request.QuoteRequest  true   "Quote document"
// @Param        Idempotency-Key       header  string                false  "Retry key; a repeated key is not accounted twice"
// @Param        X-Device-Fingerprint  header  string                false  "Device identifier used in the watermark"
// @Success      200  {file}    binary
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/pdf [post]
func (h *QuotePDFHandler) GeneratePDF(c *gin.Context) {
	doc, ok := bindQuoteDocument(c)
	if !ok {
		return
	}
	gen := generationContext(c)
	pdf, err := h.usecase.Generate(c.Request.Context(), doc, gen)
	if err != nil {
		log.Printf("[pdf][handler] generate failed owner_id=%s err=%v", gen.CallerID, err)
		respondError(c, mapQuotePDFError(err))
		return
	}
	writePDF(c, pdf)
}

// GenerateSecurePDF godoc
// @Summary      Generate a quote PDF on the license-enforcing path only
// @Description  Returns the document base64-encoded. Never falls back.
// @Tags         pdf
// @Accept       json
// @Produce      json
// @Param        quote            body    request.QuoteRequest  true   "Quote document"
// @Param        Idempotency-Key  header  string                false  "Retry key"
// @Success      200  {object}  response.SecurePDFResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/pdf/secure [post]
func (h *QuotePDFHandler) GenerateSecurePDF(c *gin.Context) {
	doc, ok := bindQuoteDocument(c)
	if !ok {
		return
	}
	gen := generationContext(c)
	pdf, err := h.usecase.GenerateSecure(c.Request.Context(), doc, gen)
	if err != nil {
		log.Printf("[pdf][handler] secure generate failed owner_id=%s err=%v", gen.CallerID, err)
		respondError(c, mapQuotePDFError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRenderedPDF(pdf))
}

// GenerateQuotePDF godoc
// @Summary      Generate the PDF of a saved quote
// @Tags         pdf
// @Produce      application/pdf
// @Param        id               path    string  true   "Quote ID"
// @Param        Idempotency-Key  header  string  false  "Retry key"
// @Success      200  {file}    binary
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/{id}/pdf [post]
func (h *QuotePDFHandler) GenerateQuotePDF(c *gin.Context) {
	gen := generationContext(c)
	pdf, err := h.usecase.GenerateFromQuote(c.Request.Context(), c.Param("id"), gen)
	if err != nil {
		log.Printf("[pdf][handler] generate from quote failed owner_id=%s quote_id=%s err=%v", gen.CallerID, c.Param("id"), err)
		respondError(c, mapQuotePDFError(err))
		return
	}
	writePDF(c, pdf)
}

func bindQuoteDocument(c *gin.Context) (entities.QuoteDocument, bool) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidQuotePayload)
		return entities.QuoteDocument{}, false
	}
	doc, err := payload.ToDocument()
	if err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", err.Error(), http.StatusBadRequest))
		return entities.QuoteDocument{}, false
	}
	return doc, true
}

func writePDF(c *gin.Context, pdf entities.RenderedPDF) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdf.Filename))
	c.Header(HeaderPDFPath, string(pdf.Path))
	c.Data(http.StatusOK, pdf.ContentType(), pdf.Bytes)
}

func mapQuotePDFError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE", validationMessage(err), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingCaller):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrLicenseNotFound):
		return pkg.NewDomainErrorSimple("LICENSE_NOT_FOUND", "No license found for this account", http.StatusForbidden)
	case errors.Is(err, entities.ErrLicenseInactive):
		return pkg.NewDomainErrorSimple("LICENSE_INACTIVE", "License is not active", http.StatusForbidden)
	case errors.Is(err, entities.ErrLicenseExpired):
		return pkg.NewDomainErrorSimple("LICENSE_EXPIRED", "License expired", http.StatusForbidden)
	case errors.Is(err, entities.ErrLicenseQuotaExceeded):
		return pkg.NewDomainErrorSimple("LICENSE_QUOTA_EXCEEDED", "PDF quota exceeded", http.StatusForbidden)
	case errors.Is(err, entities.ErrLicense):
		return pkg.NewDomainErrorSimple("LICENSE_ERROR", "License does not allow this operation", http.StatusForbidden)
	case errors.Is(err, entities.ErrDuplicateGeneration):
		return pkg.NewDomainErrorSimple("DUPLICATE_GENERATION", "This request was already processed", http.StatusConflict)
	default:
		return pkg.NewDomainError(errPDFGenerationFailed.Code, errPDFGenerationFailed.Message, err, http.StatusInternalServerError)
	}
}
