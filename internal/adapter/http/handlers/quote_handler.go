package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	request "gerador_orcamentos/internal/adapter/http/dto/request"
	response "gerador_orcamentos/internal/adapter/http/dto/response"
	"gerador_orcamentos/internal/adapter/http/middleware"
	"gerador_orcamentos/internal/domain/entities"
	"gerador_orcamentos/internal/usecase"
	"gerador_orcamentos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for saved quotes.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary      Save a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quote  body      request.QuoteRequest  true  "Quote document"
// @Success      201    {object}  response.QuoteResponse
// @Failure      400    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidQuotePayload)
		return
	}
	doc, err := payload.ToDocument()
	if err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", err.Error(), http.StatusBadRequest))
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), middleware.CallerID(c), doc)
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// ListQuotes godoc
// @Summary      List the caller's quotes
// @Tags         quotes
// @Produce      json
// @Success      200  {array}  response.QuoteResponse
// @Security     Bearer
// @Router       /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	qs, err := h.usecase.ListByOwner(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(qs))
}

// GetQuote godoc
// @Summary      Get a quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ApproveQuote godoc
// @Summary      Approve a pending quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/{id}/approve [patch]
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Approve)
}

// RejectQuote godoc
// @Summary      Reject a pending quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Security     Bearer
// @Router       /quotes/{id}/reject [patch]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Reject)
}

// CancelQuote godoc
// @Summary      Cancel a quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Security     Bearer
// @Router       /quotes/{id}/cancel [patch]
func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Cancel)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, ownerID, id string) (entities.QuoteRecord, error),
) {
	q, err := updater(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		log.Printf("[quote][handler] status change failed id=%s err=%v", c.Param("id"), err)
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE", validationMessage(err), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidOwnerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteStatusTransition):
		return pkg.NewDomainErrorSimple("QUOTE_STATUS_CONFLICT", "Quote status does not allow this change", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// validationMessage drops the generic kind prefix from a wrapped validation error.
func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), entities.ErrValidation.Error()+": ")
}
