package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "gerador_orcamentos/internal/adapter/http/dto/request"
	response "gerador_orcamentos/internal/adapter/http/dto/response"
	"gerador_orcamentos/internal/adapter/http/middleware"
	"gerador_orcamentos/internal/usecase"
	"gerador_orcamentos/pkg"

	"github.com/gin-gonic/gin"
)

// LicensePaymentHandler handles license plan purchases.
type LicensePaymentHandler struct {
	usecase usecase.ILicensePaymentUseCase
}

func NewLicensePaymentHandler(uc usecase.ILicensePaymentUseCase) *LicensePaymentHandler {
	return &LicensePaymentHandler{usecase: uc}
}

// PurchasePlan godoc
// @Summary      Buy a license plan
// @Description  Charges the plan price through Mercado Pago. An approved payment activates the plan immediately.
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Param        body  body      request.LicensePurchaseRequest  true  "Plan and Mercado Pago payload"
// @Success      200   {object}  response.LicensePaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /licenses/me/payments [post]
func (h *LicensePaymentHandler) PurchasePlan(c *gin.Context) {
	ownerID := middleware.CallerID(c)
	var payload request.LicensePurchaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload owner_id=%s err=%v", ownerID, err)
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}
	mpPayload := payload.MPPayload
	if s := strings.TrimSpace(string(mpPayload)); s == "" || s == "null" {
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.Purchase(c.Request.Context(), ownerID, payload.Plan, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] purchase failed owner_id=%s plan=%s err=%v", ownerID, payload.Plan, err)
		respondError(c, mapLicensePaymentError(err))
		return
	}
	log.Printf("[payment][handler] purchase success owner_id=%s payment_id=%s status=%s", ownerID, created.ID, created.Status)
	c.JSON(http.StatusOK, response.FromLicensePayment(created))
}

// ListPayments godoc
// @Summary  List the caller's plan payments
// @Tags     licenses
// @Produce  json
// @Success  200  {array}  response.LicensePaymentResponse
// @Security Bearer
// @Router   /licenses/me/payments [get]
func (h *LicensePaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByOwner(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondError(c, mapLicensePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLicensePayments(payments))
}

// GetPayment godoc
// @Summary  Get one of the caller's plan payments
// @Tags     licenses
// @Produce  json
// @Param    id   path      string  true  "Payment ID"
// @Success  200  {object}  response.LicensePaymentResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /licenses/me/payments/{id} [get]
func (h *LicensePaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		respondError(c, mapLicensePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLicensePayment(p))
}

func mapLicensePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPlan):
		return pkg.NewDomainErrorSimple("INVALID_PLAN", "Unknown license plan", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrLicensePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
