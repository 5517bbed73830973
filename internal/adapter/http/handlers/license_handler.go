package handlers

import (
	"errors"
	"log"
	"net/http"

	request "gerador_orcamentos/internal/adapter/http/dto/request"
	response "gerador_orcamentos/internal/adapter/http/dto/response"
	"gerador_orcamentos/internal/adapter/http/middleware"
	"gerador_orcamentos/internal/domain/entities"
	"gerador_orcamentos/internal/usecase"
	"gerador_orcamentos/pkg"

	"github.com/gin-gonic/gin"
)

// LicenseHandler exposes the caller's own license and the admin back-office.
// Admin routes are guarded by middleware.RequirePrivileged.
type LicenseHandler struct {
	usecase usecase.ILicenseUseCase
}

func NewLicenseHandler(uc usecase.ILicenseUseCase) *LicenseHandler {
	return &LicenseHandler{usecase: uc}
}

type planResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	PDFLimit int    `json:"pdf_limit"`
	Days     int    `json:"days"`
}

// ListPlans godoc
// @Summary  List purchasable license plans
// @Tags     licenses
// @Produce  json
// @Success  200  {array}  planResponse
// @Security Bearer
// @Router   /licenses/plans [get]
func (h *LicenseHandler) ListPlans(c *gin.Context) {
	plans := entities.LicensePlans()
	out := make([]planResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, planResponse{ID: p.ID, Name: p.Name, Price: p.Price.StringFixed(2), PDFLimit: p.PDFLimit, Days: p.Days})
	}
	c.JSON(http.StatusOK, out)
}

// GetMyLicense godoc
// @Summary  Get the caller's license
// @Tags     licenses
// @Produce  json
// @Success  200  {object}  response.LicenseResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /licenses/me [get]
func (h *LicenseHandler) GetMyLicense(c *gin.Context) {
	h.getLicense(c, middleware.CallerID(c))
}

// GetLicense godoc
// @Summary  Get any caller's license (privileged)
// @Tags     admin
// @Produce  json
// @Param    owner_id  path      string  true  "Owner ID"
// @Success  200       {object}  response.LicenseResponse
// @Failure  403       {object}  pkg.HTTPError
// @Security Bearer
// @Router   /admin/licenses/{owner_id} [get]
func (h *LicenseHandler) GetLicense(c *gin.Context) {
	h.getLicense(c, c.Param("owner_id"))
}

func (h *LicenseHandler) getLicense(c *gin.Context, ownerID string) {
	lic, err := h.usecase.GetByOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, mapLicenseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLicense(lic))
}

// SetLicenseStatus godoc
// @Summary  Change a license status (privileged)
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    owner_id  path      string                        true  "Owner ID"
// @Param    body      body      request.LicenseStatusRequest  true  "New status"
// @Success  200       {object}  response.LicenseResponse
// @Failure  400       {object}  pkg.HTTPError
// @Failure  404       {object}  pkg.HTTPError
// @Security Bearer
// @Router   /admin/licenses/{owner_id}/status [patch]
func (h *LicenseHandler) SetLicenseStatus(c *gin.Context) {
	var payload request.LicenseStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	ownerID := c.Param("owner_id")
	lic, err := h.usecase.SetStatus(c.Request.Context(), ownerID, entities.LicenseStatus(payload.Status))
	if err != nil {
		respondError(c, mapLicenseError(err))
		return
	}
	log.Printf("[license][handler] status changed owner_id=%s status=%s by=%s", ownerID, lic.Status, middleware.CallerID(c))
	c.JSON(http.StatusOK, response.FromLicense(lic))
}

// ListUsage godoc
// @Summary  List a caller's PDF usage log (privileged)
// @Tags     admin
// @Produce  json
// @Param    owner_id  path   string  true  "Owner ID"
// @Success  200       {array}  response.UsageLogResponse
// @Security Bearer
// @Router   /admin/licenses/{owner_id}/usage [get]
func (h *LicenseHandler) ListUsage(c *gin.Context) {
	logs, err := h.usecase.ListUsage(c.Request.Context(), c.Param("owner_id"))
	if err != nil {
		respondError(c, mapLicenseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUsageLogs(logs))
}

func mapLicenseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID), errors.Is(err, usecase.ErrInvalidLicenseStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrLicenseNotFound):
		return pkg.NewDomainErrorSimple("LICENSE_NOT_FOUND", "License not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
