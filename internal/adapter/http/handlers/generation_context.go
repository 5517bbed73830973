package handlers

import (
	"strings"

	"gerador_orcamentos/internal/adapter/http/middleware"
	"gerador_orcamentos/internal/domain/entities"
	"gerador_orcamentos/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderDeviceFingerprint = "X-Device-Fingerprint"
	HeaderIdempotencyKey    = "Idempotency-Key"
	HeaderRequestID         = "X-Request-ID"
	HeaderPDFPath           = "X-PDF-Path"
)

// generationContext builds the ambient input of a PDF generation from the request.
// GeneratedAt and a missing idempotency key are filled in by the use case.
func generationContext(c *gin.Context) entities.GenerationContext {
	device := strings.TrimSpace(c.GetHeader(HeaderDeviceFingerprint))
	if device == "" {
		device = c.Request.UserAgent()
	}
	return entities.GenerationContext{
		CallerID:          middleware.CallerID(c),
		Privileged:        middleware.IsPrivileged(c),
		DeviceFingerprint: device,
		IdempotencyKey:    strings.TrimSpace(c.GetHeader(HeaderIdempotencyKey)),
		ClientIP:          c.ClientIP(),
		UserAgent:         c.Request.UserAgent(),
		TraceID:           c.GetHeader(HeaderRequestID),
	}
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
