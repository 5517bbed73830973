package routes

import (
	"gerador_orcamentos/internal/adapter/http/handlers"
	"gerador_orcamentos/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathLicenses      = "/licenses"
	PathAdminLicenses = "/admin/licenses"
)

func addLicenseRoutes(rg *gin.RouterGroup, licenseHandler *handlers.LicenseHandler, paymentHandler *handlers.LicensePaymentHandler) {
	licenses := rg.Group(PathLicenses)
	{
		licenses.GET("/plans", licenseHandler.ListPlans)
		licenses.GET("/me", licenseHandler.GetMyLicense)
		licenses.POST("/me/payments", paymentHandler.PurchasePlan)
		licenses.GET("/me/payments", paymentHandler.ListPayments)
		licenses.GET("/me/payments/:id", paymentHandler.GetPayment)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, licenseHandler *handlers.LicenseHandler) {
	admin := rg.Group(PathAdminLicenses, middleware.RequirePrivileged())
	{
		admin.GET("/:owner_id", licenseHandler.GetLicense)
		admin.PATCH("/:owner_id/status", licenseHandler.SetLicenseStatus)
		admin.GET("/:owner_id/usage", licenseHandler.ListUsage)
	}
}
