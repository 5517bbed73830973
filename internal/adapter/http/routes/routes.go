package routes

import (
	"log"
	"strconv"

	_ "gerador_orcamentos/docs"
	"gerador_orcamentos/internal/adapter/http/handlers"
	"gerador_orcamentos/internal/adapter/http/middleware"
	"gerador_orcamentos/internal/adapter/persistence/repository"
	"gerador_orcamentos/internal/infrastructure/config"
	"gerador_orcamentos/internal/infrastructure/database"
	"gerador_orcamentos/internal/infrastructure/payments"
	"gerador_orcamentos/internal/infrastructure/pdf/fpdfrender"
	"gerador_orcamentos/internal/infrastructure/pdf/raw"
	"gerador_orcamentos/internal/usecase"
	"gerador_orcamentos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	if cfg.JWTSecret == "" {
		log.Printf("[config] JWT_SECRET is empty, authenticated routes will reject every request")
	}

	ddb := database.ConnectDynamoDB(cfg.AWS)

	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.Tables.Quotes)
	licenseRepo := repository.NewLicenseDynamoRepository(ddb, cfg.Tables.Licenses, cfg.Tables.UsageLogs)
	usageRepo := repository.NewUsageLogDynamoRepository(ddb, cfg.Tables.UsageLogs)
	paymentRepo := repository.NewLicensePaymentDynamoRepository(ddb, cfg.Tables.LicensePayments)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, cfg.PDF.DefaultValidityDays)
	pdfUseCase := usecase.NewQuotePDFUseCase(
		raw.NewRenderer(),
		fpdfrender.NewRenderer(fpdfrender.Options{Compress: cfg.PDF.Compress}),
		licenseRepo,
		quoteRepo,
		usecase.QuotePDFOptions{
			RawMaxItems:            cfg.PDF.RawMaxItems,
			FallbackPrivilegedOnly: cfg.PDF.FallbackPrivilegedOnly,
			DefaultValidityDays:    cfg.PDF.DefaultValidityDays,
		},
	)
	licenseUseCase := usecase.NewLicenseUseCase(licenseRepo, usageRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.MercadoPagoAccessToken, cfg.Payments.Mock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewLicensePaymentUseCase(paymentRepo, licenseRepo, paymentGateway, usecase.LicensePaymentOptions{
		MockMode:        cfg.Payments.Mock,
		AccessToken:     cfg.Payments.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	})

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	pdfHandler := handlers.NewQuotePDFHandler(pdfUseCase)
	licenseHandler := handlers.NewLicenseHandler(licenseUseCase)
	paymentHandler := handlers.NewLicensePaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("", middleware.AuthRequired(cfg.JWTSecret))
	addQuoteRoutes(authed, quoteHandler, pdfHandler)
	addLicenseRoutes(authed, licenseHandler, paymentHandler)
	addAdminRoutes(authed, licenseHandler)
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
