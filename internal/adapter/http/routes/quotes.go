package routes

import (
	"gerador_orcamentos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, pdfHandler *handlers.QuotePDFHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:id/reject", quoteHandler.RejectQuote)
		quotes.PATCH("/:id/cancel", quoteHandler.CancelQuote)

		quotes.POST("/pdf", pdfHandler.GeneratePDF)
		quotes.POST("/pdf/secure", pdfHandler.GenerateSecurePDF)
		quotes.POST("/:id/pdf", pdfHandler.GenerateQuotePDF)
	}
}
