package routes

import (
	"github.com/gin-gonic/gin"

	"studioo/internal/adapter/http/handlers"
	"studioo/internal/adapter/http/middleware"
)

const (
	PathQuoteSessions = "/quotes/sessions"
	PathCatalog       = "/catalog"
)

func addQuoteRoutes(rg *gin.RouterGroup, verifier *middleware.TokenVerifier, wizardHandler *handlers.QuoteWizardHandler, catalogHandler *handlers.CatalogHandler) {
	rg.GET(PathCatalog, catalogHandler.ListCatalog)

	sessions := rg.Group(PathQuoteSessions)
	{
		// A signed-in partner gets the contact step prefilled.
		sessions.POST("", middleware.OptionalAuth(verifier), wizardHandler.StartSession)
		sessions.GET("/:id", wizardHandler.GetSession)

		sessions.PUT("/:id/engagement", wizardHandler.SelectEngagement)
		sessions.PUT("/:id/configuration", wizardHandler.UpdateConfiguration)
		sessions.PUT("/:id/contact", wizardHandler.UpdateContact)

		sessions.POST("/:id/next", wizardHandler.Next)
		sessions.POST("/:id/back", wizardHandler.Back)
		sessions.POST("/:id/reset", wizardHandler.Reset)

		sessions.GET("/:id/quote", wizardHandler.GetQuote)
		sessions.GET("/:id/quote.pdf", wizardHandler.DownloadPDF)
		sessions.GET("/:id/quote.xlsx", wizardHandler.DownloadXLSX)
		sessions.POST("/:id/submit", wizardHandler.Submit)
	}
}
