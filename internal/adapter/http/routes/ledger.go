package routes

import (
	"gestao_reparos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathServices  = "/services"
	PathFinance   = "/finance"
	PathDashboard = "/dashboard"
)

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.CreateQuote)
		quotes.GET("", h.ListQuotes)
		quotes.GET("/:id", h.GetQuote)
		quotes.PATCH("/:id/accept", h.AcceptQuote)
		quotes.PATCH("/:id/reject", h.RejectQuote)
	}
}

func addServiceRoutes(rg *gin.RouterGroup, h *handlers.ServiceHandler) {
	services := rg.Group(PathServices)
	{
		services.GET("", h.ListInProgress)
		services.PATCH("/:id/finalize", h.FinalizeService)
	}
}

func addFinanceRoutes(rg *gin.RouterGroup, h *handlers.FinanceHandler) {
	finance := rg.Group(PathFinance)
	{
		finance.GET("/summary", h.Summary)
		finance.GET("/expenses", h.ListExpenses)
		finance.POST("/expenses", h.RecordExpense)
		finance.GET("/finished-services", h.ListFinishedServices)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	rg.GET(PathDashboard, h.Stats)
}
