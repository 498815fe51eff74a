package routes

import (
	"joinerypro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients      = "/clients"
	PathProjects     = "/projects"
	PathMaterials    = "/materials"
	PathUsage        = "/usage"
	PathTransactions = "/transactions"
	PathQuotes       = "/quotes"
	PathInvoices     = "/invoices"
	PathDocuments    = "/documents"
	PathAnalytics    = "/analytics"
	PathInsights     = "/insights"
	PathSettings     = "/settings"
	PathBackup       = "/backup"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Client      *handlers.ClientHandler
	Project     *handlers.ProjectHandler
	Inventory   *handlers.InventoryHandler
	Transaction *handlers.TransactionHandler
	Document    *handlers.DocumentHandler
	Analytics   *handlers.AnalyticsHandler
	Insight     *handlers.InsightHandler
	Settings    *handlers.SettingsHandler
	Backup      *handlers.BackupHandler
}

func addLedgerRoutes(rg *gin.RouterGroup, h Handlers) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", h.Client.ListClients)
		clients.POST("", h.Client.CreateClient)
		clients.GET("/:id", h.Client.GetClient)
		clients.PUT("/:id", h.Client.UpdateClient)
		clients.GET("/:id/profile", h.Analytics.ClientProfile)
		clients.GET("/:id/history", h.Analytics.ClientHistory)
	}

	projects := rg.Group(PathProjects)
	{
		projects.GET("", h.Project.ListProjects)
		projects.POST("", h.Project.CreateProject)
		projects.GET("/:id", h.Project.GetProject)
		projects.PUT("/:id", h.Project.UpdateProject)
		projects.GET("/:id/financials", h.Analytics.ProjectFinancials)
	}

	materials := rg.Group(PathMaterials)
	{
		materials.GET("", h.Inventory.ListMaterials)
		materials.POST("", h.Inventory.AddMaterial)
		materials.GET("/low-stock", h.Inventory.LowStockMaterials)
		materials.GET("/:id", h.Inventory.GetMaterial)
		materials.POST("/:id/restock", h.Inventory.RestockMaterial)
		materials.POST("/:id/consume", h.Inventory.ConsumeMaterial)
		materials.PUT("/:id/stock", h.Inventory.AdjustStock)
	}
	rg.GET(PathUsage, h.Inventory.ListMaterialUsage)

	transactions := rg.Group(PathTransactions)
	{
		transactions.GET("", h.Transaction.ListTransactions)
		transactions.POST("", h.Transaction.CreateTransaction)
		transactions.GET("/:id", h.Transaction.GetTransaction)
		transactions.PUT("/:id", h.Transaction.UpdateTransaction)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", h.Document.ListQuotes)
		quotes.POST("", h.Document.CreateQuote)
		quotes.GET("/:id", h.Document.GetQuote)
		quotes.PUT("/:id", h.Document.UpdateQuote)
		quotes.POST("/:id/convert", h.Document.ConvertQuote)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", h.Document.ListInvoices)
		invoices.POST("", h.Document.CreateInvoice)
		invoices.GET("/:id", h.Document.GetInvoice)
		invoices.PUT("/:id", h.Document.UpdateInvoice)
		invoices.PATCH("/:id/status", h.Document.UpdateInvoiceStatus)
	}

	rg.GET(PathDocuments+"/next-id", h.Document.NextDocumentID)

	analytics := rg.Group(PathAnalytics)
	{
		analytics.GET("/stats", h.Analytics.Stats)
		analytics.GET("/monthly", h.Analytics.MonthlyRevenue)
		analytics.GET("/history", h.Analytics.GlobalHistory)
		analytics.GET("/outstanding", h.Analytics.OutstandingBalance)
		analytics.GET("/snapshot", h.Analytics.Snapshot)
	}

	rg.POST(PathInsights, h.Insight.GenerateInsights)

	settings := rg.Group(PathSettings)
	{
		settings.GET("", h.Settings.GetSettings)
		settings.PUT("", h.Settings.SaveSettings)
	}

	backup := rg.Group(PathBackup)
	{
		backup.GET("", h.Backup.ExportBackup)
		backup.POST("/restore", h.Backup.RestoreBackup)
	}
}
