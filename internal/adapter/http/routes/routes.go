package routes

import (
	"context"
	_ "joinerypro/docs" // This will be auto-generated
	"joinerypro/internal/adapter/http/handlers"
	"joinerypro/internal/adapter/persistence/kvstore"
	"joinerypro/internal/adapter/persistence/repository"
	"joinerypro/internal/config"
	"joinerypro/internal/infrastructure/insights"
	"joinerypro/internal/usecase"
	"joinerypro/internal/usecase/interfaces"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	ctx := context.Background()
	cfg := config.FromEnv()

	h, err := buildHandlers(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}

	router := NewRouter(h)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter mounts the middlewares, swagger and every /v1 route.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLedgerRoutes(v1, h)
	return router
}

func buildHandlers(ctx context.Context, cfg config.Config) (Handlers, error) {
	store, err := kvstore.Open(ctx, cfg)
	if err != nil {
		return Handlers{}, err
	}
	repo, err := repository.NewLedgerRepository(ctx, store)
	if err != nil {
		return Handlers{}, err
	}

	var generator interfaces.IInsightGenerator
	gemini, err := insights.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("Gemini insight generator not configured: %v", err)
	} else {
		generator = gemini
	}

	analyticsUseCase := usecase.NewAnalyticsUseCase(repo)

	return Handlers{
		Client:      handlers.NewClientHandler(usecase.NewClientUseCase(repo)),
		Project:     handlers.NewProjectHandler(usecase.NewProjectUseCase(repo)),
		Inventory:   handlers.NewInventoryHandler(usecase.NewInventoryUseCase(repo)),
		Transaction: handlers.NewTransactionHandler(usecase.NewTransactionUseCase(repo)),
		Document:    handlers.NewDocumentHandler(usecase.NewDocumentUseCase(repo)),
		Analytics:   handlers.NewAnalyticsHandler(analyticsUseCase),
		Insight:     handlers.NewInsightHandler(usecase.NewInsightUseCase(analyticsUseCase, generator)),
		Settings:    handlers.NewSettingsHandler(usecase.NewSettingsUseCase(repo)),
		Backup:      handlers.NewBackupHandler(usecase.NewBackupUseCase(repo)),
	}, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
