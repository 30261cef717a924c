package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kheireldine/ai-investor-portal/internal/config"
	"github.com/kheireldine/ai-investor-portal/internal/database"
	_ "github.com/kheireldine/ai-investor-portal/internal/docs" // Import swagger docs
	"github.com/kheireldine/ai-investor-portal/internal/gemini"
	"github.com/kheireldine/ai-investor-portal/internal/handlers"
	"github.com/kheireldine/ai-investor-portal/internal/logger"
	"github.com/kheireldine/ai-investor-portal/internal/middleware"
	"github.com/kheireldine/ai-investor-portal/internal/services"
	"github.com/kheireldine/ai-investor-portal/internal/validator"
)

// @title           AI Investor Portal API
// @version         1.0
// @description     Backend for the investor portal: registration, bearer-token auth, portfolios, capital requests, and AI-generated Markdown answers.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	investorService := services.NewInvestorService(db, appConfig.PortfolioSeed)
	portfolioService := services.NewPortfolioService(db)
	requestService := services.NewRequestService(db)

	tokens := middleware.NewTokenManager(appConfig.JWTSecret, appConfig.JWTExpirationDur)
	generator := gemini.NewClient(appConfig.GeminiAPIKey, appConfig.GeminiModel,
		&http.Client{Timeout: appConfig.GeminiTimeout})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(investorService, tokens)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	requestHandler := handlers.NewRequestHandler(requestService)
	aiHandler := handlers.NewAIHandler(generator, appConfig.GeminiPromptSuffix)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	router.POST("/signup", authHandler.Signup)
	router.POST("/token", authHandler.Login)

	// Protected routes
	protected := router.Group("/")
	protected.Use(tokens.AuthMiddleware())
	protected.GET("/profile", authHandler.GetProfile)
	protected.GET("/portfolio", portfolioHandler.GetPortfolio)
	protected.POST("/requests", requestHandler.CreateRequest)
	protected.GET("/requests", requestHandler.ListRequests)
	protected.POST("/ai", aiHandler.Generate)

	log.Infof("Starting investor portal backend on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
