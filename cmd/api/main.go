// @title        Conecta Bairro API
// @version      1.0
// @description  Marketplace de serviços locais: cadastro de moradores e prestadores, diretório de serviços por bairro e categoria, solicitações e avaliações.
// @BasePath     /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/conectabairro/conecta-bairro-backend/docs"
	httphandlers "github.com/conectabairro/conecta-bairro-backend/internal/handlers/http"
	"github.com/conectabairro/conecta-bairro-backend/internal/handlers/middleware"
	"github.com/conectabairro/conecta-bairro-backend/internal/infrastructure/config"
	"github.com/conectabairro/conecta-bairro-backend/internal/infrastructure/i18n"
	"github.com/conectabairro/conecta-bairro-backend/internal/infrastructure/logging"
	"github.com/conectabairro/conecta-bairro-backend/internal/infrastructure/persistence/postgres"
	"github.com/conectabairro/conecta-bairro-backend/internal/infrastructure/security"
	"github.com/conectabairro/conecta-bairro-backend/internal/services"
)

func main() {
	// .env é opcional em desenvolvimento
	_ = godotenv.Load()

	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting conecta bairro backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.AutoMigrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n (locales embutidos no binário)
	i18nService, err := i18n.NewService("pt-BR")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	requestRepo := postgres.NewRequestRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Adapters de segurança
	hasher := security.NewBcryptHasher()
	tokens := security.NewJWTManager(cfg.JWT.Secret)

	// Inicializar services
	userService := services.NewUserService(
		userRepo, categoryRepo, serviceRepo,
		hasher, uow, logger,
		cfg.Registration.AtomicProvisioning,
	)
	authService := services.NewAuthService(userRepo, hasher, tokens, logger)
	serviceService := services.NewServiceService(serviceRepo, categoryRepo, logger)
	requestService := services.NewRequestService(requestRepo, serviceRepo, logger)
	reviewService := services.NewReviewService(reviewRepo, serviceRepo, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(userService, authService)
	serviceHandler := httphandlers.NewServiceHandler(serviceService)
	requestHandler := httphandlers.NewRequestHandler(requestService)
	reviewHandler := httphandlers.NewReviewHandler(reviewService)
	userHandler := httphandlers.NewUserHandler(userService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	authMiddleware := middleware.NewAuthMiddleware(authService, i18nService)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Services (leitura pública, escrita protegida)
		svcs := v1.Group("/services")
		{
			svcs.GET("", serviceHandler.List)
			svcs.GET("/:id", serviceHandler.GetByID)
			svcs.POST("", authMiddleware.RequireAuth(), serviceHandler.Create)
			svcs.PUT("/:id", authMiddleware.RequireAuth(), serviceHandler.Update)
			svcs.DELETE("/:id", authMiddleware.RequireAuth(), serviceHandler.Delete)
		}

		// Requests
		requests := v1.Group("/requests", authMiddleware.RequireAuth())
		{
			requests.POST("", requestHandler.Create)
			requests.GET("/:id", requestHandler.GetByID)
			requests.PUT("/:id/status", requestHandler.UpdateStatus)
		}

		// Reviews (listagem pública, escrita protegida)
		reviews := v1.Group("/reviews")
		{
			reviews.POST("", authMiddleware.RequireAuth(), reviewHandler.Create)
			reviews.GET("/service/:serviceId", reviewHandler.ListByService)
		}

		// Users
		users := v1.Group("/users", authMiddleware.RequireAuth())
		{
			users.GET("/me", userHandler.Me)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
