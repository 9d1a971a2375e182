package app

import (
	"fmt"

	"github.com/shivharejitendra/visora/database"
	"github.com/shivharejitendra/visora/internal/billing"
	"github.com/shivharejitendra/visora/internal/clipdrop"
	"github.com/shivharejitendra/visora/internal/config"
	"github.com/shivharejitendra/visora/internal/handlers"
	"github.com/shivharejitendra/visora/internal/imageproc"
	"github.com/shivharejitendra/visora/internal/logger"
	"github.com/shivharejitendra/visora/internal/middleware"
	"github.com/shivharejitendra/visora/internal/repositories"
	"github.com/shivharejitendra/visora/internal/routes"
	"github.com/shivharejitendra/visora/internal/services"
	"github.com/shivharejitendra/visora/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает сервисы, хендлеры и gin-роутер.
// Вынесено из Run, чтобы httptest-серверы в тестах поднимались на той же сборке.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// 1. Внешние сервисы
	gateway := billing.NewRazorpayService(
		cfg.Razorpay.KeyID,
		cfg.Razorpay.KeySecret,
		cfg.Razorpay.BaseURL,
		cfg.Razorpay.Currency,
	)
	generator := clipdrop.NewClient(cfg.ClipDrop.APIKey, cfg.ClipDrop.BaseURL)
	processor := imageproc.NewProcessor(0)

	// 2. Репозитории и сервисы
	serviceContainer := initializeServices(cfg, gormDB, gateway, generator, processor)

	// 3. Хендлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 4. Gin
	ginRouter := initializeGinRouter(cfg)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(
	cfg *config.Config,
	gormDB *gorm.DB,
	gateway services.PaymentGateway,
	generator services.ImageGenerator,
	processor *imageproc.Processor,
) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	txnRepo := repositories.NewTransactionRepository(gormDB)

	authService := services.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.TTL)
	creditService := services.NewCreditService(userRepo)
	paymentService := services.NewPaymentService(userRepo, txnRepo, gateway)
	imageService := services.NewImageService(userRepo, generator, processor)

	return &services.ServiceContainer{
		AuthService:    authService,
		CreditService:  creditService,
		PaymentService: paymentService,
		ImageService:   imageService,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		UserHandler: handlers.NewUserHandler(
			baseHandler,
			container.AuthService,
			container.CreditService,
			container.PaymentService,
		),
		ImageHandler: handlers.NewImageHandler(baseHandler, container.ImageService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())

	return ginRouter
}
