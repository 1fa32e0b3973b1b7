package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lizexpress.backend/internal/config"
	"lizexpress.backend/internal/infrastructure/gateway"
	"lizexpress.backend/internal/infrastructure/jobs"
	"lizexpress.backend/internal/infrastructure/repositories"
	"lizexpress.backend/internal/infrastructure/storage"
	"lizexpress.backend/internal/interfaces/http/handlers"
	"lizexpress.backend/internal/interfaces/http/middleware"
	"lizexpress.backend/internal/usecases"
	"lizexpress.backend/pkg/jwt"
	"lizexpress.backend/pkg/logger"
	"lizexpress.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newDraftStore = redis.NewDraftStore
	newDiskStore  = storage.NewDiskStore
	runServer     = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB      = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	verificationRepo := repositories.NewVerificationRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize draft store for held listings
	draftStore, err := newDraftStore(cfg.Security.DraftEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize draft store: %w", err)
	}

	// Initialize object storage
	objectStore, err := newDiskStore(
		cfg.Storage.BasePath,
		cfg.Storage.PublicBaseURL,
		cfg.Storage.UploadTimeout,
		cfg.Storage.MaxConcurrent,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize object store: %w", err)
	}

	// Initialize payment gateway client
	gatewayClient := gateway.NewFlutterwaveClient(
		cfg.Payment.BaseURL,
		cfg.Payment.SecretKey,
		cfg.Payment.WebhookSecret,
		10*time.Second,
	)

	// Initialize usecases
	verificationGate := usecases.NewVerificationGate(itemRepo, cfg.Verification.FailClosed)
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, redis.NewResetTokenStore())
	profileUsecase := usecases.NewProfileUsecase(userRepo, objectStore)
	itemUsecase := usecases.NewItemUsecase(itemRepo)
	listingUsecase := usecases.NewListingUsecase(
		userRepo, itemRepo, paymentRepo, notificationRepo, uow,
		objectStore, draftStore, verificationGate,
		cfg.Payment.PublicKey, cfg.Payment.Currency,
		cfg.Payment.FeePercent, cfg.Payment.DraftTTL,
	)
	paymentUsecase := usecases.NewPaymentUsecase(paymentRepo, notificationRepo, gatewayClient, listingUsecase, cfg.Payment.DevSimulate)
	webhookUsecase := usecases.NewWebhookUsecase(paymentRepo, notificationRepo, listingUsecase)
	verificationUsecase := usecases.NewVerificationUsecase(userRepo, verificationRepo, notificationRepo, objectStore, verificationGate)
	favoriteUsecase := usecases.NewFavoriteUsecase(favoriteRepo, itemRepo)
	chatUsecase := usecases.NewChatUsecase(chatRepo, userRepo, itemRepo, notificationRepo)
	notificationUsecase := usecases.NewNotificationUsecase(notificationRepo)
	adminUsecase := usecases.NewAdminUsecase(userRepo, itemRepo, verificationRepo, notificationRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	itemHandler := handlers.NewItemHandler(itemUsecase)
	listingHandler := handlers.NewListingHandler(listingUsecase)
	paymentHandler := handlers.NewPaymentHandler(paymentUsecase)
	webhookHandler := handlers.NewWebhookHandler(webhookUsecase, gatewayClient)
	verificationHandler := handlers.NewVerificationHandler(verificationUsecase)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteUsecase)
	chatHandler := handlers.NewChatHandler(chatUsecase)
	notificationHandler := handlers.NewNotificationHandler(notificationUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)

	// Create auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService)
	optionalAuthMiddleware := middleware.OptionalAuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewPaymentExpiryJob(paymentRepo, draftStore, cfg.Payment.DraftTTL)
	go expiryJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	r.Static("/storage", cfg.Storage.BasePath)
	registerAPIV1Routes(r, routeDeps{
		authHandler:            authHandler,
		profileHandler:         profileHandler,
		itemHandler:            itemHandler,
		listingHandler:         listingHandler,
		paymentHandler:         paymentHandler,
		webhookHandler:         webhookHandler,
		verificationHandler:    verificationHandler,
		favoriteHandler:        favoriteHandler,
		chatHandler:            chatHandler,
		notificationHandler:    notificationHandler,
		adminHandler:           adminHandler,
		authMiddleware:         authMiddleware,
		optionalAuthMiddleware: optionalAuthMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 LizExpress Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
