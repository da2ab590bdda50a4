package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mentorhub_backend/database"
	"mentorhub_backend/internal/auth"
	"mentorhub_backend/internal/config"
	"mentorhub_backend/internal/email"
	"mentorhub_backend/internal/handlers"
	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/middleware"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/routes"
	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/storage"
	"mentorhub_backend/internal/validator"
	"mentorhub_backend/ws"
)

// Run boots the application: config, logging, database, migration and
// the HTTP server. It blocks until the server stops.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Database connection failed", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Database migration failed", "error", err)
	}

	if err := seedFirstAdmin(db, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	router := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles the full dependency graph and returns the
// configured engine. Shared with the integration test harness.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	store, err := storage.New(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	wsManager := ws.NewManager()
	go wsManager.Run()

	serviceContainer := initializeServices(cfg, db, store, wsManager)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())
	wsHandler := ws.NewHandler(wsManager)

	router := initializeGinRouter(cfg, db)
	routes.RegisterRoutes(router, appHandlers, wsHandler)
	return router
}

func initializeServices(cfg *config.Config, db *gorm.DB, store storage.Storage, notifier services.Notifier) *services.ServiceContainer {
	mailer := newEmailProvider(cfg)

	userRepo := repositories.NewUserRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	resourceRepo := repositories.NewResourceRepository(db)
	blogRepo := repositories.NewBlogRepository(db)

	statsService := services.NewStatsService(bookingRepo, userRepo)

	return &services.ServiceContainer{
		Auth:     services.NewAuthService(userRepo, mailer),
		User:     services.NewUserService(userRepo),
		Booking:  services.NewBookingService(bookingRepo, userRepo, statsService, notifier),
		Stats:    statsService,
		Chat:     services.NewChatService(chatRepo, userRepo, notifier),
		Blog:     services.NewBlogService(blogRepo),
		Resource: services.NewResourceService(resourceRepo, store),
	}
}

func newEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP not configured, email delivery is log only")
		return email.NewLogProvider()
	}

	provider, err := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Fatal("Failed to initialize email provider", "error", err)
	}
	return provider
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin creates the bootstrap admin account on first start.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", models.UserRoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         "Administrator",
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("First admin user created", "email", cfg.FirstAdminEmail)
	return nil
}
