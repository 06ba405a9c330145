package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kennel_backend/internal/auth"
	"kennel_backend/internal/config"
	"kennel_backend/internal/email"
	"kennel_backend/internal/handlers"
	"kennel_backend/internal/logger"
	"kennel_backend/internal/middleware"
	"kennel_backend/internal/models"
	"kennel_backend/internal/repositories"
	"kennel_backend/internal/routes"
	"kennel_backend/internal/services"
	"kennel_backend/internal/storage"
	"kennel_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.SetSecret(cfg.JWT.Secret)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
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

	if err := migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Member{},
		&models.Puppy{},
		&models.Environment{},
		&models.Post{},
		&models.Inquiry{},
	)
}

// SetupRouter assembles storage, services, handlers and routes. Split out
// so tests can build a full router against their own config.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, storageInstance)

	v := validator.New()
	appHandlers := handlers.NewAppHandlers(v, serviceContainer)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware(cfg.CORS.AllowOrigins))
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	// Local storage serves its blobs straight from disk.
	if cfg.Storage.Type == "local" {
		ginRouter.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
	}

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	memberRepo := repositories.NewMemberRepository()
	puppyRepo := repositories.NewPuppyRepository()
	envRepo := repositories.NewEnvironmentRepository()
	postRepo := repositories.NewPostRepository()
	inquiryRepo := repositories.NewInquiryRepository()

	var mailer email.Provider
	if cfg.Email.SMTPHost != "" {
		smtp, err := email.NewSMTPProvider(&email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
			From:     cfg.Email.FromEmail,
			FromName: cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		mailer = smtp
	} else {
		logger.Warn("No SMTP host configured, inquiry notifications are logged only")
		mailer = email.NewMockProvider()
	}

	photoService := services.NewPhotoService(storageInstance, services.NewGormRecordStore())

	return &services.ServiceContainer{
		MemberService:      services.NewMemberService(memberRepo, photoService),
		PuppyService:       services.NewPuppyService(puppyRepo, memberRepo, photoService),
		EnvironmentService: services.NewEnvironmentService(envRepo, photoService),
		PostService:        services.NewPostService(postRepo),
		InquiryService:     services.NewInquiryService(inquiryRepo, puppyRepo, mailer, cfg.Email.InquiryEmail),
		PhotoService:       photoService,
	}
}
