package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/notify"
	"portfolio_backend/internal/pkg/email"
	"portfolio_backend/internal/routes"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/storage"
	"portfolio_backend/internal/store"
	"portfolio_backend/internal/validator"
)

// Run loads configuration and serves until the process is stopped.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	router, container, err := SetupRouter(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize application", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address, "storage", cfg.Storage.BasePath)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}

	// drain in-flight notifications before exit
	container.Notifier.Wait()
}

// SetupRouter builds the full application: store, storage, services,
// handlers and the Gin engine. Tests call it with their own config.
func SetupRouter(cfg *config.Config) (*gin.Engine, *services.ServiceContainer, error) {
	recordStore, err := store.New(cfg.Storage.BasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open record store: %w", err)
	}

	localStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "base_path", cfg.Storage.BasePath)

	container, err := initializeServices(cfg, recordStore, localStorage)
	if err != nil {
		return nil, nil, err
	}

	appHandlers := initializeHandlers(cfg, container)

	router := initializeGinRouter(cfg)
	routes.RegisterRoutes(router, appHandlers)

	return router, container, nil
}

func initializeServices(cfg *config.Config, recordStore *store.Store, localStorage storage.Storage) (*services.ServiceContainer, error) {
	templates, err := email.NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	// Without SMTP credentials the notifier runs with a nil sender: every
	// dispatch is logged and skipped, nothing else changes.
	var sender email.Sender
	if cfg.Email.Enabled {
		sender, err = email.NewGomailSender(email.Config{
			SMTPHost:  cfg.Email.SMTPHost,
			SMTPPort:  cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUser,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to configure email sender: %w", err)
		}
	} else {
		logger.Warn("Email sending disabled: no SMTP credentials configured")
	}

	notifier := notify.New(sender, templates, cfg.Email.AdminEmail)

	receiver := services.NewFileReceiver(localStorage, services.ReceiverConfig{
		AllowedTypes: cfg.Upload.AllowedTypes,
		MaxTotalSize: cfg.Upload.MaxTotalSize,
	})

	uploadService := services.NewUploadService(receiver, recordStore.Uploads, notifier, services.UploadDefaults{
		ProjectName: cfg.Upload.DefaultProjectName,
		UploadedBy:  cfg.Upload.DefaultUploadedBy,
	})
	contactService := services.NewContactService(recordStore.Contacts, notifier)
	resultService := services.NewResultService(recordStore.Results)

	return &services.ServiceContainer{
		UploadService:  uploadService,
		ContactService: contactService,
		ResultService:  resultService,
		Notifier:       notifier,
	}, nil
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		UploadHandler:  handlers.NewUploadHandler(baseHandler, container.UploadService),
		ContactHandler: handlers.NewContactHandler(baseHandler, container.ContactService),
		ResultHandler:  handlers.NewResultHandler(baseHandler, container.ResultService),
		HealthHandler:  handlers.NewHealthHandler(cfg.Server.Version),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	return router
}
