package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"reclamos_backend/internal/config"
	"reclamos_backend/internal/database"
	"reclamos_backend/internal/email"
	"reclamos_backend/internal/handlers"
	"reclamos_backend/internal/logger"
	"reclamos_backend/internal/middleware"
	"reclamos_backend/internal/repositories"
	"reclamos_backend/internal/routes"
	"reclamos_backend/internal/services"
	"reclamos_backend/internal/storage"
	"reclamos_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("logger inicializado", "env", cfg.Server.Env)

	db, err := database.Connect()
	if err != nil {
		logger.Fatal("no se pudo conectar a la base", "error", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("no se pudo migrar el esquema", "error", err)
	}
	logger.Info("base de datos conectada")

	if err := SeedFirstAbogado(db, cfg); err != nil {
		logger.Fatal("no se pudo crear el primer abogado", "error", err)
	}

	router := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("servidor escuchando", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("el servidor no pudo arrancar", "error", err)
	}
}

// SetupRouter arma el router completo con todas sus dependencias.
// Lo usan Run y el harness de tests de integración.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     "local",
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("no se pudo inicializar el storage", "error", err)
	}

	serviceContainer := initializeServices(cfg, db, storageInstance)
	appHandlers := initializeHandlers(serviceContainer)

	router := initializeGinRouter(cfg)
	routes.RegisterRoutes(router, appHandlers, cfg.Storage.BasePath)

	return router
}

func initializeServices(cfg *config.Config, db *gorm.DB, storageInstance storage.Storage) *services.ServiceContainer {
	var emailProvider email.Provider = email.NoopProvider{}
	if cfg.Email.SMTPHost != "" {
		smtp, err := email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Warn("SMTP mal configurado, correos deshabilitados", "error", err)
		} else {
			emailProvider = smtp
		}
	}

	userRepo := repositories.NewUserRepository(db)
	consultaRepo := repositories.NewConsultaRepository(db)
	reclamoRepo := repositories.NewReclamoRepository(db)

	archivoService := services.NewArchivoService(storageInstance, services.ArchivoConfig{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	})

	return &services.ServiceContainer{
		AuthService:     services.NewAuthService(userRepo),
		ConsultaService: services.NewConsultaService(consultaRepo),
		ReclamoService:  services.NewReclamoService(db, userRepo, reclamoRepo, archivoService, emailProvider),
		ArchivoService:  archivoService,
		EmailProvider:   emailProvider,
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, sc.AuthService),
		ConsultaHandler: handlers.NewConsultaHandler(baseHandler, sc.ConsultaService),
		ReclamoHandler:  handlers.NewReclamoHandler(baseHandler, sc.ReclamoService),
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
	router.Use(middleware.CORSMiddleware(cfg.CORS.Origins))
	router.Use(middleware.RateLimitMiddleware(
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.WindowS)*time.Second,
	))
	return router
}
