package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	_ "tutorhub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tutorhub/internal/auth"
	"tutorhub/internal/cache"
	"tutorhub/internal/classifier"
	"tutorhub/internal/config"
	"tutorhub/internal/db"
	"tutorhub/internal/handler"
	"tutorhub/internal/model"
	"tutorhub/internal/repository"
	"tutorhub/internal/router"
	"tutorhub/internal/service"
	"tutorhub/internal/storage"
)

// @title TutorHub Profile API
// @version 1.0
// @description Tutoring marketplace profile backend with credential validation, specialization tracking, and JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.CredentialEvent{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.CredentialEvent{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	documentStore, err := storage.NewS3Store(context.Background(), cfg)
	if err != nil {
		log.Fatalf("document store init: %v", err)
	}

	documentClassifier := classifier.NewWebhookClassifier(
		cfg.ClassifierURL,
		time.Duration(cfg.ClassifierTimeout)*time.Second,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	eventRepo := repository.NewCredentialEventRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	profileService := service.NewProfileService(userRepo, cacheClient)
	credentialService := service.NewCredentialService(
		userRepo,
		eventRepo,
		documentStore,
		documentClassifier,
		cacheClient,
		cfg.IngestWorkers,
	)
	defer credentialService.Close()
	searchService := service.NewSearchService(userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	profileHandler := handler.NewProfileHandler(profileService)
	credentialHandler := handler.NewCredentialHandler(credentialService)
	searchHandler := handler.NewSearchHandler(searchService)
	seedHandler := handler.NewSeedHandler(userRepo)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		profileHandler,
		credentialHandler,
		searchHandler,
		seedHandler,
	)

	// Log swagger full path
	var swaggerURL string
	if cfg.SwaggerHost != "" {
		// SwaggerHost may already include scheme (http:// or https://)
		if len(cfg.SwaggerHost) >= 7 && cfg.SwaggerHost[:7] == "http://" {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else if len(cfg.SwaggerHost) >= 8 && cfg.SwaggerHost[:8] == "https://" {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	} else {
		swaggerURL = "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
