package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/taskcrew/backend/docs"
	authMiddleware "github.com/taskcrew/backend/internal/auth/middleware"
	"github.com/taskcrew/backend/internal/auth/service"
	"github.com/taskcrew/backend/internal/config"
	"github.com/taskcrew/backend/internal/handlers"
	"github.com/taskcrew/backend/internal/logger"
	loggerMiddleware "github.com/taskcrew/backend/internal/logger/middleware"
	"github.com/taskcrew/backend/internal/middlewares"
	"github.com/taskcrew/backend/internal/models"
	"github.com/taskcrew/backend/internal/repositories"
	"github.com/taskcrew/backend/internal/services"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// @title Taskcrew API
// @version 1.0
// @description Role-based task management API

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration. A missing JWT secret or database setting is fatal
	// before the server ever listens.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Taskcrew API")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Seed the bootstrap manager account if configured
	if err := seedBootstrapManager(context.Background(), db, cfg); err != nil {
		logger.Logger.Fatal("Failed to seed bootstrap manager", zap.Error(err))
	}

	// Initialize JWT token generator
	tokenGenerator := service.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, logger.Logger)
	taskRepo := repositories.NewTaskRepository(db, logger.Logger)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokenGenerator, logger.Logger)
	userService := services.NewUserService(userRepo)
	taskService := services.NewTaskService(taskRepo, userRepo, logger.Logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger.Logger)
	userHandler := handlers.NewUserHandler(userService, logger.Logger)
	taskHandler := handlers.NewTaskHandler(taskService, logger.Logger)

	// The guard enforces the per-operation authorization policy on each route
	guard := authMiddleware.NewGuard(tokenGenerator)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(1 * 1024 * 1024)) // 1MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		authHandler.RegisterRoutes(r, guard)
		userHandler.RegisterRoutes(r, guard)
		taskHandler.RegisterRoutes(r, guard)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(migrationPath, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// seedBootstrapManager creates the first manager account from the bootstrap
// configuration. Registration itself requires a manager or supervisor token,
// so a fresh deployment needs one manager seeded outside the API. Idempotent.
func seedBootstrapManager(ctx context.Context, db *sql.DB, cfg *config.Config) error {
	email := cfg.Bootstrap.ManagerEmail
	password := cfg.Bootstrap.ManagerPassword

	if email == "" || password == "" {
		logger.Logger.Warn("BOOTSTRAP_MANAGER_EMAIL or BOOTSTRAP_MANAGER_PASSWORD not set, skipping manager seeding")
		return nil
	}

	userRepo := repositories.NewUserRepository(db, logger.Logger)

	exists, err := userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check bootstrap manager existence: %w", err)
	}
	if exists {
		logger.Logger.Info("Bootstrap manager already exists, skipping creation")
		return nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap manager password: %w", err)
	}

	manager := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(passwordHash),
		AccessLevel:  models.AccessLevelManager,
	}

	if err := userRepo.Create(ctx, manager); err != nil {
		return fmt.Errorf("failed to create bootstrap manager: %w", err)
	}

	logger.Logger.Info("Bootstrap manager created", zap.String("user_id", manager.ID))
	return nil
}
