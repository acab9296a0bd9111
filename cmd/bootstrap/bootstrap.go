package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dralafandy/CuraSoft/config"
	deliveryHttp "github.com/dralafandy/CuraSoft/internal/delivery/http"
	"github.com/dralafandy/CuraSoft/internal/delivery/http/handler"
	"github.com/dralafandy/CuraSoft/internal/delivery/http/middleware"
	"github.com/dralafandy/CuraSoft/internal/infrastructure/cache"
	"github.com/dralafandy/CuraSoft/internal/infrastructure/database"
	"github.com/dralafandy/CuraSoft/internal/repository"
	"github.com/dralafandy/CuraSoft/internal/service"
	"github.com/dralafandy/CuraSoft/internal/usecase"
	"github.com/dralafandy/CuraSoft/pkg/jwt"
	"github.com/dralafandy/CuraSoft/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Apply schema migrations
	if err := database.RunMigrations(db, cfg.DB.Name); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	dentistRepo := repository.NewDentistRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	definitionRepo := repository.NewTreatmentDefinitionRepository()
	recordRepo := repository.NewTreatmentRecordRepository()
	paymentRepo := repository.NewPaymentRepository()
	expenseRepo := repository.NewExpenseRepository()
	supplierRepo := repository.NewSupplierRepository()
	invoiceRepo := repository.NewSupplierInvoiceRepository()
	inventoryRepo := repository.NewInventoryItemRepository()
	labCaseRepo := repository.NewLabCaseRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditSvc := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, auditSvc, jwtService, redisClient)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditSvc)
	dentistUsecase := usecase.NewDentistUsecase(db, log, dentistRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, dentistRepo)
	treatmentUsecase := usecase.NewTreatmentUsecase(db, log, definitionRepo, recordRepo, patientRepo, dentistRepo, inventoryRepo, auditSvc)
	paymentUsecase := usecase.NewPaymentUsecase(db, log, paymentRepo, patientRepo, recordRepo, auditSvc)
	expenseUsecase := usecase.NewExpenseUsecase(db, log, expenseRepo, invoiceRepo, auditSvc)
	supplierUsecase := usecase.NewSupplierUsecase(db, log, supplierRepo)
	invoiceUsecase := usecase.NewSupplierInvoiceUsecase(db, log, invoiceRepo, supplierRepo, expenseRepo, auditSvc)
	inventoryUsecase := usecase.NewInventoryUsecase(db, log, inventoryRepo, cfg.Clinic)
	labCaseUsecase := usecase.NewLabCaseUsecase(db, log, labCaseRepo, patientRepo, supplierRepo)
	reportUsecase := usecase.NewReportUsecase(db, log, patientRepo, dentistRepo, appointmentRepo, recordRepo, definitionRepo, paymentRepo, expenseRepo, labCaseRepo, inventoryRepo, cfg.Clinic)
	reminderUsecase := usecase.NewReminderUsecase(db, log, appointmentRepo, inventoryRepo, labCaseRepo, auditSvc, cfg.Clinic)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	dentistHandler := handler.NewDentistHandler(dentistUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	treatmentHandler := handler.NewTreatmentHandler(treatmentUsecase, customValidator)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase, customValidator)
	expenseHandler := handler.NewExpenseHandler(expenseUsecase, customValidator)
	supplierHandler := handler.NewSupplierHandler(supplierUsecase, invoiceUsecase, customValidator)
	inventoryHandler := handler.NewInventoryHandler(inventoryUsecase, customValidator)
	labCaseHandler := handler.NewLabCaseHandler(labCaseUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase, customValidator)
	reminderHandler := handler.NewReminderHandler(reminderUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		dentistHandler,
		appointmentHandler,
		treatmentHandler,
		paymentHandler,
		expenseHandler,
		supplierHandler,
		inventoryHandler,
		labCaseHandler,
		reportHandler,
		reminderHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
