package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-scheduler/config"
	deliveryHttp "clinic-scheduler/internal/delivery/http"
	"clinic-scheduler/internal/delivery/http/handler"
	"clinic-scheduler/internal/delivery/http/middleware"
	"clinic-scheduler/internal/infrastructure/cache"
	"clinic-scheduler/internal/infrastructure/database"
	"clinic-scheduler/internal/repository"
	"clinic-scheduler/internal/service"
	"clinic-scheduler/internal/usecase"
	"clinic-scheduler/pkg/validator"

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

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	if err := database.RunMigrations(cfg.DB, "migrations"); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Database migrations applied")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	app.Server = initializeServer(cfg, db, redisClient)

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
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Repositories
	practitionerRepo := repository.NewPractitionerRepository()
	patientRepo := repository.NewPatientRepository()
	specialtyRepo := repository.NewSpecialtyRepository()
	userRepo := repository.NewUserRepository()
	scheduleRepo := repository.NewWorkScheduleRepository()
	leaveRepo := repository.NewLeaveRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Services
	auditService := service.NewAuditService(log, auditRepo)
	availabilityCache := service.NewAvailabilityCache(redisClient, log, cfg.Scheduling.AvailabilityCacheTTL)
	locker := cache.NewPractitionerLocker(redisClient, cfg.Scheduling.BookingLockTTL)

	// Usecases
	leaveUsecase := usecase.NewLeaveUsecase(db, log, leaveRepo, practitionerRepo, userRepo, auditService)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, practitionerRepo, specialtyRepo, scheduleRepo, leaveRepo, appointmentRepo, leaveUsecase, availabilityCache)
	bookingUsecase := usecase.NewBookingUsecase(db, log, appointmentRepo, practitionerRepo, patientRepo, specialtyRepo, scheduleRepo, leaveUsecase, locker, auditService, cfg.Scheduling.DefaultSlotMinutes)
	scheduleUsecase := usecase.NewWorkScheduleUsecase(db, log, scheduleRepo, practitionerRepo, auditService, cfg.Scheduling.DefaultSlotMinutes)

	// Handlers
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase)
	appointmentHandler := handler.NewAppointmentHandler(bookingUsecase, customValidator)
	leaveHandler := handler.NewLeaveHandler(leaveUsecase, customValidator)
	scheduleHandler := handler.NewWorkScheduleHandler(scheduleUsecase, customValidator)

	// Middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Router
	router := deliveryHttp.NewRouter(availabilityHandler, appointmentHandler, leaveHandler, scheduleHandler, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
