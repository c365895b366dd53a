package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/techcare/pro360-api/config"
	deliveryHttp "github.com/techcare/pro360-api/internal/delivery/http"
	"github.com/techcare/pro360-api/internal/delivery/http/handler"
	"github.com/techcare/pro360-api/internal/delivery/http/middleware"
	"github.com/techcare/pro360-api/internal/domain/entity"
	"github.com/techcare/pro360-api/internal/infrastructure/broker"
	"github.com/techcare/pro360-api/internal/infrastructure/cache"
	"github.com/techcare/pro360-api/internal/infrastructure/database"
	"github.com/techcare/pro360-api/internal/repository"
	"github.com/techcare/pro360-api/internal/service"
	"github.com/techcare/pro360-api/internal/usecase"
	"github.com/techcare/pro360-api/pkg/jwt"
	"github.com/techcare/pro360-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Broker      *broker.Publisher
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	SetupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := Database(cfg)
	if err != nil {
		return nil, err
	}
	app.DB = db

	// Initialize Redis (optional)
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
	} else {
		logrus.Warn("REDIS_HOST not set, admin sessions are not revocable")
	}

	// Initialize RabbitMQ (optional)
	if cfg.AMQP.URL != "" {
		publisher, err := broker.NewPublisher(cfg.AMQP)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		app.Broker = publisher
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, db, app.RedisClient, app.Broker)

	return app, nil
}

// SetupLogger configures the logrus logger
func SetupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// Database connects to PostgreSQL and migrates the schema
func Database(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := entity.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	logrus.Info("Database connected successfully")

	return db, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, publisher *broker.Publisher) *http.Server {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	adminRepo := repository.NewAdminRepository()
	bookingRepo := repository.NewBookingRepository()
	contactRepo := repository.NewContactRepository()
	serviceRepo := repository.NewServiceRepository()
	staffRepo := repository.NewStaffRepository()
	paymentRepo := repository.NewPaymentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	var sessionStore service.SessionStore
	if redisClient != nil {
		sessionStore = service.NewRedisSessionStore(redisClient, log)
	} else {
		sessionStore = service.NewStatelessSessionStore()
	}

	var events service.EventPublisher
	if publisher != nil {
		events = service.NewBrokerEventPublisher(publisher, log)
	} else {
		events = service.NewLogEventPublisher(log)
	}

	var gateway service.PaymentGateway
	if cfg.Razorpay.Enabled() {
		gateway = service.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.App.HTTPClientTimeout, log)
		logrus.Info("Razorpay payment gateway enabled")
	} else {
		gateway = service.NewManualGateway()
		logrus.Warn("Razorpay keys not set, payments are recorded as cash on service")
	}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, adminRepo, jwtService, sessionStore, auditService)
	bookingUsecase := usecase.NewBookingUsecase(db, log, bookingRepo, auditService, events)
	contactUsecase := usecase.NewContactUsecase(db, log, contactRepo, auditService)
	serviceUsecase := usecase.NewServiceUsecase(db, log, serviceRepo, auditService)
	staffUsecase := usecase.NewStaffUsecase(db, log, staffRepo, auditService)
	paymentUsecase := usecase.NewPaymentUsecase(db, log, paymentRepo, bookingRepo, gateway, auditService, events)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	contactHandler := handler.NewContactHandler(contactUsecase, customValidator)
	serviceHandler := handler.NewServiceHandler(serviceUsecase, customValidator)
	staffHandler := handler.NewStaffHandler(staffUsecase, customValidator)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(db, log, jwtService, sessionStore, adminRepo)
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		bookingHandler,
		contactHandler,
		serviceHandler,
		staffHandler,
		paymentHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
	)

	// Create server
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
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

// Close closes all connections (database, redis, rabbitmq)
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

	if app.Broker != nil {
		app.Broker.Close()
	}
}
