// Package main provides the main entry point for the Salendar brand promotion calendar service
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/hye2gold/Salendar/app/handlers"
	"github.com/hye2gold/Salendar/app/middleware"
	"github.com/hye2gold/Salendar/app/router"
	"github.com/hye2gold/Salendar/app/services"
	businessflow "github.com/hye2gold/Salendar/business_flow"
	"github.com/hye2gold/Salendar/config"
	"github.com/hye2gold/Salendar/repository"
	"github.com/hye2gold/Salendar/utils"
	"github.com/redis/go-redis/v9"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Application represents the main application structure
type Application struct {
	router    *router.FiberRouter
	config    *config.ProductionConfig
	server    *fiber.App
	stopFuncs []func()
}

func main() {
	log.Println("Starting Salendar application...")

	// Load production configuration
	cfg, err := config.LoadProductionConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogOutput(cfg.Logging)

	// Initialize application
	app, err := initializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Setup routes
	app.router.SetupRoutes()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Server starting on %s", address)

		if err := app.server.Listen(address); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("Shutting down gracefully...")

	// Stop background workers
	for _, fn := range app.stopFuncs {
		fn()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// setupLogOutput points the standard logger at stdout, a rotating file, or both
func setupLogOutput(cfg config.LoggingConfig) {
	switch cfg.Output {
	case "file", "both":
		rotating := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		if cfg.Output == "both" {
			log.SetOutput(io.MultiWriter(os.Stdout, rotating))
		} else {
			log.SetOutput(rotating)
		}
	default:
		log.SetOutput(os.Stdout)
	}
}

// initializeDatabase initializes the database connection with connection pooling
func initializeDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB for connection pooling configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Test the connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("Database connection established with %d max open connections, %d max idle connections",
		cfg.MaxOpenConns, cfg.MaxIdleConns)

	return db, nil
}

// initializeCache initializes the Redis client and verifies connectivity.
// A disabled cache returns a nil client; callers degrade to the DB path.
func initializeCache(cfg config.CacheConfig) (*redis.Client, error) {
	if !cfg.Enabled || cfg.Provider != "redis" {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	opt.DB = cfg.RedisDB

	rc := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Printf("Redis connection established (db=%d)", cfg.RedisDB)
	return rc, nil
}

// startCacheHealthMonitor starts a background goroutine that periodically pings Redis
// to detect connectivity issues. The returned cancel function stops the monitor.
func startCacheHealthMonitor(parent context.Context, client *redis.Client, interval time.Duration) func() {
	monitorCtx, cancel := context.WithCancel(parent)
	if interval <= 0 {
		interval = 30 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-monitorCtx.Done():
				return
			case <-ticker.C:
				ctx, c := context.WithTimeout(context.Background(), 3*time.Second)
				if err := client.Ping(ctx).Err(); err != nil {
					log.Printf("Redis healthcheck failed: %v", err)
				}
				c()
			}
		}
	}()
	return cancel
}

// initializeStorage builds the object storage client for brand logos.
// A missing URL leaves storage nil; logo uploads then answer 503.
func initializeStorage(cfg config.StorageConfig) services.ObjectStorage {
	if cfg.URL == "" {
		log.Println("Object storage not configured; logo uploads disabled")
		return nil
	}
	return services.NewStorageClient(cfg.URL, cfg.ServiceKey, cfg.BrandBucket, cfg.Timeout)
}

// initializeApplication initializes the main application components
func initializeApplication(cfg *config.ProductionConfig) (*Application, error) {
	var stopFuncs []func()

	// Initialize database
	db, err := initializeDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	rc, err := initializeCache(cfg.Cache)
	if err != nil {
		return nil, err
	}
	if rc != nil {
		cancel := startCacheHealthMonitor(context.Background(), rc, cfg.Cache.CleanupInterval)
		stopFuncs = append(stopFuncs, cancel)
	}

	// Initialize repositories
	brandRepo := repository.NewBrandRepository(db)
	eventRepo := repository.NewEventRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// Initialize services
	storage := initializeStorage(cfg.Storage)

	sessionService, err := services.NewSessionService(cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.SessionToken)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session service: %w", err)
	}

	eventCache := businessflow.NewEventCache(rc, utils.EventsCacheTTL)

	// Initialize flows
	calendarFlow := businessflow.NewCalendarFlow(eventRepo, brandRepo, eventCache)
	brandFlow := businessflow.NewBrandFlow(brandRepo)
	adminBrandFlow := businessflow.NewAdminBrandFlow(brandRepo, eventRepo, favoriteRepo, storage, eventCache, db)
	adminEventFlow := businessflow.NewAdminEventFlow(eventRepo, brandRepo, eventCache)
	adminAuthFlow := businessflow.NewAdminAuthFlow(sessionService)

	// Initialize handlers
	calendarHandler := handlers.NewCalendarHandler(calendarFlow)
	brandHandler := handlers.NewBrandHandler(brandFlow)
	adminBrandHandler := handlers.NewAdminBrandHandler(adminBrandFlow)
	adminEventHandler := handlers.NewAdminEventHandler(adminEventFlow)
	adminAuthHandler := handlers.NewAdminAuthHandler(adminAuthFlow, cfg.Security.SessionCookieSecure)

	// Initialize auth middleware
	adminAuth := middleware.NewAdminAuthMiddleware(sessionService)

	// Initialize router
	appRouter := router.NewFiberRouter(
		cfg,
		calendarHandler,
		brandHandler,
		adminBrandHandler,
		adminEventHandler,
		adminAuthHandler,
		adminAuth,
	)

	fiberRouter := appRouter.(*router.FiberRouter)
	application := &Application{
		router:    fiberRouter,
		config:    cfg,
		server:    fiberRouter.GetApp(),
		stopFuncs: stopFuncs,
	}

	return application, nil
}
