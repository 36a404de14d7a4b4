package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthhub/config"
	deliveryHttp "healthhub/internal/delivery/http"
	"healthhub/internal/delivery/http/middleware"
	"healthhub/internal/service"
	"healthhub/internal/usecase"
	"healthhub/pkg/jwt"
	"healthhub/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Registry    *service.SessionRegistry
	RateLimiter *middleware.RateLimiter
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
	setupLogger(cfg)
	logrus.Info("Configuration loaded successfully")

	// Initialize all layers
	app.initializeServer(cfg)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg *config.Config) {
	if cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(cfg *config.Config) {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.Session)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize workspace registry
	app.Registry = service.NewSessionRegistry(func(id string) (*usecase.Workspace, error) {
		return usecase.NewWorkspace(id, cfg.API.BaseURL, log, customValidator)
	}, service.RegistryLimits{
		Expiry:          cfg.Session.Expiry,
		AnonymousExpiry: cfg.Session.AnonymousExpiry,
		MaxWorkspaces:   cfg.Session.MaxWorkspaces,
	}, log)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(jwtService, app.Registry, cfg.Session, cfg.IsProduction(), log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigin)
	app.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	// Initialize router
	router := deliveryHttp.NewRouter(log, sessionMiddleware, corsMiddleware, app.RateLimiter)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	app.Server = &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		logrus.Infof("Remote API: %s", app.Config.API.BaseURL)
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

	// Stop background goroutines
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close stops the workspace janitor and the rate limiter cleanup
func (app *App) Close() {
	if app.Registry != nil {
		app.Registry.Stop()
	}
	if app.RateLimiter != nil {
		app.RateLimiter.Stop()
	}
}
