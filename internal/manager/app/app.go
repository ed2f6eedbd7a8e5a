package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/ifedan-ed/plugnmeet-manager/internal/manager/http"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/service"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/store"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/store/drivers/sqlite"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/obs"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the manager service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	// Services
	hasher              *service.Hasher
	sessionService      *service.SessionService
	userService         *service.UserService
	authService         *service.AuthService
	configService       *service.ConfigService
	bootstrapService    *service.BootstrapService
	meetingService      *service.MeetingService
	inviteService       *service.InviteService
	proxyService        *service.ProxyService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "plugnmeet-manager",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	obs.Init()

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()

	if _, err := app.bootstrapService.Initialize(context.Background()); err != nil {
		if !errors.Is(err, service.ErrAlreadyInitialized) {
			_ = app.db.Close()
			return nil, fmt.Errorf("failed to bootstrap admin account: %w", err)
		}
	} else {
		app.logger.Warn("bootstrap admin account created, change its password immediately",
			"email", service.BootstrapAdminEmail)
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("manager service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down manager service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("manager service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.hasher = &service.Hasher{Store: app.db}
	app.sessionService = &service.SessionService{
		Store: app.db,
		TTL:   app.cfg.SessionTTL,
		Now:   time.Now,
	}
	app.userService = &service.UserService{
		Store:  app.db,
		Hasher: app.hasher,
	}
	app.authService = &service.AuthService{
		Users:    app.userService,
		Sessions: app.sessionService,
		Hasher:   app.hasher,
	}
	app.configService = &service.ConfigService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{Users: app.userService}
	app.meetingService = &service.MeetingService{Store: app.db}
	app.inviteService = &service.InviteService{Store: app.db}
	app.proxyService = &service.ProxyService{
		Configs: app.configService,
		Timeout: app.cfg.ProxyTimeout,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.logger, app.cfg.AllowedOrigin)

	router.Auth = app.authService
	router.Sessions = app.sessionService
	router.Users = app.userService
	router.Configs = app.configService
	router.Bootstrap = app.bootstrapService
	router.Meetings = app.meetingService
	router.Invites = app.inviteService
	router.Proxy = app.proxyService
	router.ResendAPIKey = app.cfg.ResendAPIKey
	router.EmailFrom = app.cfg.EmailFrom
	router.MailTimeout = app.cfg.MailTimeout
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
