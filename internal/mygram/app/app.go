package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/mygramapp/mygram/internal/mygram/http"
	"github.com/mygramapp/mygram/internal/mygram/service"
	"github.com/mygramapp/mygram/internal/mygram/store"
	"github.com/mygramapp/mygram/internal/mygram/store/drivers/sqlite"
	"github.com/mygramapp/mygram/pkg/cryptox"
	"github.com/mygramapp/mygram/pkg/jwtx"
	"github.com/mygramapp/mygram/pkg/slogx"

	"github.com/rs/cors"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	// Services
	exchanger      *service.GoogleExchanger
	sessionService *service.SessionService
	guard          *service.AuthGuard
	registry       *service.RevocationRegistry
	userService    *service.UserService
	postService    *service.PostService
	commentService *service.CommentService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "mygram",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.registry.Start()

	app.logger.Info("mygram starting", "port", app.cfg.Port, "version", BuildVersion)

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
	app.logger.Info("shutting down mygram...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.registry.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("mygram stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL&_pragma=foreign_keys(ON)", app.cfg.DatabaseFile)
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
func (app *Application) initServices() error {
	sessionSecret := app.cfg.SessionSecret
	if sessionSecret == "" {
		// Per-process secret: every restart invalidates all sessions
		sessionSecret = cryptox.MustGenerateToken(cryptox.TokenSize256)
		app.logger.Warn("SESSION_SECRET not set, using an ephemeral secret; sessions will not survive restarts")
	}

	csrfSecret := app.cfg.CSRFSecret
	if csrfSecret == "" {
		csrfSecret = cryptox.MustGenerateToken(cryptox.TokenSize256)
		app.logger.Warn("CSRF_SECRET not set, using an ephemeral secret")
	}

	signer, err := jwtx.NewHS256([]byte(sessionSecret), app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to initialize session signer: %w", err)
	}

	app.exchanger = &service.GoogleExchanger{
		ClientID:     app.cfg.GoogleClientID,
		ClientSecret: app.cfg.GoogleClientSecret,
		Timeout:      app.cfg.GoogleTimeout,
	}

	app.sessionService = &service.SessionService{
		Signer:     signer,
		Verifier:   signer,
		CSRFSecret: []byte(csrfSecret),
		Issuer:     app.cfg.Issuer,
		TTL:        app.cfg.SessionTTL,
	}

	app.registry = service.NewRevocationRegistry(app.logger, app.cfg.RevocationSweepInterval)
	app.guard = &service.AuthGuard{
		Sessions: app.sessionService,
		Registry: app.registry,
	}

	app.userService = &service.UserService{Store: app.db}
	app.postService = &service.PostService{Store: app.db}
	app.commentService = &service.CommentService{Store: app.db}

	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.cfg.CookieSecure,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.Exchanger = app.exchanger
	router.SessionService = app.sessionService
	router.Guard = app.guard
	router.Registry = app.registry
	router.UserService = app.userService
	router.PostService = app.postService
	router.CommentService = app.commentService
	router.ApplyRoutes()

	app.router = router

	// Credentialed CORS never reflects arbitrary origins; only the
	// configured allowlist passes.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   app.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"X-CSRF-Token"},
		AllowCredentials: true,
	})

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 3 * time.Second,
	}
}
