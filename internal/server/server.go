// Package server provides the HTTP server implementation for the StaffDesk
// application. It handles routing, middleware configuration, and server
// lifecycle management.
//
// The server follows a structured initialization approach with dependency
// injection: database, auth providers, repositories, services, handlers, and
// finally routes. It handles graceful shutdown and recovers cleanly from
// request panics.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/danuarts/staffdesk/internal/auth"
	"github.com/danuarts/staffdesk/internal/config"
	"github.com/danuarts/staffdesk/internal/constants"
	"github.com/danuarts/staffdesk/internal/database"
	"github.com/danuarts/staffdesk/internal/handlers"
	"github.com/danuarts/staffdesk/internal/repository"
	"github.com/danuarts/staffdesk/internal/service"
	"github.com/danuarts/staffdesk/internal/utils/ratelimit"
	"github.com/danuarts/staffdesk/migrations"
	"github.com/danuarts/staffdesk/scripts"
)

// Handlers contains all HTTP handlers for the application.
type Handlers struct {
	// AuthHandler manages account lifecycle and password recovery endpoints
	AuthHandler *handlers.AuthHandler

	// EmployeeHandler manages employee directory endpoints
	EmployeeHandler *handlers.EmployeeHandler
}

// AuthProviders contains all authentication components for the application.
type AuthProviders struct {
	// JWTService handles session and reset token generation and validation
	JWTService *auth.JWTService

	// PasswordCfg contains password hashing configuration
	PasswordCfg *auth.PasswordConfig
}

// repositories holds all repositories used by the server.
type repositories struct {
	userRepo     repository.UserRepository
	resetRepo    repository.PasswordResetRepository
	employeeRepo repository.EmployeeRepository
}

// services holds all business services used by the server.
type services struct {
	authService     *service.AuthService
	employeeService *service.EmployeeService
}

// Server represents the StaffDesk API server. It encapsulates all server
// components and handles initialization, startup, and graceful shutdown.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// Db provides database access
	Db *database.Pool

	// Handlers contains all HTTP request handlers
	Handlers *Handlers

	// router handles HTTP routing
	router chi.Router

	// authProviders contains authentication services
	authProviders *AuthProviders

	// repos contains the data access layer
	repos *repositories

	// svcs contains the business logic layer
	svcs *services

	// rateLimits tracks per-client request budgets
	rateLimits *ratelimit.Store

	// httpServer is the underlying HTTP server
	httpServer *http.Server
}

// NewServer creates a new server instance with all required components.
// Initialization follows dependency order: database, auth providers,
// repositories, services, handlers, routes.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	s := &Server{
		Config: cfg,
	}

	if err := s.setupDatabase(); err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	if err := s.setupAuthProviders(); err != nil {
		return nil, fmt.Errorf("failed to set up auth providers: %w", err)
	}

	s.setupRepositories()

	if err := s.setupServices(); err != nil {
		return nil, fmt.Errorf("failed to set up services: %w", err)
	}

	if err := s.setupHandlers(); err != nil {
		return nil, fmt.Errorf("failed to set up handlers: %w", err)
	}

	s.setupRateLimits()
	s.SetupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return s, nil
}

// setupDatabase initializes the database connection and runs migrations.
func (s *Server) setupDatabase() error {
	db, err := database.Connect(s.Config)
	if err != nil {
		return err
	}

	s.Db = db

	// Create tables if they don't exist
	migrator := migrations.NewMigrator(db)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Sample data only outside production
	if !s.Config.App.IsProduction() {
		seeder := scripts.NewSeeder(db)
		if err := seeder.SeedDatabase(context.Background()); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	return nil
}

// setupAuthProviders initializes token and password components.
func (s *Server) setupAuthProviders() error {
	jwtService := auth.NewJWTService(&s.Config.JWT)
	passwordCfg := auth.ConfigFromAppConfig(s.Config)

	s.authProviders = &AuthProviders{
		JWTService:  jwtService,
		PasswordCfg: passwordCfg,
	}

	return nil
}

// setupRepositories initializes the data access layer.
func (s *Server) setupRepositories() {
	s.repos = &repositories{
		userRepo:     repository.NewUserRepository(s.Db),
		resetRepo:    repository.NewPasswordResetRepository(s.Db),
		employeeRepo: repository.NewEmployeeRepository(s.Db),
	}
}

// setupServices initializes the business logic layer.
func (s *Server) setupServices() error {
	if s.authProviders == nil || s.authProviders.JWTService == nil {
		return fmt.Errorf("JWT service not initialized")
	}
	if s.authProviders.PasswordCfg == nil {
		return fmt.Errorf("password config not initialized")
	}

	notifier, err := service.NewEmailService(&s.Config.Mail)
	if err != nil {
		return fmt.Errorf("failed to create email service: %w", err)
	}

	s.svcs = &services{
		authService: service.NewAuthService(
			s.repos.userRepo,
			s.repos.resetRepo,
			s.authProviders.JWTService,
			notifier,
			s.authProviders.PasswordCfg,
			&s.Config.Reset,
		),
		employeeService: service.NewEmployeeService(s.repos.employeeRepo),
	}

	return nil
}

// setupHandlers initializes all HTTP request handlers.
func (s *Server) setupHandlers() error {
	s.Handlers = &Handlers{
		AuthHandler:     handlers.NewAuthHandler(s.svcs.authService, s.authProviders.JWTService),
		EmployeeHandler: handlers.NewEmployeeHandler(s.svcs.employeeService),
	}

	if s.Handlers.AuthHandler == nil {
		return fmt.Errorf("failed to initialize AuthHandler")
	}

	return nil
}

// setupRateLimits configures per-category request budgets. Auth endpoints
// get a tighter budget than the rest of the API.
func (s *Server) setupRateLimits() {
	store := ratelimit.NewStore(ratelimit.Rate{
		RequestsPerSecond: constants.APIRateLimitPerSecond,
		Burst:             constants.APIRateLimitBurst,
	}, constants.RateLimitCleanupInterval)

	store.SetRate(constants.RateLimitCategoryAuth, ratelimit.Rate{
		RequestsPerSecond: constants.AuthRateLimitPerSecond,
		Burst:             constants.AuthRateLimitBurst,
	})
	store.SetRate(constants.RateLimitCategoryAPI, ratelimit.Rate{
		RequestsPerSecond: constants.APIRateLimitPerSecond,
		Burst:             constants.APIRateLimitBurst,
	})

	s.rateLimits = store
}

// Start starts the HTTP server and blocks until a fatal error occurs or a
// shutdown signal is received, at which point it shuts down gracefully.
func (s *Server) Start() error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// before closing the database connection.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")

	s.Db.Close()
	log.Info().Msg("Database connection closed")

	return nil
}
