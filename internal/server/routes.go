// Package server provides the HTTP server implementation for the StaffDesk
// application.
//
// The route table groups endpoints by concern: public account lifecycle
// endpoints under /api/auth, authenticated account management under the same
// prefix, and the employee directory under /api/employees. Protection is
// applied through middleware per route group.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/danuarts/staffdesk/internal/constants"
	"github.com/danuarts/staffdesk/internal/middleware"
	"github.com/danuarts/staffdesk/internal/utils"
)

// SetupRoutes configures the routes for the application.
//
// The configured routes include:
// - Health check and version endpoints (unprotected)
// - Account lifecycle endpoints (register, login, password recovery)
// - Authenticated account endpoints (change password, delete account)
// - Employee directory CRUD (authenticated)
func (s *Server) SetupRoutes() {
	r := chi.NewRouter()

	// Base middleware
	r.Use(middleware.CORS(s.Config.CORS.AllowedOrigins, s.Config.CORS.AllowCredentials))
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Recovery())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders())

	// Health check and version routes (unprotected)
	r.Group(func(r chi.Router) {
		r.Get(constants.HealthPath, func(w http.ResponseWriter, r *http.Request) {
			if err := s.Db.HealthCheck(r.Context()); err != nil {
				log.Error().Err(err).Msg("Health check failed")
				utils.Error(w, http.StatusServiceUnavailable, "service_unavailable", "Service is not healthy", nil)
				return
			}

			utils.JSON(w, http.StatusOK, map[string]string{
				"status":  "healthy",
				"version": s.Config.App.Version,
			})
		})

		r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
			utils.JSON(w, http.StatusOK, map[string]string{
				"version":     s.Config.App.Version,
				"environment": s.Config.App.Environment,
			})
		})
	})

	// API routes
	r.Route(constants.APIBasePath, func(r chi.Router) {
		// Account lifecycle routes
		r.Route(constants.RouteAuth, func(r chi.Router) {
			// Public endpoints get the tight auth rate budget
			r.Group(func(r chi.Router) {
				r.Use(middleware.RateLimit(s.rateLimits, constants.RateLimitCategoryAuth))

				r.Post(constants.RouteRegister, s.Handlers.AuthHandler.Register)
				r.Post(constants.RouteLogin, s.Handlers.AuthHandler.Login)
				r.Post(constants.RouteForgotPassword, s.Handlers.AuthHandler.ForgotPassword)
				r.Post(constants.RouteConfirmOTP, s.Handlers.AuthHandler.ConfirmOTP)
				r.Post(constants.RouteSetNewPassword, s.Handlers.AuthHandler.SetNewPassword)
			})

			// Authenticated account endpoints
			r.Group(func(r chi.Router) {
				r.Use(middleware.JWTAuth(s.authProviders.JWTService))
				r.Use(middleware.RateLimit(s.rateLimits, constants.RateLimitCategoryAPI))

				r.Post(constants.RouteChangePassword, s.Handlers.AuthHandler.ChangePassword)
				r.Delete(constants.RouteDeleteAccount, s.Handlers.AuthHandler.DeleteAccount)
			})
		})

		// Employee directory routes (all authenticated)
		r.Route(constants.RouteEmployees, func(r chi.Router) {
			r.Use(middleware.JWTAuth(s.authProviders.JWTService))
			r.Use(middleware.RateLimit(s.rateLimits, constants.RateLimitCategoryAPI))

			r.Get("/", s.Handlers.EmployeeHandler.ListEmployees)
			r.Post("/", s.Handlers.EmployeeHandler.CreateEmployee)
			r.Get("/{id}", s.Handlers.EmployeeHandler.GetEmployee)
			r.Put("/{id}", s.Handlers.EmployeeHandler.UpdateEmployee)
			r.Delete("/{id}", s.Handlers.EmployeeHandler.DeleteEmployee)
		})
	})

	s.router = r
}

// GetRouter returns the configured router. It is primarily used by tests.
func (s *Server) GetRouter() chi.Router {
	return s.router
}
