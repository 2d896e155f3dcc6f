// Package server provides the HTTP server implementation for the StaffDesk
// application. This file defines interfaces that abstract the server's
// functionality for testing and modularity purposes.
package server

import (
	"context"

	"github.com/go-chi/chi/v5"
)

// ServerTestInterface defines methods required for server testing.
// It abstracts the server's core functionality to facilitate unit testing
// with mock implementations.
type ServerTestInterface interface {
	// SetupRoutes configures the HTTP routes for the server
	SetupRoutes()

	// GetRouter returns the configured router for request handling
	GetRouter() chi.Router

	// Start begins listening for HTTP requests
	Start() error

	// Shutdown gracefully stops the server
	Shutdown(ctx context.Context) error
}

// ServerDBHealthChecker defines the interface for database health checks.
// It abstracts database connectivity testing to allow for dependency
// injection in health check endpoint tests.
type ServerDBHealthChecker interface {
	// HealthCheck verifies the database connection is working properly
	HealthCheck(ctx context.Context) error

	// Close terminates the database connection
	Close()
}
