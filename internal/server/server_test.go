package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danuarts/staffdesk/internal/config"
	"github.com/danuarts/staffdesk/internal/database"
)

func createTestConfig() *config.AppConfig {
	return &config.AppConfig{
		App: config.AppSettings{
			Environment: "testing",
			Name:        "staffdesk-test",
			Version:     "test-version",
		},
		Server: config.ServerSettings{
			Host:         "localhost",
			Port:         8080,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: config.DatabaseSettings{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
		JWT: config.JWTSettings{
			SessionSecret: "test-session-secret",
			ResetSecret:   "test-reset-secret",
			SessionExpiry: time.Hour,
			ResetExpiry:   15 * time.Minute,
			Issuer:        "test-issuer",
		},
		Reset: config.ResetSettings{
			OTPExpiry: 10 * time.Minute,
		},
		Mail: config.MailSettings{
			SendGridAPIKey: "SG.test-key",
			FromAddress:    "noreply@example.com",
			FromName:       "StaffDesk",
		},
		CORS: config.CORSSettings{
			AllowedOrigins: []string{"*"},
		},
		PasswordHash: config.HashSettings{
			Memory:      16 * 1024,
			Iterations:  1,
			Parallelism: 1,
			SaltLength:  16,
			KeyLength:   32,
		},
	}
}

// buildTestServer wires a full server against a mock database, skipping
// the connection and migration steps of NewServer.
func buildTestServer(t *testing.T) (*Server, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	s := &Server{
		Config: createTestConfig(),
		Db:     &database.Pool{DB: db},
	}

	require.NoError(t, s.setupAuthProviders())
	s.setupRepositories()
	require.NoError(t, s.setupServices())
	require.NoError(t, s.setupHandlers())
	s.setupRateLimits()
	s.SetupRoutes()

	cleanup := func() {
		db.Close()
	}

	return s, mock, cleanup
}

func TestServerCreation(t *testing.T) {
	// NewServer would connect to a real database, so the HTTP pieces are
	// assembled by hand the same way NewServer does.
	cfg := createTestConfig()
	server := &Server{
		Config: cfg,
		router: chi.NewRouter(),
	}

	server.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      server.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	assert.Equal(t, cfg, server.Config)
	assert.NotNil(t, server.router)
	assert.Equal(t, cfg.Server.ServerAddress(), server.httpServer.Addr)
}

func TestHealthEndpoint(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		s, mock, cleanup := buildTestServer(t)
		defer cleanup()

		mock.ExpectPing()
		rows := sqlmock.NewRows([]string{"?column?"}).AddRow(1)
		mock.ExpectQuery("SELECT 1").WillReturnRows(rows)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()

		s.GetRouter().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response struct {
			Success bool              `json:"success"`
			Data    map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Equal(t, "healthy", response.Data["status"])
		assert.Equal(t, "test-version", response.Data["version"])
	})

	t.Run("Unhealthy", func(t *testing.T) {
		s, mock, cleanup := buildTestServer(t)
		defer cleanup()

		mock.ExpectPing().WillReturnError(sql.ErrConnDone)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()

		s.GetRouter().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestVersionEndpoint(t *testing.T) {
	s, _, cleanup := buildTestServer(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rr := httptest.NewRecorder()

	s.GetRouter().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "test-version", response.Data["version"])
	assert.Equal(t, "testing", response.Data["environment"])
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	s, _, cleanup := buildTestServer(t)
	defer cleanup()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/employees"},
		{http.MethodPost, "/api/employees"},
		{http.MethodGet, "/api/employees/1"},
		{http.MethodPut, "/api/employees/1"},
		{http.MethodDelete, "/api/employees/1"},
		{http.MethodPost, "/api/auth/change-password"},
		{http.MethodDelete, "/api/auth/delete-account"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()

			s.GetRouter().ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestPublicAuthRoutesRegistered(t *testing.T) {
	s, _, cleanup := buildTestServer(t)
	defer cleanup()

	// An empty body reaches the handler and fails validation, which
	// proves the route is registered and unprotected.
	paths := []string{
		"/api/auth/register",
		"/api/auth/login",
		"/api/auth/forgot-password",
		"/api/auth/confirm-otp",
		"/api/auth/set-new-password",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(""))
			rr := httptest.NewRecorder()

			s.GetRouter().ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	s, _, cleanup := buildTestServer(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()

	s.GetRouter().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestShutdown(t *testing.T) {
	s, mock, cleanup := buildTestServer(t)
	defer cleanup()

	s.httpServer = &http.Server{
		Addr:    s.Config.Server.ServerAddress(),
		Handler: s.GetRouter(),
	}

	mock.ExpectClose()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, s.Shutdown(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
