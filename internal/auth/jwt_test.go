package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/danuarts/staffdesk/internal/auth"
	"github.com/danuarts/staffdesk/internal/config"
	"github.com/danuarts/staffdesk/internal/constants"
	"github.com/danuarts/staffdesk/internal/utils"
)

func testJWTSettings() *config.JWTSettings {
	return &config.JWTSettings{
		SessionSecret: "test-session-secret",
		ResetSecret:   "test-reset-secret",
		SessionExpiry: time.Hour,
		ResetExpiry:   15 * time.Minute,
		Issuer:        "test-issuer",
	}
}

func TestNewJWTService(t *testing.T) {
	cfg := testJWTSettings()

	service := auth.NewJWTService(cfg)

	if service == nil {
		t.Fatal("Expected service to be created, got nil")
	}

	if service.Config != cfg {
		t.Errorf("Expected Config to be %v, got %v", cfg, service.Config)
	}
}

func TestGenerateSessionToken(t *testing.T) {
	service := auth.NewJWTService(testJWTSettings())

	tokenString, jwtID, err := service.GenerateSessionToken(1, "testuser", "test@example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if tokenString == "" {
		t.Error("Expected a token string, got empty string")
	}

	if jwtID == "" {
		t.Error("Expected a JWT ID, got empty string")
	}

	// The generated token must validate as a session token
	claims, err := service.ValidateSessionToken(tokenString)
	if err != nil {
		t.Fatalf("Expected token to validate, got %v", err)
	}

	if claims.UserID != 1 {
		t.Errorf("Expected UserID 1, got %d", claims.UserID)
	}

	if claims.Username != "testuser" {
		t.Errorf("Expected Username 'testuser', got %q", claims.Username)
	}

	if claims.Email != "test@example.com" {
		t.Errorf("Expected Email 'test@example.com', got %q", claims.Email)
	}

	if claims.TokenType != constants.TokenTypeSession {
		t.Errorf("Expected TokenType %q, got %q", constants.TokenTypeSession, claims.TokenType)
	}

	if claims.Issuer != "test-issuer" {
		t.Errorf("Expected Issuer 'test-issuer', got %q", claims.Issuer)
	}

	if claims.ID != jwtID {
		t.Errorf("Expected claim ID %q, got %q", jwtID, claims.ID)
	}
}

func TestGenerateResetToken(t *testing.T) {
	service := auth.NewJWTService(testJWTSettings())

	tokenString, _, err := service.GenerateResetToken(1, "testuser", "test@example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	claims, err := service.ValidateResetToken(tokenString)
	if err != nil {
		t.Fatalf("Expected token to validate, got %v", err)
	}

	if claims.TokenType != constants.TokenTypeReset {
		t.Errorf("Expected TokenType %q, got %q", constants.TokenTypeReset, claims.TokenType)
	}
}

func TestValidateSessionToken_RejectsResetToken(t *testing.T) {
	service := auth.NewJWTService(testJWTSettings())

	resetToken, _, err := service.GenerateResetToken(1, "testuser", "test@example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// A reset token must never grant session access
	if _, err := service.ValidateSessionToken(resetToken); err == nil {
		t.Error("Expected session validation of a reset token to fail")
	}
}

func TestValidateResetToken_RejectsSessionToken(t *testing.T) {
	service := auth.NewJWTService(testJWTSettings())

	sessionToken, _, err := service.GenerateSessionToken(1, "testuser", "test@example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := service.ValidateResetToken(sessionToken); err == nil {
		t.Error("Expected reset validation of a session token to fail")
	}
}

func TestValidateSessionToken_Expired(t *testing.T) {
	cfg := testJWTSettings()
	cfg.SessionExpiry = -time.Minute
	service := auth.NewJWTService(cfg)

	tokenString, _, err := service.GenerateSessionToken(1, "testuser", "test@example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = service.ValidateSessionToken(tokenString)
	if err == nil {
		t.Fatal("Expected an error for an expired token, got nil")
	}

	if !errors.Is(err, utils.ErrExpiredToken) {
		t.Errorf("Expected an expired token error, got %v", err)
	}
}

func TestValidateSessionToken_Invalid(t *testing.T) {
	service := auth.NewJWTService(testJWTSettings())

	if _, err := service.ValidateSessionToken("not-a-token"); err == nil {
		t.Error("Expected an error for a malformed token")
	}
}

func TestValidateSessionToken_WrongSecret(t *testing.T) {
	service := auth.NewJWTService(testJWTSettings())

	otherCfg := testJWTSettings()
	otherCfg.SessionSecret = "a-different-secret"
	otherService := auth.NewJWTService(otherCfg)

	tokenString, _, err := otherService.GenerateSessionToken(1, "testuser", "test@example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := service.ValidateSessionToken(tokenString); err == nil {
		t.Error("Expected validation with the wrong secret to fail")
	}
}

func TestExtractUserIDFromToken(t *testing.T) {
	service := auth.NewJWTService(testJWTSettings())

	tokenString, _, err := service.GenerateSessionToken(42, "testuser", "test@example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	userID, err := service.ExtractUserIDFromToken(tokenString)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if userID != 42 {
		t.Errorf("Expected user ID 42, got %d", userID)
	}
}
