package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/danuarts/staffdesk/internal/config"
	"github.com/danuarts/staffdesk/internal/constants"
	"github.com/danuarts/staffdesk/internal/utils"
)

// JWT errors
var (
	ErrInvalidSigningMethod = errors.New("invalid signing method")
	ErrInvalidTokenClaims   = errors.New("invalid token claims")
)

// CustomClaims represents the claims in a JWT token
type CustomClaims struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"` // "session" or "reset"
	jwt.RegisteredClaims
}

// JWTService issues and validates session and reset tokens. The two token
// kinds are signed with independent secrets so a leaked reset secret cannot
// forge session access and vice versa.
type JWTService struct {
	Config *config.JWTSettings
}

// NewJWTService creates a new JWTService instance
func NewJWTService(config *config.JWTSettings) *JWTService {
	return &JWTService{
		Config: config,
	}
}

// GenerateSessionToken generates a new session token for a logged-in user
func (s *JWTService) GenerateSessionToken(userID int64, username, email string) (string, string, error) {
	return s.generateToken(userID, username, email, constants.TokenTypeSession, s.Config.SessionSecret, s.Config.SessionExpiry)
}

// GenerateResetToken generates a short-lived token authorizing a password reset
func (s *JWTService) GenerateResetToken(userID int64, username, email string) (string, string, error) {
	return s.generateToken(userID, username, email, constants.TokenTypeReset, s.Config.ResetSecret, s.Config.ResetExpiry)
}

// generateToken creates a new JWT token with the provided parameters
func (s *JWTService) generateToken(userID int64, username, email, tokenType, secret string, expiry time.Duration) (string, string, error) {
	// Generate a unique token ID
	jwtID := uuid.New().String()

	// Create claims with user information and expiry time
	now := time.Now()
	claims := CustomClaims{
		UserID:    userID,
		Username:  username,
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Config.Issuer,
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			NotBefore: jwt.NewNumericDate(now),
			ID:        jwtID,
		},
	}

	// Create the token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Sign the token with the secret key
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, jwtID, nil
}

// ValidateSessionToken validates a session token and returns its claims if valid
func (s *JWTService) ValidateSessionToken(tokenString string) (*CustomClaims, error) {
	return s.validateToken(tokenString, constants.TokenTypeSession, s.Config.SessionSecret)
}

// ValidateResetToken validates a reset token and returns its claims if valid
func (s *JWTService) ValidateResetToken(tokenString string) (*CustomClaims, error) {
	return s.validateToken(tokenString, constants.TokenTypeReset, s.Config.ResetSecret)
}

// validateToken parses a token against the given secret and enforces the
// expected token type. A session token can never pass reset validation.
func (s *JWTService) validateToken(tokenString, expectedType, secret string) (*CustomClaims, error) {
	// Parse the token
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSigningMethod
		}
		return []byte(secret), nil
	})

	// Handle parsing errors
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, utils.NewExpiredTokenError()
		}
		return nil, utils.NewInvalidTokenError()
	}

	// Check if the token is valid
	if !token.Valid {
		return nil, utils.NewInvalidTokenError()
	}

	// Extract and validate the claims
	claims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return nil, utils.NewInvalidTokenError()
	}

	// Validate the token type
	if claims.TokenType != expectedType {
		return nil, utils.NewInvalidTokenError()
	}

	return claims, nil
}

// ExtractUserIDFromToken extracts the user ID from a session token string
func (s *JWTService) ExtractUserIDFromToken(tokenString string) (int64, error) {
	claims, err := s.ValidateSessionToken(tokenString)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
