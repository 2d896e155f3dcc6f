package auth

// TokenService defines the interface for issuing and validating tokens.
// It is implemented by JWTService and mocked in tests.
type TokenService interface {
	// GenerateSessionToken issues a session token for a logged-in user.
	GenerateSessionToken(userID int64, username, email string) (string, string, error)

	// GenerateResetToken issues a short-lived password reset token.
	GenerateResetToken(userID int64, username, email string) (string, string, error)

	// ValidateSessionToken validates a session token and returns its claims.
	ValidateSessionToken(tokenString string) (*CustomClaims, error)

	// ValidateResetToken validates a reset token and returns its claims.
	ValidateResetToken(tokenString string) (*CustomClaims, error)
}

// Ensure JWTService implements TokenService.
var _ TokenService = (*JWTService)(nil)
