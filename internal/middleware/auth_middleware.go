package middleware

import (
	"net/http"

	"github.com/danuarts/staffdesk/internal/auth"
)

// JWTAuth is a middleware that requires a valid session token
func JWTAuth(tokenService auth.TokenService) func(http.Handler) http.Handler {
	provider := auth.NewJWTAuthProvider(tokenService)
	return auth.RequireAuth(provider)
}
