package constants

// Context Key Names
const (
	UserIDContextKey    = "user_id"
	UsernameContextKey  = "username"
	EmailContextKey     = "email"
	RequestIDContextKey = "request_id"
)

// Auth Token Types
const (
	TokenTypeSession = "session"
	TokenTypeReset   = "reset"
)

// Credential Validation
const (
	MinPasswordLength = 8
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MaxEmailLength    = 255
)

// Cookie Names
const (
	AuthTokenCookie = "auth_token"
	CSRFTokenCookie = "csrf_token"
)

// Rate Limiting
const (
	// RateLimitCategoryAuth covers login, registration, and password
	// recovery endpoints, which get a tighter budget.
	RateLimitCategoryAuth = "auth"

	// RateLimitCategoryAPI covers authenticated API endpoints.
	RateLimitCategoryAPI = "api"

	// AuthRateLimitPerSecond is the sustained request rate for auth endpoints.
	AuthRateLimitPerSecond = 1.0

	// AuthRateLimitBurst is the burst allowance for auth endpoints.
	AuthRateLimitBurst = 5

	// APIRateLimitPerSecond is the sustained request rate for API endpoints.
	APIRateLimitPerSecond = 20.0

	// APIRateLimitBurst is the burst allowance for API endpoints.
	APIRateLimitBurst = 40

	// RateLimitRetryAfterSeconds is the Retry-After hint sent with 429 responses.
	RateLimitRetryAfterSeconds = 60
)
