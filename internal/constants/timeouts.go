package constants

import "time"

// Server Timeouts
const (
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
)

// Database Timeouts
const (
	DBConnectionTimeout   = 30 * time.Second
	DBQueryTimeout        = 15 * time.Second
	DBHealthCheckTimeout  = 5 * time.Second
	DBConnMaxLifetime     = 1 * time.Hour
	DBConnMaxIdleTime     = 30 * time.Minute
	DBMaintenanceInterval = 1 * time.Hour
)

// Authentication Timeouts
const (
	// DefaultSessionTokenExpiry is how long a login session token stays valid.
	DefaultSessionTokenExpiry = 1 * time.Hour

	// DefaultResetTokenExpiry is how long an OTP-confirmation reset token stays valid.
	DefaultResetTokenExpiry = 15 * time.Minute

	// DefaultOTPExpiry is how long an issued reset challenge stays redeemable.
	DefaultOTPExpiry = 10 * time.Minute
)

// Operation Durations
const (
	CacheControlMaxAge = 300 // in seconds

	// RateLimitCleanupInterval is how often stale per-client limiters are evicted.
	RateLimitCleanupInterval = 10 * time.Minute
)
