// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default values and limits used throughout the application.
// These constants provide sensible defaults for configuration settings, establish
// boundaries for resource usage, and define security parameters. Changes to these
// values may significantly impact application behavior, performance, and security.
package constants

// Default Pagination Values define the parameters used for paginated responses.
const (
	// DefaultPage is the default page number for paginated results when not specified.
	DefaultPage = 1

	// DefaultPageSize is the default number of items per page when not specified.
	DefaultPageSize = 20

	// MaxPageSize is the maximum allowable page size to prevent excessive resource usage.
	MaxPageSize = 100

	// MinPageSize is the minimum allowable page size.
	MinPageSize = 1
)

// Default Configuration Values define fallback settings when not specified in configuration.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultDBMaxConnections is the default maximum number of database connections.
	DefaultDBMaxConnections = 20

	// DefaultDBMinConnections is the default minimum number of database connections.
	DefaultDBMinConnections = 5

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"
)

// Environment Types define the recognized application running environments.
const (
	// EnvDevelopment identifies a development environment with debugging features enabled.
	EnvDevelopment = "development"

	// EnvTesting identifies a testing environment for automated tests.
	EnvTesting = "testing"

	// EnvProduction identifies a production environment with optimized settings.
	EnvProduction = "production"
)

// Request Size Limits help prevent denial of service via excessive resource consumption.
const (
	// MaxRequestBodySize is the maximum size in bytes for HTTP request bodies.
	MaxRequestBodySize = 1048576 // 1MB in bytes
)

// Default Password Hash Settings define the parameters for Argon2id hashing.
// The same parameters are used for both account passwords and reset OTP codes.
const (
	// DefaultPasswordHashMemory is the memory cost parameter for Argon2id hashing.
	DefaultPasswordHashMemory = 64 * 1024

	// DefaultPasswordHashIterations is the number of iterations for Argon2id hashing.
	DefaultPasswordHashIterations = 3

	// DefaultPasswordHashParallelism is the parallelism parameter for Argon2id hashing.
	DefaultPasswordHashParallelism = 2

	// DefaultPasswordHashSaltLength is the length in bytes of the random salt.
	DefaultPasswordHashSaltLength = 16

	// DefaultPasswordHashKeyLength is the length in bytes of the generated hash.
	DefaultPasswordHashKeyLength = 32

	// DevPasswordHashMemory is a reduced memory setting for development environments.
	DevPasswordHashMemory = 16 * 1024

	// DevPasswordHashIterations is a reduced iteration count for development environments.
	DevPasswordHashIterations = 1
)

// Token Constants define values related to authentication token handling.
const (
	// DefaultJWTIssuer is the issuer claim value for JWT tokens.
	DefaultJWTIssuer = "staffdesk-api"

	// BearerTokenPrefix is the prefix for Authorization header bearer tokens.
	BearerTokenPrefix = "Bearer "
)

// OTP Constants define parameters for one-time passcode generation.
// The code range matches the original deployment: six digits drawn from
// [100000, 999999], which excludes leading-zero codes. Kept for
// compatibility with clients that validate the leading digit.
const (
	// OTPMin is the smallest issuable one-time passcode.
	OTPMin = 100000

	// OTPMax is the largest issuable one-time passcode.
	OTPMax = 999999

	// OTPDigits is the number of digits in a one-time passcode.
	OTPDigits = 6
)
