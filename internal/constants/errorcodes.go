// Package constants provides shared constant values used throughout the application.
//
// The errorcodes.go file defines constants related to error handling, categorization,
// and messaging. These constants ensure consistent error reporting and handling
// throughout the application. User-facing error messages are carefully crafted to
// be informative without revealing sensitive implementation details that could aid
// in potential attacks.
package constants

// Error Types define the categories of errors that can occur in the application.
const (
	// ErrorNotFound indicates that a requested resource could not be found.
	ErrorNotFound = "resource not found"

	// ErrorUnauthorized indicates that authentication is required but was not provided.
	ErrorUnauthorized = "unauthorized access"

	// ErrorForbidden indicates that the requester lacks sufficient permissions.
	ErrorForbidden = "forbidden access"

	// ErrorBadRequest indicates that the request was malformed or invalid.
	ErrorBadRequest = "invalid request"

	// ErrorInternalServer indicates an unexpected internal error.
	ErrorInternalServer = "internal server error"

	// ErrorValidation indicates that input validation failed.
	ErrorValidation = "validation error"

	// ErrorDuplicate indicates an attempt to create a resource that already exists.
	ErrorDuplicate = "duplicate resource"

	// ErrorInvalidCredentials indicates that authentication credentials are incorrect.
	ErrorInvalidCredentials = "invalid credentials"

	// ErrorExpiredToken indicates that an authentication token has expired.
	ErrorExpiredToken = "expired token"

	// ErrorInvalidToken indicates that an authentication token is malformed or invalid.
	ErrorInvalidToken = "invalid token"
)

// User-Facing Error Messages define standardized messages that can be safely presented to users.
// Security-sensitive messages deliberately collapse several root causes into one
// phrasing so responses do not leak which part of a credential check failed.
const (
	// MsgAuthRequired indicates that the user must authenticate to access the resource.
	MsgAuthRequired = "Authentication required"

	// MsgInvalidCredentials covers both unknown email and wrong password.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgEmailNotRegistered indicates the email has no associated account.
	MsgEmailNotRegistered = "Email is not registered"

	// MsgInvalidOrExpiredOTP covers wrong, unknown, and expired passcodes.
	MsgInvalidOrExpiredOTP = "Invalid or expired OTP code"

	// MsgInvalidOrExpiredResetToken covers bad signatures and expired reset tokens.
	MsgInvalidOrExpiredResetToken = "Invalid or expired reset token"

	// MsgOldPasswordsDoNotMatch indicates the old password confirmation differs.
	MsgOldPasswordsDoNotMatch = "Old passwords do not match"

	// MsgOldPasswordIncorrect indicates the supplied old password failed verification.
	MsgOldPasswordIncorrect = "Old password is incorrect"

	// MsgAccessDenied indicates that the user lacks permission for the requested action.
	MsgAccessDenied = "You don't have permission to access this resource"

	// MsgInternalServerError provides a generic server error message.
	MsgInternalServerError = "An internal server error occurred"

	// MsgTokenExpired indicates that the user's authentication token has expired.
	MsgTokenExpired = "Authentication token has expired"

	// MsgInvalidToken indicates that the provided token is invalid.
	MsgInvalidToken = "Invalid token"

	// MsgRequestBodyTooLarge indicates that the request payload exceeds size limits.
	MsgRequestBodyTooLarge = "Request body too large"

	// MsgEmptyRequestBody indicates that a request body was expected but not provided.
	MsgEmptyRequestBody = "Request body must not be empty"

	// MsgMalformedJSON indicates that the request body contains invalid JSON.
	MsgMalformedJSON = "Request body contains malformed JSON"

	// MsgResourceNotFound indicates that the requested resource does not exist.
	MsgResourceNotFound = "The requested resource could not be found"

	// MsgResourceAlreadyExists indicates a duplicate resource conflict.
	MsgResourceAlreadyExists = "A resource with the same unique identifier already exists"

	// MsgMethodNotAllowed indicates that the HTTP method is not supported for the endpoint.
	MsgMethodNotAllowed = "This method is not allowed for this resource"

	// MsgUserRegistered confirms successful account creation.
	MsgUserRegistered = "User successfully registered"

	// MsgOTPSent confirms an OTP email was dispatched.
	MsgOTPSent = "OTP code has been sent to your email"

	// MsgOTPConfirmed confirms a passcode was accepted.
	MsgOTPConfirmed = "OTP confirmed. Use the reset token to set a new password"

	// MsgPasswordReset confirms a successful password reset.
	MsgPasswordReset = "Password has been successfully reset"

	// MsgPasswordChanged confirms successful password change.
	MsgPasswordChanged = "Password has been successfully changed"

	// MsgUserDeleted confirms successful account deletion.
	MsgUserDeleted = "Account has been successfully deleted"

	// MsgEmployeeDeleted confirms successful employee record deletion.
	MsgEmployeeDeleted = "Employee deleted successfully"

	// MsgTooManyRequests indicates the client exceeded the request rate.
	MsgTooManyRequests = "Too many requests, please try again later"
)

// Database Error Types define constants for recognizing database-specific errors.
const (
	// DBErrorDuplicateKey is the PostgreSQL error message for unique constraint violations.
	DBErrorDuplicateKey = "duplicate key value violates unique constraint"

	// PGErrorDuplicateConstraint is the PostgreSQL error code for unique constraint violations.
	PGErrorDuplicateConstraint = "23505"

	// PGErrorForeignKeyConstraint is the PostgreSQL error code for foreign key violations.
	PGErrorForeignKeyConstraint = "23503"

	// PGErrorNotNullConstraint is the PostgreSQL error code for not-null constraint violations.
	PGErrorNotNullConstraint = "23502"
)

// Logger Constants define values used for structured logging.
const (
	// LogCategoryAuth is the log category for authentication-related events.
	LogCategoryAuth = "auth"

	// LogEventLogin is the log event type for user login.
	LogEventLogin = "login"

	// LogEventRegister is the log event type for user registration.
	LogEventRegister = "register"

	// LogEventPasswordReset is the log event type for password reset operations.
	LogEventPasswordReset = "password_reset"

	// LogEventPasswordChange is the log event type for authenticated password changes.
	LogEventPasswordChange = "password_change"

	// LogEventAccountDeleted is the log event type for account deletion.
	LogEventAccountDeleted = "account_deleted"

	// LogRedactedValue is used to replace sensitive values in logs.
	LogRedactedValue = "[REDACTED]"
)
