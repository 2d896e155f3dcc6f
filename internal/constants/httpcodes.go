// Package constants provides shared constant values used throughout the application.
//
// The httpcodes.go file defines HTTP-related constants such as status codes,
// response codes, headers, and content types. These constants ensure consistent
// HTTP communication patterns across the application and provide meaningful
// standardized responses to API clients. The security header values implement
// recommended web security best practices.
package constants

// HTTP Status Codes define the standard HTTP response status codes used in the application.
const (
	// StatusOK indicates that the request has succeeded.
	StatusOK = 200

	// StatusCreated indicates that the request has succeeded and a new resource has been created.
	StatusCreated = 201

	// StatusNoContent indicates that the request has succeeded but there is no content to send.
	StatusNoContent = 204

	// StatusBadRequest indicates that the server cannot process the request due to client error.
	StatusBadRequest = 400

	// StatusUnauthorized indicates that the request lacks valid authentication credentials.
	StatusUnauthorized = 401

	// StatusForbidden indicates that the server understood the request but refuses to authorize it.
	StatusForbidden = 403

	// StatusNotFound indicates that the server cannot find the requested resource.
	StatusNotFound = 404

	// StatusMethodNotAllowed indicates that the request method is not supported for the requested resource.
	StatusMethodNotAllowed = 405

	// StatusConflict indicates that the request conflicts with the current state of the server.
	StatusConflict = 409

	// StatusTooManyRequests indicates that the client has sent too many requests in a given time.
	StatusTooManyRequests = 429

	// StatusInternalServerError indicates that the server encountered an unexpected condition.
	StatusInternalServerError = 500
)

// HTTP Response Code Types define application-specific response codes.
// These codes provide more detailed information about the response beyond HTTP status codes.
const (
	// ResponseSuccess indicates that the request was processed successfully.
	ResponseSuccess = true

	// ResponseFailure indicates that the request processing failed.
	ResponseFailure = false

	// CodeBadRequest indicates a malformed or invalid request.
	CodeBadRequest = "bad_request"

	// CodeUnauthorized indicates missing or invalid authentication.
	CodeUnauthorized = "unauthorized"

	// CodeForbidden indicates the user lacks permission for the requested action.
	CodeForbidden = "forbidden"

	// CodeNotFound indicates the requested resource does not exist.
	CodeNotFound = "not_found"

	// CodeMethodNotAllowed indicates the HTTP method is not allowed for the endpoint.
	CodeMethodNotAllowed = "method_not_allowed"

	// CodeConflict indicates a resource conflict, such as a duplicate entry.
	CodeConflict = "conflict"

	// CodeInternalError indicates an unexpected server error.
	CodeInternalError = "internal_error"

	// CodeValidationError indicates request validation failed.
	CodeValidationError = "validation_error"

	// CodeInvalidCredentials indicates provided authentication credentials are incorrect.
	CodeInvalidCredentials = "invalid_credentials"

	// CodeInvalidOTP indicates a one-time passcode is wrong or expired.
	CodeInvalidOTP = "invalid_otp"

	// CodeTokenExpired indicates an authentication token has expired.
	CodeTokenExpired = "token_expired"

	// CodeTokenInvalid indicates an authentication token is malformed or invalid.
	CodeTokenInvalid = "token_invalid"

	// CodeDuplicateResource indicates an attempt to create a resource that already exists.
	CodeDuplicateResource = "duplicate_resource"

	// CodeAuthenticationFailed indicates a general authentication failure.
	CodeAuthenticationFailed = "authentication_failed"

	// CodeRateLimited indicates the client exceeded the allowed request rate.
	CodeRateLimited = "rate_limited"
)

// HTTP Header Names define common HTTP headers used in requests and responses.
const (
	// HeaderContentType specifies the media type of the resource.
	HeaderContentType = "Content-Type"

	// HeaderContentLength specifies the size of the entity-body in bytes.
	HeaderContentLength = "Content-Length"

	// HeaderCacheControl directs caching behavior for the request/response chain.
	HeaderCacheControl = "Cache-Control"

	// HeaderPragma provides implementation-specific caching directives.
	HeaderPragma = "Pragma"

	// HeaderExpires specifies the date/time after which the response is considered stale.
	HeaderExpires = "Expires"

	// HeaderAuthorization provides authentication credentials for HTTP authentication.
	HeaderAuthorization = "Authorization"

	// HeaderXRequestID contains a unique identifier for the HTTP request.
	HeaderXRequestID = "X-Request-ID"

	// HeaderXCSRFToken contains the Cross-Site Request Forgery protection token.
	HeaderXCSRFToken = "X-CSRF-Token"

	// HeaderRetryAfter indicates how long the client should wait before retrying.
	HeaderRetryAfter = "Retry-After"

	// HeaderXContentTypeOptions prevents MIME type sniffing.
	HeaderXContentTypeOptions = "X-Content-Type-Options"

	// HeaderXFrameOptions controls whether the page can be embedded in frames.
	HeaderXFrameOptions = "X-Frame-Options"

	// HeaderXXSSProtection enables cross-site scripting filters in browsers.
	HeaderXXSSProtection = "X-XSS-Protection"

	// HeaderReferrerPolicy controls how much referrer information is sent.
	HeaderReferrerPolicy = "Referrer-Policy"

	// HeaderContentSecurityPolicy restricts resource loading origins.
	HeaderContentSecurityPolicy = "Content-Security-Policy"

	// HeaderAccessControlAllowOrigin lists origins allowed by CORS.
	HeaderAccessControlAllowOrigin = "Access-Control-Allow-Origin"

	// HeaderAccessControlAllowMethods lists HTTP methods allowed by CORS.
	HeaderAccessControlAllowMethods = "Access-Control-Allow-Methods"

	// HeaderAccessControlAllowHeaders lists request headers allowed by CORS.
	HeaderAccessControlAllowHeaders = "Access-Control-Allow-Headers"

	// HeaderAccessControlAllowCredentials signals whether credentials may be sent.
	HeaderAccessControlAllowCredentials = "Access-Control-Allow-Credentials"

	// HeaderAccessControlMaxAge caches preflight responses for the given seconds.
	HeaderAccessControlMaxAge = "Access-Control-Max-Age"
)

// HTTP Content Types and security header values.
const (
	// ContentTypeJSON is the media type for JSON payloads.
	ContentTypeJSON = "application/json"

	// ContentTypeOptionsNoSniff disables MIME sniffing.
	ContentTypeOptionsNoSniff = "nosniff"

	// FrameOptionsDeny forbids rendering the page inside a frame.
	FrameOptionsDeny = "DENY"

	// XSSProtectionModeBlock enables the XSS filter in blocking mode.
	XSSProtectionModeBlock = "1; mode=block"

	// ReferrerPolicyStrictOrigin limits referrer information to the origin.
	ReferrerPolicyStrictOrigin = "strict-origin-when-cross-origin"

	// CSPDefaultSrc restricts all resource loading to the same origin.
	CSPDefaultSrc = "default-src 'self'"

	// CacheControlNoStore disables caching of the response.
	CacheControlNoStore = "no-store"

	// PragmaNoCache is the legacy no-cache directive.
	PragmaNoCache = "no-cache"

	// ExpiresZero marks the response as immediately stale.
	ExpiresZero = "0"
)
