// Package constants provides shared constant values used throughout the application.
//
// The routes_const.go file defines the URL paths for every API endpoint. Keeping
// them in one place makes the route table in internal/server easy to audit.
package constants

// Auth Routes define endpoints for account lifecycle operations.
const (
	// RouteAuth is the base path for authentication endpoints.
	RouteAuth = "/auth"

	// RouteRegister creates a new user account.
	RouteRegister = "/register"

	// RouteLogin exchanges credentials for a session token.
	RouteLogin = "/login"

	// RouteForgotPassword issues a reset OTP to a registered email.
	RouteForgotPassword = "/forgot-password"

	// RouteConfirmOTP exchanges a valid OTP for a reset token.
	RouteConfirmOTP = "/confirm-otp"

	// RouteSetNewPassword consumes a reset token and stores a new password.
	RouteSetNewPassword = "/set-new-password"

	// RouteChangePassword updates the password of an authenticated user.
	RouteChangePassword = "/change-password"

	// RouteDeleteAccount removes the authenticated user's account.
	RouteDeleteAccount = "/delete-account"
)

// Employee Routes define endpoints for employee record management.
const (
	// RouteEmployees is the base path for employee CRUD endpoints.
	RouteEmployees = "/employees"
)
