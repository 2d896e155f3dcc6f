// Package handlers provides HTTP request handlers for the StaffDesk API.
package handlers

import (
	"context"

	"github.com/danuarts/staffdesk/internal/models"
)

// AuthServiceInterface defines the methods required from the authentication
// service. It is used by the auth handlers to interact with the account
// lifecycle business logic without being tightly coupled to the
// implementation.
type AuthServiceInterface interface {
	// RegisterUser registers a new user with the provided registration data.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - reg: User registration data including username, email, and password
	//
	// Returns:
	//   - The newly created user if successful
	//   - An error if registration fails (e.g., duplicate username/email)
	RegisterUser(ctx context.Context, reg *models.UserRegistration) (*models.User, error)

	// AuthenticateUser authenticates a user with the provided credentials.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - creds: User credentials (email and password)
	//
	// Returns:
	//   - The authenticated user
	//   - A session token for API calls
	//   - An error if authentication fails
	AuthenticateUser(ctx context.Context, creds *models.UserCredentials) (*models.User, string, error)

	// ForgotPassword issues a password reset challenge for the account with
	// the given email and sends the one-time code by email.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - email: The email address of the account to recover
	//
	// Returns:
	//   - An error if the email is not registered or delivery fails
	ForgotPassword(ctx context.Context, email string) error

	// ConfirmOTP verifies an emailed one-time code for the given account.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - email: The email address of the account being recovered
	//   - otp: The one-time code from the email
	//
	// Returns:
	//   - A short-lived reset token if the code is valid
	//   - An error if the code is wrong, expired, or was never issued
	ConfirmOTP(ctx context.Context, email, otp string) (string, error)

	// SetNewPassword completes password recovery using a reset token.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - resetToken: The reset token returned by ConfirmOTP
	//   - newPassword: The new password to store
	//
	// Returns:
	//   - An error if the token is invalid or the update fails
	SetNewPassword(ctx context.Context, resetToken, newPassword string) error

	// ChangePassword updates the password of an authenticated user.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - userID: The ID of the authenticated user
	//   - oldPassword: The current password
	//   - confirmOldPassword: A confirmation copy of the current password
	//   - newPassword: The new password to store
	//
	// Returns:
	//   - An error if the confirmation mismatches, the current password is
	//     wrong, or the update fails
	ChangePassword(ctx context.Context, userID int64, oldPassword, confirmOldPassword, newPassword string) error

	// DeleteAccount removes the account of an authenticated user along with
	// any pending reset challenge.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - userID: The ID of the authenticated user
	//
	// Returns:
	//   - An error if the account does not exist or deletion fails
	DeleteAccount(ctx context.Context, userID int64) error
}
