package models

import (
	"time"
)

// PasswordReset represents the single active reset challenge for a user.
// The one-time code is stored only as an argon2id hash alongside its salt;
// the plaintext code exists solely in the email sent to the user.
type PasswordReset struct {
	UserID    int64     `json:"user_id" db:"user_id"`
	OTPHash   string    `json:"-" db:"otp_hash"`
	OTPSalt   string    `json:"-" db:"otp_salt"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the database table name for the PasswordReset model.
func (pr *PasswordReset) TableName() string {
	return "password_resets"
}

// IsExpired reports whether the challenge can no longer be redeemed.
func (pr *PasswordReset) IsExpired() bool {
	return !pr.ExpiresAt.After(time.Now())
}

// ForgotPasswordRequest defines the structure for requesting a password reset.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ConfirmOTPRequest defines the structure for redeeming an emailed one-time code.
type ConfirmOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

// SetNewPasswordRequest defines the structure for resetting a password with a reset token.
type SetNewPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
