// Package service implements the business logic for account lifecycle,
// password recovery, and the employee directory. Services orchestrate
// repositories, hashing, token issuance, and email delivery; handlers stay
// thin on top of them.
package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danuarts/staffdesk/internal/auth"
	"github.com/danuarts/staffdesk/internal/config"
	"github.com/danuarts/staffdesk/internal/constants"
	"github.com/danuarts/staffdesk/internal/models"
	"github.com/danuarts/staffdesk/internal/repository"
	"github.com/danuarts/staffdesk/internal/utils"
)

// AuthService handles account lifecycle and password recovery operations
type AuthService struct {
	userRepo    repository.UserRepository
	resetRepo   repository.PasswordResetRepository
	tokenSvc    auth.TokenService
	notifier    Notifier
	passwordCfg *auth.PasswordConfig
	otpExpiry   time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	resetRepo repository.PasswordResetRepository,
	tokenSvc auth.TokenService,
	notifier Notifier,
	passwordCfg *auth.PasswordConfig,
	resetCfg *config.ResetSettings,
) *AuthService {
	otpExpiry := constants.DefaultOTPExpiry
	if resetCfg != nil && resetCfg.OTPExpiry > 0 {
		otpExpiry = resetCfg.OTPExpiry
	}

	return &AuthService{
		userRepo:    userRepo,
		resetRepo:   resetRepo,
		tokenSvc:    tokenSvc,
		notifier:    notifier,
		passwordCfg: passwordCfg,
		otpExpiry:   otpExpiry,
	}
}

// RegisterUser creates a new user account. No token is issued at
// registration; the user logs in separately.
func (s *AuthService) RegisterUser(ctx context.Context, reg *models.UserRegistration) (*models.User, error) {
	// Single existence check across both unique fields
	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, reg.Username, reg.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return nil, utils.NewDuplicateError("User", "username or email", reg.Username)
	}

	// Hash the password
	passwordHash, salt, err := auth.HashPassword(reg.Password, s.passwordCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Create the user
	user := models.NewUser(reg.Username, reg.Email)
	user.PasswordHash = passwordHash
	user.Salt = salt

	// Save the user to the database
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	utils.LogAuth(constants.LogEventRegister, fmt.Sprintf("%d", user.ID), user.Username, true, "")

	return user.Sanitize(), nil
}

// AuthenticateUser verifies credentials and issues a session token.
// An unknown email and a wrong password produce the same error so the
// response cannot be used to enumerate accounts.
func (s *AuthService) AuthenticateUser(ctx context.Context, creds *models.UserCredentials) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, creds.Email)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogAuth(constants.LogEventLogin, "0", utils.MaskEmail(creds.Email), false, "user not found")
			return nil, "", utils.NewInvalidCredentialsError()
		}
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}

	// Verify the password
	match, err := auth.VerifyPassword(creds.Password, user.PasswordHash, user.Salt, s.passwordCfg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to verify password: %w", err)
	}

	if !match {
		utils.LogAuth(constants.LogEventLogin, fmt.Sprintf("%d", user.ID), user.Username, false, "invalid password")
		return nil, "", utils.NewInvalidCredentialsError()
	}

	// Issue a session token
	sessionToken, _, err := s.tokenSvc.GenerateSessionToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	utils.LogAuth(constants.LogEventLogin, fmt.Sprintf("%d", user.ID), user.Username, true, "")

	return user.Sanitize(), sessionToken, nil
}

// ForgotPassword issues a reset challenge for the account and emails the
// one-time code. Any prior challenge for the user is overwritten.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if utils.IsNotFoundError(err) {
			return utils.New(utils.ErrNotFound, http.StatusBadRequest, constants.MsgEmailNotRegistered)
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	// Generate the one-time code
	otp, err := auth.GenerateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate one-time code: %w", err)
	}

	// Hash the code exactly like a password; the plaintext only travels by email
	otpHash, otpSalt, err := auth.HashPassword(otp, s.passwordCfg)
	if err != nil {
		return fmt.Errorf("failed to hash one-time code: %w", err)
	}

	reset := &models.PasswordReset{
		UserID:    user.ID,
		OTPHash:   otpHash,
		OTPSalt:   otpSalt,
		ExpiresAt: time.Now().Add(s.otpExpiry),
	}

	if err := s.resetRepo.Upsert(ctx, reset); err != nil {
		return err
	}

	// Deliver the plaintext code out of band
	if err := s.notifier.SendOTPEmail(user.Email, user.Username, otp); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	utils.LogAuth(constants.LogEventPasswordReset, fmt.Sprintf("%d", user.ID), user.Username, true, "challenge issued")

	return nil
}

// ConfirmOTP verifies the emailed code for the given account and returns a
// short-lived reset token. Unknown email, missing or expired challenge, and
// a wrong code all collapse into the same error. The challenge row is not
// consumed here; it stays redeemable until the password is actually reset
// or the challenge expires.
func (s *AuthService) ConfirmOTP(ctx context.Context, email, otp string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if utils.IsNotFoundError(err) {
			return "", utils.NewInvalidOTPError()
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	reset, err := s.resetRepo.GetActiveByUserID(ctx, user.ID)
	if err != nil {
		if utils.IsNotFoundError(err) {
			return "", utils.NewInvalidOTPError()
		}
		return "", fmt.Errorf("failed to get reset challenge: %w", err)
	}

	match, err := auth.VerifyPassword(otp, reset.OTPHash, reset.OTPSalt, s.passwordCfg)
	if err != nil {
		return "", fmt.Errorf("failed to verify one-time code: %w", err)
	}

	if !match {
		utils.LogAuth(constants.LogEventPasswordReset, fmt.Sprintf("%d", user.ID), user.Username, false, "wrong code")
		return "", utils.NewInvalidOTPError()
	}

	resetToken, _, err := s.tokenSvc.GenerateResetToken(user.ID, user.Username, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	utils.LogAuth(constants.LogEventPasswordReset, fmt.Sprintf("%d", user.ID), user.Username, true, "code confirmed")

	return resetToken, nil
}

// SetNewPassword verifies the reset token, persists the new password, and
// consumes the user's reset challenge.
func (s *AuthService) SetNewPassword(ctx context.Context, resetToken, newPassword string) error {
	claims, err := s.tokenSvc.ValidateResetToken(resetToken)
	if err != nil {
		// Bad signature and expiry collapse into one message on purpose
		return utils.NewInvalidResetTokenError()
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return err
	}

	passwordHash, salt, err := auth.HashPassword(newPassword, s.passwordCfg)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.ChangePassword(ctx, user.ID, passwordHash, salt); err != nil {
		return err
	}

	// Consume the challenge; the emailed code must not be redeemable again
	if err := s.resetRepo.DeleteByUserID(ctx, user.ID); err != nil {
		log.Warn().
			Err(err).
			Int64("user_id", user.ID).
			Msg("Failed to delete reset challenge after password reset")
	}

	utils.LogAuth(constants.LogEventPasswordReset, fmt.Sprintf("%d", user.ID), user.Username, true, "password reset")

	return nil
}

// ChangePassword updates the password of an authenticated user. The
// confirmation copy of the old password is compared before the stored hash
// is consulted; it exists to catch typos, not for security.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, oldPassword, confirmOldPassword, newPassword string) error {
	if oldPassword != confirmOldPassword {
		return utils.NewValidationError("confirm_old_password", constants.MsgOldPasswordsDoNotMatch)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	match, err := auth.VerifyPassword(oldPassword, user.PasswordHash, user.Salt, s.passwordCfg)
	if err != nil {
		return fmt.Errorf("failed to verify password: %w", err)
	}

	if !match {
		utils.LogAuth(constants.LogEventPasswordChange, fmt.Sprintf("%d", user.ID), user.Username, false, "old password incorrect")
		return utils.NewBadRequestError(constants.MsgOldPasswordIncorrect)
	}

	passwordHash, salt, err := auth.HashPassword(newPassword, s.passwordCfg)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.ChangePassword(ctx, user.ID, passwordHash, salt); err != nil {
		return err
	}

	// Existing session tokens stay valid; there is no revocation mechanism
	utils.LogAuth(constants.LogEventPasswordChange, fmt.Sprintf("%d", user.ID), user.Username, true, "")

	return nil
}

// DeleteAccount removes an authenticated user's account. The reset
// challenge row goes in the same transaction as the user row.
func (s *AuthService) DeleteAccount(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return err
	}

	utils.LogAuth(constants.LogEventAccountDeleted, fmt.Sprintf("%d", user.ID), user.Username, true, "")

	return nil
}
