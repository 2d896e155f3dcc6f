package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danuarts/staffdesk/internal/auth"
	"github.com/danuarts/staffdesk/internal/constants"
	"github.com/danuarts/staffdesk/internal/models"
	"github.com/danuarts/staffdesk/internal/utils"
)

// AuthHandler handles account lifecycle and password recovery routes
type AuthHandler struct {
	authService AuthServiceInterface
	jwtService  *auth.JWTService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService AuthServiceInterface, jwtService *auth.JWTService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	if jwtService == nil {
		panic("jwtService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
		jwtService:  jwtService,
	}
}

// Register handles user registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	// Decode and validate the request body
	var reg models.UserRegistration
	if err := utils.DecodeAndValidate(r, &reg); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Register the user
	user, err := h.authService.RegisterUser(r.Context(), &reg)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return the newly created user; no token is issued here
	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": constants.MsgUserRegistered,
		"user":    user,
	})
}

// Login handles user authentication
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.jwtService.Config == nil {
		utils.InternalServerError(w, errors.New("JWT configuration not initialized"))
		return
	}

	// Decode and validate the request body
	var creds models.UserCredentials
	if err := utils.DecodeAndValidate(r, &creds); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Authenticate the user
	user, sessionToken, err := h.authService.AuthenticateUser(r.Context(), &creds)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Set the session token as an HTTP-only cookie for browser clients;
	// API clients use the bearer token from the body instead
	sessionExpiry := h.jwtService.Config.SessionExpiry
	secure := r.TLS != nil || !strings.Contains(h.jwtService.Config.Issuer, "localhost")
	http.SetCookie(w, &http.Cookie{
		Name:     constants.AuthTokenCookie,
		Value:    sessionToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionExpiry.Seconds()),
		Expires:  time.Now().Add(sessionExpiry),
	})

	// Return the session token and user info
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"user":       user,
		"token":      sessionToken,
		"token_type": "Bearer",
		"expires_in": int(sessionExpiry.Seconds()),
	})
}

// ForgotPassword starts password recovery by emailing a one-time code
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	// Decode and validate the request body
	var req models.ForgotPasswordRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.authService.ForgotPassword(r.Context(), req.Email); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": constants.MsgOTPSent,
	})
}

// ConfirmOTP verifies an emailed code and returns a short-lived reset token
func (h *AuthHandler) ConfirmOTP(w http.ResponseWriter, r *http.Request) {
	// Decode and validate the request body
	var req models.ConfirmOTPRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	resetToken, err := h.authService.ConfirmOTP(r.Context(), req.Email, req.OTP)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message":     constants.MsgOTPConfirmed,
		"reset_token": resetToken,
	})
}

// SetNewPassword completes password recovery using a reset token
func (h *AuthHandler) SetNewPassword(w http.ResponseWriter, r *http.Request) {
	// Decode and validate the request body
	var req models.SetNewPasswordRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.authService.SetNewPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": constants.MsgPasswordReset,
	})
}

// ChangePassword updates the password of the authenticated user
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	// Get the user ID from the context
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	// Decode and validate the request body
	var req models.ChangePasswordRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.authService.ChangePassword(r.Context(), userID, req.OldPassword, req.ConfirmOldPassword, req.NewPassword); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": constants.MsgPasswordChanged,
	})
}

// DeleteAccount removes the authenticated user's account
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	// Get the user ID from the context
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	if err := h.authService.DeleteAccount(r.Context(), userID); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Clear the session cookie along with the account
	http.SetCookie(w, &http.Cookie{
		Name:     constants.AuthTokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": constants.MsgUserDeleted,
	})
}
