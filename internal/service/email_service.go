package service

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/danuarts/staffdesk/internal/config"
)

// Notifier delivers out-of-band messages to users. Delivery may fail; the
// caller decides whether a failed delivery fails the operation.
type Notifier interface {
	SendOTPEmail(toEmail, toName, otp string) error
}

// EmailService sends transactional email through SendGrid.
type EmailService struct {
	apiKey      string
	fromAddress string
	fromName    string
}

// NewEmailService creates a new EmailService from mail settings.
func NewEmailService(cfg *config.MailSettings) (*EmailService, error) {
	if cfg.SendGridAPIKey == "" {
		return nil, fmt.Errorf("sendgrid API key not configured")
	}
	return &EmailService{
		apiKey:      cfg.SendGridAPIKey,
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
	}, nil
}

// SendOTPEmail delivers a password reset one-time code to the user.
// The code is only ever present in this email; it is stored hashed.
func (s *EmailService) SendOTPEmail(toEmail, toName, otp string) error {
	from := mail.NewEmail(s.fromName, s.fromAddress)
	to := mail.NewEmail(toName, toEmail)
	subject := "Your password reset code"
	plainTextContent := fmt.Sprintf("Your password reset code is %s. It expires in 10 minutes. If you did not request a reset, you can ignore this email.", otp)
	htmlContent := fmt.Sprintf("<p>Your password reset code is <strong>%s</strong>.</p><p>It expires in 10 minutes. If you did not request a reset, you can ignore this email.</p>", otp)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Error().Err(err).Msg("Failed to send password reset email")
		return err
	}

	log.Info().Int("status_code", response.StatusCode).Msg("Password reset email sent")
	return nil
}

// Ensure EmailService implements Notifier.
var _ Notifier = (*EmailService)(nil)
