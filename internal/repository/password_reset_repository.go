package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danuarts/staffdesk/internal/database"
	"github.com/danuarts/staffdesk/internal/models"
	"github.com/danuarts/staffdesk/internal/utils"
)

// PasswordResetRepository defines methods for managing reset challenges.
// Each user has at most one active challenge; issuing a new one replaces
// the previous row.
type PasswordResetRepository interface {
	Upsert(ctx context.Context, reset *models.PasswordReset) error
	GetActiveByUserID(ctx context.Context, userID int64) (*models.PasswordReset, error)
	DeleteByUserID(ctx context.Context, userID int64) error
}

// PostgresPasswordResetRepository is a PostgreSQL implementation of PasswordResetRepository
type PostgresPasswordResetRepository struct {
	db *database.Pool
}

// NewPasswordResetRepository creates a new PasswordResetRepository
func NewPasswordResetRepository(db *database.Pool) PasswordResetRepository {
	return &PostgresPasswordResetRepository{
		db: db,
	}
}

// Upsert stores a reset challenge for a user, overwriting any prior one
func (r *PostgresPasswordResetRepository) Upsert(ctx context.Context, reset *models.PasswordReset) error {
	// Start query timer
	startTime := time.Now()

	if reset.CreatedAt.IsZero() {
		reset.CreatedAt = time.Now()
	}

	// Define the query with ON CONFLICT so a fresh challenge replaces the old one
	query := `
        INSERT INTO password_resets (user_id, otp_hash, otp_salt, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id) DO UPDATE
        SET otp_hash = EXCLUDED.otp_hash,
            otp_salt = EXCLUDED.otp_salt,
            expires_at = EXCLUDED.expires_at,
            created_at = EXCLUDED.created_at
    `

	// Execute the query
	_, err := r.db.ExecContext(
		ctx,
		query,
		reset.UserID,
		reset.OTPHash,
		reset.OTPSalt,
		reset.ExpiresAt,
		reset.CreatedAt,
	)

	// Log the query execution (without sensitive data)
	utils.LogDBQuery(
		query,
		[]interface{}{reset.UserID, "[REDACTED]", "[REDACTED]", reset.ExpiresAt, reset.CreatedAt},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert reset challenge: %w", err)
	}

	log.Info().
		Int64("user_id", reset.UserID).
		Time("expires_at", reset.ExpiresAt).
		Msg("Reset challenge stored")

	return nil
}

// GetActiveByUserID retrieves a user's unexpired reset challenge.
// Expired or absent challenges both report NotFound.
func (r *PostgresPasswordResetRepository) GetActiveByUserID(ctx context.Context, userID int64) (*models.PasswordReset, error) {
	// Start query timer
	startTime := time.Now()

	// Define the query; expiry must be strictly in the future
	query := `
        SELECT user_id, otp_hash, otp_salt, expires_at, created_at
        FROM password_resets
        WHERE user_id = $1 AND expires_at > NOW()
    `

	// Execute the query
	reset := &models.PasswordReset{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&reset.UserID,
		&reset.OTPHash,
		&reset.OTPSalt,
		&reset.ExpiresAt,
		&reset.CreatedAt,
	)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{userID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("PasswordReset", userID)
		}
		return nil, fmt.Errorf("failed to get reset challenge: %w", err)
	}

	return reset, nil
}

// DeleteByUserID removes a user's reset challenge. Deleting an absent
// challenge is not an error; a cleanup job or a competing request may
// already have consumed it.
func (r *PostgresPasswordResetRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	// Start query timer
	startTime := time.Now()

	query := "DELETE FROM password_resets WHERE user_id = $1"
	result, err := r.db.ExecContext(ctx, query, userID)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{userID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to delete reset challenge: %w", err)
	}

	if rowsAffected, raErr := result.RowsAffected(); raErr == nil && rowsAffected > 0 {
		log.Info().
			Int64("user_id", userID).
			Msg("Reset challenge deleted")
	}

	return nil
}
