package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danuarts/staffdesk/internal/database"
	"github.com/danuarts/staffdesk/internal/models"
	"github.com/danuarts/staffdesk/internal/repository"
	"github.com/danuarts/staffdesk/internal/utils"
)

// setupPasswordResetRepositoryTest creates a test repository with a mock database
func setupPasswordResetRepositoryTest(t *testing.T) (*repository.PostgresPasswordResetRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock database")

	dbPool := &database.Pool{DB: db}
	repo := repository.NewPasswordResetRepository(dbPool).(*repository.PostgresPasswordResetRepository)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestPasswordResetRepository_Upsert(t *testing.T) {
	repo, mock, cleanup := setupPasswordResetRepositoryTest(t)
	defer cleanup()

	reset := &models.PasswordReset{
		UserID:    1,
		OTPHash:   "hashedotp",
		OTPSalt:   "otpsalt",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	mock.ExpectExec("INSERT INTO password_resets").
		WithArgs(reset.UserID, reset.OTPHash, reset.OTPSalt, reset.ExpiresAt, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), reset)

	assert.NoError(t, err)
	assert.False(t, reset.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetRepository_Upsert_DatabaseError(t *testing.T) {
	repo, mock, cleanup := setupPasswordResetRepositoryTest(t)
	defer cleanup()

	reset := &models.PasswordReset{
		UserID:    1,
		OTPHash:   "hashedotp",
		OTPSalt:   "otpsalt",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	mock.ExpectExec("INSERT INTO password_resets").
		WithArgs(reset.UserID, reset.OTPHash, reset.OTPSalt, reset.ExpiresAt, sqlmock.AnyArg()).
		WillReturnError(errors.New("connection refused"))

	err := repo.Upsert(context.Background(), reset)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert reset challenge")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetRepository_GetActiveByUserID(t *testing.T) {
	repo, mock, cleanup := setupPasswordResetRepositoryTest(t)
	defer cleanup()

	now := time.Now()
	expiresAt := now.Add(10 * time.Minute)
	rows := sqlmock.NewRows([]string{"user_id", "otp_hash", "otp_salt", "expires_at", "created_at"}).
		AddRow(1, "hashedotp", "otpsalt", expiresAt, now)

	mock.ExpectQuery("SELECT user_id, otp_hash, otp_salt, expires_at, created_at").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	reset, err := repo.GetActiveByUserID(context.Background(), 1)

	assert.NoError(t, err)
	require.NotNil(t, reset)
	assert.Equal(t, int64(1), reset.UserID)
	assert.Equal(t, "hashedotp", reset.OTPHash)
	assert.False(t, reset.IsExpired())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetRepository_GetActiveByUserID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupPasswordResetRepositoryTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT user_id, otp_hash, otp_salt, expires_at, created_at").
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	reset, err := repo.GetActiveByUserID(context.Background(), 999)

	assert.Error(t, err)
	assert.Nil(t, reset)
	assert.True(t, utils.IsNotFoundError(err), "Expected a not found error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetRepository_DeleteByUserID(t *testing.T) {
	repo, mock, cleanup := setupPasswordResetRepositoryTest(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM password_resets").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteByUserID(context.Background(), 1)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetRepository_DeleteByUserID_NoRows(t *testing.T) {
	repo, mock, cleanup := setupPasswordResetRepositoryTest(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM password_resets").
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Deleting an absent challenge is tolerated
	err := repo.DeleteByUserID(context.Background(), 999)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
