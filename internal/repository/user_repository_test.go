package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danuarts/staffdesk/internal/database"
	"github.com/danuarts/staffdesk/internal/models"
	"github.com/danuarts/staffdesk/internal/repository"
	"github.com/danuarts/staffdesk/internal/utils"
)

// setupUserRepositoryTest creates a test repository with a mock database
func setupUserRepositoryTest(t *testing.T) (*repository.PostgresUserRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock database")

	dbPool := &database.Pool{DB: db}
	repo := repository.NewUserRepository(dbPool).(*repository.PostgresUserRepository)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestUserRepository_Create(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	user := &models.User{
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
		Salt:         "testsalt",
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Email, user.PasswordHash, user.Salt, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

	err := repo.Create(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	user := &models.User{
		Username:     "existinguser",
		Email:        "new@example.com",
		PasswordHash: "hashedpassword",
		Salt:         "testsalt",
	}

	pqErr := &pq.Error{
		Code:       "23505",
		Constraint: "idx_username",
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Email, user.PasswordHash, user.Salt, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pqErr)

	err := repo.Create(context.Background(), user)

	assert.Error(t, err)
	assert.True(t, utils.IsDuplicateError(err), "Expected a duplicate error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	user := &models.User{
		Username:     "newuser",
		Email:        "existing@example.com",
		PasswordHash: "hashedpassword",
		Salt:         "testsalt",
	}

	pqErr := &pq.Error{
		Code:       "23505",
		Constraint: "idx_email",
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Email, user.PasswordHash, user.Salt, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pqErr)

	err := repo.Create(context.Background(), user)

	assert.Error(t, err)
	assert.True(t, utils.IsDuplicateError(err), "Expected a duplicate error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DatabaseError(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	user := &models.User{
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
		Salt:         "testsalt",
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Email, user.PasswordHash, user.Salt, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("connection refused"))

	err := repo.Create(context.Background(), user)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create user")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"user_id", "username", "email", "password_hash", "salt", "created_at", "updated_at"}).
		AddRow(1, "testuser", "test@example.com", "hashedpassword", "testsalt", now, now)

	mock.ExpectQuery("SELECT user_id, username, email, password_hash, salt, created_at, updated_at").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	user, err := repo.GetByID(context.Background(), 1)

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, "test@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT user_id, username, email, password_hash, salt, created_at, updated_at").
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByID(context.Background(), 999)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, utils.IsNotFoundError(err), "Expected a not found error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"user_id", "username", "email", "password_hash", "salt", "created_at", "updated_at"}).
		AddRow(1, "testuser", "test@example.com", "hashedpassword", "testsalt", now, now)

	mock.ExpectQuery("SELECT user_id, username, email, password_hash, salt, created_at, updated_at").
		WithArgs("test@example.com").
		WillReturnRows(rows)

	user, err := repo.GetByEmail(context.Background(), "test@example.com")

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "test@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT user_id, username, email, password_hash, salt, created_at, updated_at").
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByEmail(context.Background(), "missing@example.com")

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, utils.IsNotFoundError(err), "Expected a not found error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ExistsByUsernameOrEmail(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("testuser", "test@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByUsernameOrEmail(context.Background(), "testuser", "test@example.com")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ExistsByUsernameOrEmail_NotExists(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("newuser", "new@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByUsernameOrEmail(context.Background(), "newuser", "new@example.com")

	assert.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ChangePassword(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE users").
		WithArgs("newhash", "newsalt", sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ChangePassword(context.Background(), 1, "newhash", "newsalt")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ChangePassword_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE users").
		WithArgs("newhash", "newsalt", sqlmock.AnyArg(), int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ChangePassword(context.Background(), 999, "newhash", "newsalt")

	assert.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err), "Expected a not found error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM password_resets").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 1)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserRepositoryTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM password_resets").
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 999)

	assert.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err), "Expected a not found error")
	assert.NoError(t, mock.ExpectationsWereMet())
}
