package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

// createMockDBAndTx creates a mock database with an open transaction for testing
func createMockDBAndTx(t *testing.T) (*sql.DB, *sql.Tx, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}

	mock.ExpectBegin()
	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to create transaction: %v", err)
	}

	cleanup := func() {
		tx.Rollback()
		db.Close()
	}

	return db, tx, mock, cleanup
}

func TestCreateUsersTable(t *testing.T) {
	_, tx, mock, cleanup := createMockDBAndTx(t)
	defer cleanup()

	migration := createUsersTable()

	assert.Equal(t, "create_users_table", migration.Name)
	assert.Equal(t, "Creates the users table", migration.Description)
	assert.Equal(t, "users", migration.TableName)
	assert.NotNil(t, migration.RunSQL)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ctx := context.Background()
	err := migration.RunSQL(ctx, tx)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePasswordResetsTable(t *testing.T) {
	_, tx, mock, cleanup := createMockDBAndTx(t)
	defer cleanup()

	migration := createPasswordResetsTable()

	assert.Equal(t, "create_password_resets_table", migration.Name)
	assert.Equal(t, "Creates the password_resets table", migration.Description)
	assert.Equal(t, "password_resets", migration.TableName)
	assert.NotNil(t, migration.RunSQL)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS password_resets").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ctx := context.Background()
	err := migration.RunSQL(ctx, tx)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployeesTable(t *testing.T) {
	_, tx, mock, cleanup := createMockDBAndTx(t)
	defer cleanup()

	migration := createEmployeesTable()

	assert.Equal(t, "create_employees_table", migration.Name)
	assert.Equal(t, "Creates the employees table", migration.Description)
	assert.Equal(t, "employees", migration.TableName)
	assert.NotNil(t, migration.RunSQL)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS employees").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ctx := context.Background()
	err := migration.RunSQL(ctx, tx)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
