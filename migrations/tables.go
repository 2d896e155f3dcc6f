package migrations

import (
	"context"
	"database/sql"
)

// createUsersTable creates the users table
func createUsersTable() Migration {
	return Migration{
		Name:        "create_users_table",
		Description: "Creates the users table",
		TableName:   "users",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS users (
					user_id BIGSERIAL PRIMARY KEY,
					username VARCHAR(50) NOT NULL,
					email VARCHAR(255) NOT NULL,
					password_hash VARCHAR(255) NOT NULL,
					salt VARCHAR(255) NOT NULL,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT idx_username UNIQUE (username),
					CONSTRAINT idx_email UNIQUE (email)
				)
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createPasswordResetsTable creates the password_resets table. Each user
// holds at most one pending reset challenge, so user_id is the primary key.
func createPasswordResetsTable() Migration {
	return Migration{
		Name:        "create_password_resets_table",
		Description: "Creates the password_resets table",
		TableName:   "password_resets",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS password_resets (
					user_id BIGINT PRIMARY KEY,
					otp_hash VARCHAR(255) NOT NULL,
					otp_salt VARCHAR(255) NOT NULL,
					expires_at TIMESTAMP NOT NULL,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT fk_user FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE
				);
				CREATE INDEX IF NOT EXISTS idx_password_resets_expires_at ON password_resets(expires_at);
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createEmployeesTable creates the employees table
func createEmployeesTable() Migration {
	return Migration{
		Name:        "create_employees_table",
		Description: "Creates the employees table",
		TableName:   "employees",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS employees (
					employee_id BIGSERIAL PRIMARY KEY,
					first_name VARCHAR(100) NOT NULL,
					last_name VARCHAR(100) NOT NULL,
					email VARCHAR(255) NOT NULL,
					phone_number VARCHAR(30),
					hire_date DATE NOT NULL,
					job_title VARCHAR(100),
					department VARCHAR(100),
					salary NUMERIC(12, 2),
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT idx_employee_email UNIQUE (email)
				);
				CREATE INDEX IF NOT EXISTS idx_employees_department ON employees(department);
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}
