// Package constants provides shared constant values used throughout the application.
//
// The database_const.go file defines constants related to database structures,
// including table names, column names, and schema references. These constants
// ensure consistent and correct database access patterns throughout the application,
// reducing the risk of SQL errors and simplifying database schema changes.
package constants

// Table Names define the names of database tables used in the application.
const (
	// TableUsers is the name of the table storing user account information.
	TableUsers = "users"

	// TablePasswordResets is the name of the table storing in-flight reset challenges.
	TablePasswordResets = "password_resets"

	// TableEmployees is the name of the table storing employee records.
	TableEmployees = "employees"
)

// Common Column Names define frequently used database column names.
const (
	// ColumnUserID is the column name for user identifiers.
	ColumnUserID = "user_id"

	// ColumnEmployeeID is the column name for employee identifiers.
	ColumnEmployeeID = "employee_id"

	// ColumnUsername is the column name for user usernames.
	ColumnUsername = "username"

	// ColumnEmail is the column name for email addresses.
	ColumnEmail = "email"

	// ColumnPasswordHash is the column name for hashed passwords.
	ColumnPasswordHash = "password_hash"

	// ColumnSalt is the column name for password salt values.
	ColumnSalt = "salt"

	// ColumnOTPHash is the column name for hashed one-time passcodes.
	ColumnOTPHash = "otp_hash"

	// ColumnOTPSalt is the column name for OTP salt values.
	ColumnOTPSalt = "otp_salt"

	// ColumnExpiresAt is the column name for expiration timestamps.
	ColumnExpiresAt = "expires_at"

	// ColumnCreatedAt is the column name for creation timestamps.
	ColumnCreatedAt = "created_at"

	// ColumnUpdatedAt is the column name for update timestamps.
	ColumnUpdatedAt = "updated_at"
)

// Database Schema Names define the names of database schemas.
const (
	// SchemaInformation is the name of the PostgreSQL information schema.
	SchemaInformation = "information_schema"
)

// PostgreSQL connection string parameters
const (
	PostgresSSLParams  = "sslmode=require connect_timeout=15"
	PostgresSSLDisable = "sslmode=disable connect_timeout=15"
)
