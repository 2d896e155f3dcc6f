package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/danuarts/staffdesk/internal/database"
	"github.com/danuarts/staffdesk/internal/models"
	"github.com/danuarts/staffdesk/internal/utils"
)

// EmployeeRepository defines methods for interacting with employee records
type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]*models.Employee, error)
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) error
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id int64) error
}

// PostgresEmployeeRepository is a PostgreSQL implementation of EmployeeRepository
type PostgresEmployeeRepository struct {
	db *database.Pool
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *database.Pool) EmployeeRepository {
	return &PostgresEmployeeRepository{
		db: db,
	}
}

// GetAll retrieves every employee record ordered by ID
func (r *PostgresEmployeeRepository) GetAll(ctx context.Context) ([]*models.Employee, error) {
	// Start query timer
	startTime := time.Now()

	// Define the query
	query := `
        SELECT employee_id, first_name, last_name, email, phone_number,
               hire_date, job_title, department, salary, created_at, updated_at
        FROM employees
        ORDER BY employee_id
    `

	// Execute the query
	rows, err := r.db.QueryContext(ctx, query)

	// Log the query execution
	utils.LogDBQuery(
		query,
		nil,
		time.Since(startTime),
		err,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]*models.Employee, 0)
	for rows.Next() {
		employee := &models.Employee{}
		if err := rows.Scan(
			&employee.ID,
			&employee.FirstName,
			&employee.LastName,
			&employee.Email,
			&employee.PhoneNumber,
			&employee.HireDate,
			&employee.JobTitle,
			&employee.Department,
			&employee.Salary,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

// GetByID retrieves an employee by ID
func (r *PostgresEmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	// Start query timer
	startTime := time.Now()

	// Define the query
	query := `
        SELECT employee_id, first_name, last_name, email, phone_number,
               hire_date, job_title, department, salary, created_at, updated_at
        FROM employees
        WHERE employee_id = $1
    `

	// Execute the query
	employee := &models.Employee{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&employee.ID,
		&employee.FirstName,
		&employee.LastName,
		&employee.Email,
		&employee.PhoneNumber,
		&employee.HireDate,
		&employee.JobTitle,
		&employee.Department,
		&employee.Salary,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("Employee", id)
		}
		return nil, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return employee, nil
}

// Create adds a new employee record to the database
func (r *PostgresEmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	// Start query timer
	startTime := time.Now()

	// Set created/updated timestamps
	now := time.Now()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	// Define the query with RETURNING for PostgreSQL
	query := `
        INSERT INTO employees (first_name, last_name, email, phone_number,
                               hire_date, job_title, department, salary,
                               created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING employee_id
    `

	// Execute the query
	err := r.db.QueryRowContext(
		ctx,
		query,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.PhoneNumber,
		employee.HireDate,
		employee.JobTitle,
		employee.Department,
		employee.Salary,
		employee.CreatedAt,
		employee.UpdatedAt,
	).Scan(&employee.ID)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{employee.FirstName, employee.LastName, employee.Email, employee.PhoneNumber, employee.HireDate, employee.JobTitle, employee.Department, employee.Salary, employee.CreatedAt, employee.UpdatedAt},
		time.Since(startTime),
		err,
	)

	if err != nil {
		// Check for unique constraint violations using PostgreSQL error handling
		if pqErr, ok := err.(*pq.Error); ok {
			// 23505 is the PostgreSQL error code for unique_violation
			if pqErr.Code == "23505" && strings.Contains(pqErr.Constraint, "email") {
				return utils.NewDuplicateError("Employee", "email", employee.Email)
			}
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	log.Info().
		Int64("employee_id", employee.ID).
		Str("email", employee.Email).
		Msg("Employee created")

	return nil
}

// Update persists an employee record. Callers merge partial input into the
// stored record first, so every column is written here.
func (r *PostgresEmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	// Start query timer
	startTime := time.Now()

	// Update the updated_at timestamp
	employee.UpdatedAt = time.Now()

	// Define the query
	query := `
        UPDATE employees
        SET first_name = $1, last_name = $2, email = $3, phone_number = $4,
            hire_date = $5, job_title = $6, department = $7, salary = $8,
            updated_at = $9
        WHERE employee_id = $10
    `

	// Execute the query
	result, err := r.db.ExecContext(
		ctx,
		query,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.PhoneNumber,
		employee.HireDate,
		employee.JobTitle,
		employee.Department,
		employee.Salary,
		employee.UpdatedAt,
		employee.ID,
	)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{employee.FirstName, employee.LastName, employee.Email, employee.PhoneNumber, employee.HireDate, employee.JobTitle, employee.Department, employee.Salary, employee.UpdatedAt, employee.ID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		// Check for unique constraint violations using PostgreSQL error handling
		if pqErr, ok := err.(*pq.Error); ok {
			// 23505 is the PostgreSQL error code for unique_violation
			if pqErr.Code == "23505" && strings.Contains(pqErr.Constraint, "email") {
				return utils.NewDuplicateError("Employee", "email", employee.Email)
			}
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	// Check if any rows were affected
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("Employee", employee.ID)
	}

	log.Info().
		Int64("employee_id", employee.ID).
		Str("email", employee.Email).
		Msg("Employee updated")

	return nil
}

// Delete removes an employee record from the database
func (r *PostgresEmployeeRepository) Delete(ctx context.Context, id int64) error {
	// Start query timer
	startTime := time.Now()

	query := "DELETE FROM employees WHERE employee_id = $1"
	result, err := r.db.ExecContext(ctx, query, id)

	// Log the query execution
	utils.LogDBQuery(
		query,
		[]interface{}{id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	// Check if any rows were affected
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("Employee", id)
	}

	log.Info().
		Int64("employee_id", id).
		Msg("Employee deleted")

	return nil
}
