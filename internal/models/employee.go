package models

import (
	"time"
)

// Employee represents a staff record managed through the employee directory.
type Employee struct {
	ID          int64      `json:"id" db:"employee_id"`
	FirstName   string     `json:"first_name" db:"first_name" validate:"required,max=100"`
	LastName    string     `json:"last_name" db:"last_name" validate:"required,max=100"`
	Email       string     `json:"email" db:"email" validate:"required,email"`
	PhoneNumber *string    `json:"phone_number,omitempty" db:"phone_number"`
	HireDate    time.Time  `json:"hire_date" db:"hire_date"`
	JobTitle    *string    `json:"job_title,omitempty" db:"job_title"`
	Department  *string    `json:"department,omitempty" db:"department"`
	Salary      *float64   `json:"salary,omitempty" db:"salary"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// TableName returns the database table name for the Employee model.
func (e *Employee) TableName() string {
	return "employees"
}

// EmployeeCreate represents the data required to create an employee record.
type EmployeeCreate struct {
	FirstName   string   `json:"first_name" validate:"required,max=100"`
	LastName    string   `json:"last_name" validate:"required,max=100"`
	Email       string   `json:"email" validate:"required,email"`
	PhoneNumber *string  `json:"phone_number" validate:"omitempty,max=30"`
	HireDate    string   `json:"hire_date" validate:"required,datetime=2006-01-02"`
	JobTitle    *string  `json:"job_title" validate:"omitempty,max=100"`
	Department  *string  `json:"department" validate:"omitempty,max=100"`
	Salary      *float64 `json:"salary" validate:"omitempty,gte=0"`
}

// EmployeeUpdate represents a partial update to an employee record.
// Absent fields keep their stored values.
type EmployeeUpdate struct {
	FirstName   *string  `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string  `json:"last_name" validate:"omitempty,max=100"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	PhoneNumber *string  `json:"phone_number" validate:"omitempty,max=30"`
	HireDate    *string  `json:"hire_date" validate:"omitempty,datetime=2006-01-02"`
	JobTitle    *string  `json:"job_title" validate:"omitempty,max=100"`
	Department  *string  `json:"department" validate:"omitempty,max=100"`
	Salary      *float64 `json:"salary" validate:"omitempty,gte=0"`
}
