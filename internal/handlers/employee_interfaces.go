package handlers

import (
	"context"

	"github.com/danuarts/staffdesk/internal/models"
)

// EmployeeServiceInterface defines the methods required from the employee
// service. It is used by the employee handlers to interact with the
// directory business logic without being tightly coupled to the
// implementation.
type EmployeeServiceInterface interface {
	// ListEmployees returns every employee record ordered by ID.
	ListEmployees(ctx context.Context) ([]*models.Employee, error)

	// GetEmployee returns a single employee record by ID.
	GetEmployee(ctx context.Context, id int64) (*models.Employee, error)

	// CreateEmployee creates a new employee record from the given input.
	CreateEmployee(ctx context.Context, create *models.EmployeeCreate) (*models.Employee, error)

	// UpdateEmployee applies a partial update to an employee record and
	// returns the merged result.
	UpdateEmployee(ctx context.Context, id int64, update *models.EmployeeUpdate) (*models.Employee, error)

	// DeleteEmployee removes an employee record by ID.
	DeleteEmployee(ctx context.Context, id int64) error
}
