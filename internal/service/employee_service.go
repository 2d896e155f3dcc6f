package service

import (
	"context"
	"fmt"
	"time"

	"github.com/danuarts/staffdesk/internal/models"
	"github.com/danuarts/staffdesk/internal/repository"
	"github.com/danuarts/staffdesk/internal/utils"
)

// hireDateLayout is the wire format for employee hire dates.
const hireDateLayout = "2006-01-02"

// EmployeeService handles business logic for the employee directory
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
	}
}

// ListEmployees returns every employee record ordered by ID.
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// GetEmployee returns a single employee record by ID.
func (s *EmployeeService) GetEmployee(ctx context.Context, id int64) (*models.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// CreateEmployee creates a new employee record.
func (s *EmployeeService) CreateEmployee(ctx context.Context, create *models.EmployeeCreate) (*models.Employee, error) {
	hireDate, err := time.Parse(hireDateLayout, create.HireDate)
	if err != nil {
		return nil, utils.NewValidationError("hire_date", "Hire date must be in YYYY-MM-DD format")
	}

	employee := &models.Employee{
		FirstName:   create.FirstName,
		LastName:    create.LastName,
		Email:       create.Email,
		PhoneNumber: create.PhoneNumber,
		HireDate:    hireDate,
		JobTitle:    create.JobTitle,
		Department:  create.Department,
		Salary:      create.Salary,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// UpdateEmployee applies a partial update to an employee record. Fields
// absent from the update keep their stored values; the merged record is
// written back as a whole.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id int64, update *models.EmployeeUpdate) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		employee.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		employee.LastName = *update.LastName
	}
	if update.Email != nil {
		employee.Email = *update.Email
	}
	if update.PhoneNumber != nil {
		employee.PhoneNumber = update.PhoneNumber
	}
	if update.HireDate != nil {
		hireDate, err := time.Parse(hireDateLayout, *update.HireDate)
		if err != nil {
			return nil, utils.NewValidationError("hire_date", "Hire date must be in YYYY-MM-DD format")
		}
		employee.HireDate = hireDate
	}
	if update.JobTitle != nil {
		employee.JobTitle = update.JobTitle
	}
	if update.Department != nil {
		employee.Department = update.Department
	}
	if update.Salary != nil {
		employee.Salary = update.Salary
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// DeleteEmployee removes an employee record by ID.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	return s.employeeRepo.Delete(ctx, id)
}
