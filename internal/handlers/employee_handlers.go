package handlers

import (
	"strconv"

	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/danuarts/staffdesk/internal/constants"
	"github.com/danuarts/staffdesk/internal/models"
	"github.com/danuarts/staffdesk/internal/utils"
)

// EmployeeHandler handles employee directory routes
type EmployeeHandler struct {
	employeeService EmployeeServiceInterface
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService EmployeeServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// employeeIDParam extracts and parses the employee ID from the URL.
func employeeIDParam(r *http.Request) (int64, *utils.AppError) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, utils.NewValidationError("id", "Employee ID must be a positive integer")
	}
	return id, nil
}

// ListEmployees returns all employee records
func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, employees)
}

// GetEmployee returns a single employee record by ID
func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, appErr := employeeIDParam(r)
	if appErr != nil {
		utils.ErrorFromAppError(w, appErr)
		return
	}

	employee, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, employee)
}

// CreateEmployee creates a new employee record
func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	// Decode and validate the request body
	var create models.EmployeeCreate
	if err := utils.DecodeAndValidate(r, &create); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	employee, err := h.employeeService.CreateEmployee(r.Context(), &create)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusCreated, employee)
}

// UpdateEmployee applies a partial update to an employee record
func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, appErr := employeeIDParam(r)
	if appErr != nil {
		utils.ErrorFromAppError(w, appErr)
		return
	}

	// Decode and validate the request body
	var update models.EmployeeUpdate
	if err := utils.DecodeAndValidate(r, &update); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	employee, err := h.employeeService.UpdateEmployee(r.Context(), id, &update)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, employee)
}

// DeleteEmployee removes an employee record
func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, appErr := employeeIDParam(r)
	if appErr != nil {
		utils.ErrorFromAppError(w, appErr)
		return
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]interface{}{
		"message": constants.MsgEmployeeDeleted,
	})
}
