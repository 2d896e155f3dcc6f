package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/danuarts/staffdesk/internal/constants"
	"github.com/danuarts/staffdesk/internal/models"
	"github.com/danuarts/staffdesk/internal/utils"
)

// MockEmployeeService is a mock implementation of the EmployeeServiceInterface
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Employee), args.Error(1)
}

func (m *MockEmployeeService) GetEmployee(ctx context.Context, id int64) (*models.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, create *models.EmployeeCreate) (*models.Employee, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, id int64, update *models.EmployeeUpdate) (*models.Employee, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupEmployeeTest(t *testing.T) (*EmployeeHandler, *MockEmployeeService) {
	mockService := new(MockEmployeeService)
	handler := NewEmployeeHandler(mockService)
	return handler, mockService
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func testEmployee() *models.Employee {
	department := "Engineering"
	salary := 95000.0
	return &models.Employee{
		ID:         1,
		FirstName:  "Alice",
		LastName:   "Nguyen",
		Email:      "alice@example.com",
		HireDate:   time.Date(2022, 3, 14, 0, 0, 0, 0, time.UTC),
		Department: &department,
		Salary:     &salary,
		CreatedAt:  testTime(),
		UpdatedAt:  testTime(),
	}
}

// TestListEmployees tests the ListEmployees handler
func TestListEmployees(t *testing.T) {
	handler, mockService := setupEmployeeTest(t)

	t.Run("Success", func(t *testing.T) {
		mockService.On("ListEmployees", mock.Anything).
			Return([]*models.Employee{testEmployee()}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
		rr := httptest.NewRecorder()

		handler.ListEmployees(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var responseWrapper struct {
			Success bool              `json:"success"`
			Data    []models.Employee `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &responseWrapper))

		require.Len(t, responseWrapper.Data, 1)
		assert.Equal(t, "Alice", responseWrapper.Data[0].FirstName)

		mockService.AssertExpectations(t)
	})

	t.Run("Empty", func(t *testing.T) {
		mockService.On("ListEmployees", mock.Anything).
			Return([]*models.Employee{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
		rr := httptest.NewRecorder()

		handler.ListEmployees(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var responseWrapper struct {
			Data []models.Employee `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &responseWrapper))
		assert.Empty(t, responseWrapper.Data)

		mockService.AssertExpectations(t)
	})
}

// TestGetEmployee tests the GetEmployee handler
func TestGetEmployee(t *testing.T) {
	handler, mockService := setupEmployeeTest(t)

	t.Run("Success", func(t *testing.T) {
		mockService.On("GetEmployee", mock.Anything, int64(1)).
			Return(testEmployee(), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/employees/1", nil)
		req = withURLParam(req, "id", "1")
		rr := httptest.NewRecorder()

		handler.GetEmployee(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var responseWrapper struct {
			Data models.Employee `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &responseWrapper))
		assert.Equal(t, int64(1), responseWrapper.Data.ID)
		assert.Equal(t, "alice@example.com", responseWrapper.Data.Email)

		mockService.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockService.On("GetEmployee", mock.Anything, int64(999)).
			Return(nil, utils.NewNotFoundError("Employee", int64(999))).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/employees/999", nil)
		req = withURLParam(req, "id", "999")
		rr := httptest.NewRecorder()

		handler.GetEmployee(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/employees/abc", nil)
		req = withURLParam(req, "id", "abc")
		rr := httptest.NewRecorder()

		handler.GetEmployee(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Negative ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/employees/-1", nil)
		req = withURLParam(req, "id", "-1")
		rr := httptest.NewRecorder()

		handler.GetEmployee(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

// TestCreateEmployee tests the CreateEmployee handler
func TestCreateEmployee(t *testing.T) {
	handler, mockService := setupEmployeeTest(t)

	t.Run("Success", func(t *testing.T) {
		mockService.On("CreateEmployee", mock.Anything, mock.MatchedBy(func(create *models.EmployeeCreate) bool {
			return create.Email == "alice@example.com" && create.HireDate == "2022-03-14"
		})).Return(testEmployee(), nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/employees", jsonBody(t, map[string]interface{}{
			"first_name": "Alice",
			"last_name":  "Nguyen",
			"email":      "alice@example.com",
			"hire_date":  "2022-03-14",
			"department": "Engineering",
			"salary":     95000,
		}))
		rr := httptest.NewRecorder()

		handler.CreateEmployee(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var responseWrapper struct {
			Data models.Employee `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &responseWrapper))
		assert.Equal(t, int64(1), responseWrapper.Data.ID)

		mockService.AssertExpectations(t)
	})

	t.Run("Missing Required Fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/employees", jsonBody(t, map[string]interface{}{
			"first_name": "Alice",
		}))
		rr := httptest.NewRecorder()

		handler.CreateEmployee(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Malformed Hire Date", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/employees", jsonBody(t, map[string]interface{}{
			"first_name": "Alice",
			"last_name":  "Nguyen",
			"email":      "alice@example.com",
			"hire_date":  "14/03/2022",
		}))
		rr := httptest.NewRecorder()

		handler.CreateEmployee(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		mockService.On("CreateEmployee", mock.Anything, mock.Anything).
			Return(nil, utils.NewDuplicateError("Employee", "email", "alice@example.com")).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/employees", jsonBody(t, map[string]interface{}{
			"first_name": "Alice",
			"last_name":  "Nguyen",
			"email":      "alice@example.com",
			"hire_date":  "2022-03-14",
		}))
		rr := httptest.NewRecorder()

		handler.CreateEmployee(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockService.AssertExpectations(t)
	})
}

// TestUpdateEmployee tests the UpdateEmployee handler
func TestUpdateEmployee(t *testing.T) {
	handler, mockService := setupEmployeeTest(t)

	t.Run("Success", func(t *testing.T) {
		updated := testEmployee()
		platform := "Platform"
		updated.Department = &platform

		mockService.On("UpdateEmployee", mock.Anything, int64(1), mock.MatchedBy(func(update *models.EmployeeUpdate) bool {
			return update.Department != nil && *update.Department == "Platform"
		})).Return(updated, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/employees/1", jsonBody(t, map[string]interface{}{
			"department": "Platform",
		}))
		req = withURLParam(req, "id", "1")
		rr := httptest.NewRecorder()

		handler.UpdateEmployee(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var responseWrapper struct {
			Data models.Employee `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &responseWrapper))
		require.NotNil(t, responseWrapper.Data.Department)
		assert.Equal(t, "Platform", *responseWrapper.Data.Department)

		mockService.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockService.On("UpdateEmployee", mock.Anything, int64(999), mock.Anything).
			Return(nil, utils.NewNotFoundError("Employee", int64(999))).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/employees/999", jsonBody(t, map[string]interface{}{
			"department": "Platform",
		}))
		req = withURLParam(req, "id", "999")
		rr := httptest.NewRecorder()

		handler.UpdateEmployee(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/employees/zero", jsonBody(t, map[string]interface{}{
			"department": "Platform",
		}))
		req = withURLParam(req, "id", "zero")
		rr := httptest.NewRecorder()

		handler.UpdateEmployee(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Malformed Email", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/employees/1", jsonBody(t, map[string]interface{}{
			"email": "not-an-email",
		}))
		req = withURLParam(req, "id", "1")
		rr := httptest.NewRecorder()

		handler.UpdateEmployee(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

// TestDeleteEmployee tests the DeleteEmployee handler
func TestDeleteEmployee(t *testing.T) {
	handler, mockService := setupEmployeeTest(t)

	t.Run("Success", func(t *testing.T) {
		mockService.On("DeleteEmployee", mock.Anything, int64(1)).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/employees/1", nil)
		req = withURLParam(req, "id", "1")
		rr := httptest.NewRecorder()

		handler.DeleteEmployee(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var responseWrapper struct {
			Data struct {
				Message string `json:"message"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &responseWrapper))
		assert.Equal(t, constants.MsgEmployeeDeleted, responseWrapper.Data.Message)

		mockService.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockService.On("DeleteEmployee", mock.Anything, int64(999)).
			Return(utils.NewNotFoundError("Employee", int64(999))).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/employees/999", nil)
		req = withURLParam(req, "id", "999")
		rr := httptest.NewRecorder()

		handler.DeleteEmployee(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/employees/0", nil)
		req = withURLParam(req, "id", "0")
		rr := httptest.NewRecorder()

		handler.DeleteEmployee(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
