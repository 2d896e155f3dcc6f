// Package utils provides utility functions and helpers for the application.
// This file implements a standardized API response system that ensures
// consistent response formats across all API endpoints.
//
// The response system includes:
//   - A standard Response structure for all API responses
//   - Convenience functions for common response types (success, error, pagination)
//   - HTTP status code helpers
//   - Pagination parameter extraction
//
// This ensures that all API responses follow the same format, making it easier
// for clients to parse and handle responses predictably.
package utils

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/danuarts/staffdesk/internal/constants"
)

// Response represents a standardized API response.
// All API endpoints return responses in this format for consistency.
type Response struct {
	Success bool        `json:"success"`         // Whether the request was successful
	Data    interface{} `json:"data,omitempty"`  // The response data (omitted for error responses)
	Error   *ErrorInfo  `json:"error,omitempty"` // Error information (omitted for successful responses)
	Meta    *MetaInfo   `json:"meta,omitempty"`  // Metadata such as pagination information
}

// ErrorInfo represents error information in the response.
type ErrorInfo struct {
	Code    string            `json:"code"`              // A machine-readable error code
	Message string            `json:"message"`           // A human-readable error message
	Details map[string]string `json:"details,omitempty"` // Additional details (e.g., validation errors)
}

// MetaInfo represents metadata in the response, primarily pagination.
type MetaInfo struct {
	Page       int `json:"page,omitempty"`
	PageSize   int `json:"page_size,omitempty"`
	TotalItems int `json:"total_items,omitempty"`
	TotalPages int `json:"total_pages,omitempty"`
}

// PaginationParams contains parameters for pagination.
type PaginationParams struct {
	Page     int
	PageSize int
}

// JSON sends a JSON response with the given status code and data.
// The success flag is derived from the status code.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	response := Response{
		Success: statusCode >= 200 && statusCode < 300,
		Data:    data,
	}

	SendJSON(w, statusCode, response)
}

// Error sends an error response with the given status code and error information.
func Error(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	response := Response{
		Success: constants.ResponseFailure,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	}

	SendJSON(w, statusCode, response)
}

// ErrorFromAppError sends an error response based on an AppError.
// It extracts the error code, message, and field details from the AppError.
func ErrorFromAppError(w http.ResponseWriter, err *AppError) {
	errCode := constants.CodeInternalError
	switch err.Err {
	case ErrNotFound:
		errCode = constants.CodeNotFound
	case ErrBadRequest:
		errCode = constants.CodeBadRequest
	case ErrUnauthorized:
		errCode = constants.CodeUnauthorized
	case ErrForbidden:
		errCode = constants.CodeForbidden
	case ErrValidation:
		errCode = constants.CodeValidationError
	case ErrDuplicate:
		errCode = constants.CodeDuplicateResource
	case ErrInvalidCredentials:
		errCode = constants.CodeInvalidCredentials
	case ErrInvalidOTP:
		errCode = constants.CodeInvalidOTP
	case ErrExpiredToken:
		errCode = constants.CodeTokenExpired
	case ErrInvalidToken:
		errCode = constants.CodeTokenInvalid
	}

	var details map[string]string
	if err.Field != "" {
		details = map[string]string{
			err.Field: err.Message,
		}
	}

	Error(w, err.StatusCode, errCode, err.Message, details)
}

// Paginated sends a paginated response with the given status code, data, and pagination info.
func Paginated(w http.ResponseWriter, statusCode int, data interface{}, page, pageSize, totalItems int) {
	totalPages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		totalPages++
	}

	response := Response{
		Success: constants.ResponseSuccess,
		Data:    data,
		Meta: &MetaInfo{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: totalItems,
			TotalPages: totalPages,
		},
	}

	SendJSON(w, statusCode, response)
}

// SendJSON is a helper function to send JSON data with proper headers.
func SendJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		if _, err := w.Write([]byte(`{"success":false,"error":{"code":"internal_error","message":"Failed to generate response"}}`)); err != nil {
			log.Error().Err(err).Msg("Failed to write error response")
		}
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// NoContent sends a 204 No Content response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(constants.StatusNoContent)
}

// BadRequest sends a 400 Bad Request response with the given message.
func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	Error(w, constants.StatusBadRequest, constants.CodeBadRequest, message, details)
}

// Unauthorized sends a 401 Unauthorized response with the given message.
func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgAuthRequired
	}
	Error(w, constants.StatusUnauthorized, constants.CodeUnauthorized, message, nil)
}

// Forbidden sends a 403 Forbidden response with the given message.
func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgAccessDenied
	}
	Error(w, constants.StatusForbidden, constants.CodeForbidden, message, nil)
}

// NotFound sends a 404 Not Found response with the given message.
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgResourceNotFound
	}
	Error(w, constants.StatusNotFound, constants.CodeNotFound, message, nil)
}

// MethodNotAllowed sends a 405 Method Not Allowed response.
func MethodNotAllowed(w http.ResponseWriter) {
	Error(w, constants.StatusMethodNotAllowed, constants.CodeMethodNotAllowed, constants.MsgMethodNotAllowed, nil)
}

// Conflict sends a 409 Conflict response with the given message.
func Conflict(w http.ResponseWriter, message string) {
	Error(w, constants.StatusConflict, constants.CodeConflict, message, nil)
}

// TooManyRequests sends a 429 response with a Retry-After hint.
func TooManyRequests(w http.ResponseWriter, retryAfterSeconds int) {
	if retryAfterSeconds > 0 {
		w.Header().Set(constants.HeaderRetryAfter, strconv.Itoa(retryAfterSeconds))
	}
	Error(w, constants.StatusTooManyRequests, constants.CodeRateLimited, constants.MsgTooManyRequests, nil)
}

// InternalServerError sends a 500 Internal Server Error response.
// The error is logged but never exposed to the client.
func InternalServerError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("Internal server error")
	Error(w, constants.StatusInternalServerError, constants.CodeInternalError, constants.MsgInternalServerError, nil)
}

// ValidationError sends a 400 Bad Request response with validation error details.
func ValidationError(w http.ResponseWriter, errors map[string]string) {
	Error(w, constants.StatusBadRequest, constants.CodeValidationError, "Validation failed", errors)
}

// GetPaginationParams extracts pagination parameters from the request.
// It enforces minimum and maximum page sizes and provides sensible defaults.
func GetPaginationParams(r *http.Request) PaginationParams {
	page := constants.DefaultPage
	pageSize := constants.DefaultPageSize

	if r.URL.Query().Get(constants.QueryParamPage) != "" {
		parsedPage, _ := parseInt(r.URL.Query().Get(constants.QueryParamPage), constants.DefaultPage)
		if parsedPage > 0 {
			page = parsedPage
		}
	}

	if r.URL.Query().Get(constants.QueryParamPageSize) != "" {
		parsedPageSize, _ := parseInt(r.URL.Query().Get(constants.QueryParamPageSize), constants.DefaultPageSize)
		if parsedPageSize < constants.MinPageSize {
			pageSize = constants.MinPageSize
		} else if parsedPageSize > constants.MaxPageSize {
			pageSize = constants.MaxPageSize
		} else {
			pageSize = parsedPageSize
		}
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
	}
}

// parseInt parses an integer with a default value on failure.
func parseInt(s string, defaultValue int) (int, error) {
	var value int
	if err := json.Unmarshal([]byte(s), &value); err != nil {
		return defaultValue, err
	}
	return value, nil
}
