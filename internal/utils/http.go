package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/piresc/wheelshare/internal/pkg/apperror"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success        bool   `json:"success"`
	Error          string `json:"error"`
	Code           int    `json:"code,omitempty"`
	Kind           string `json:"kind,omitempty"`
	CurrentStatus  string `json:"currentStatus,omitempty"`
	ExpectedStatus string `json:"expectedStatus,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// AppErrorResponse renders err with the status code of its apperror kind.
// Unclassified errors are reported as a generic 500 without leaking details.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperror.KindInternal {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error:   "Internal server error",
			Code:    http.StatusInternalServerError,
			Kind:    string(apperror.KindInternal),
		})
	}

	statusCode := apperror.HTTPStatus(appErr.Kind)
	return c.JSON(statusCode, ErrorResponse{
		Success:        false,
		Error:          appErr.Message,
		Code:           statusCode,
		Kind:           string(appErr.Kind),
		CurrentStatus:  appErr.Current,
		ExpectedStatus: appErr.Expected,
	})
}
