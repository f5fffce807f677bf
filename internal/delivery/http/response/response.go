package response

import (
	"net/http"

	deliverycontext "fitbot/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success   bool       `json:"success"`
	Code      int        `json:"code"`    // HTTP status code
	Message   string     `json:"message"` // User-friendly message
	Data      any        `json:"data,omitempty"`
	Error     *ErrorInfo `json:"error,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "VALIDATION_FAILED"
	Details any    `json:"details,omitempty"` // Field errors for 4xx responses
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success:   true,
		Code:      statusCode,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	// Server errors never carry details
	if statusCode >= http.StatusInternalServerError {
		details = nil
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		RequestID: requestID(c),
	})
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

func requestID(c echo.Context) string {
	if id, ok := c.Get(string(deliverycontext.KeyRequestID)).(string); ok {
		return id
	}

	return ""
}
