package errors

import (
	"net/http"

	"fitbot/internal/domain/entity"
	"fitbot/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails returns a copy carrying the given details
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches copies produced by WithDetails against the predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Request errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		nil,
	)

	ErrInvalidRequestBody = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REQUEST_BODY",
		"Request body could not be parsed",
		nil,
	)

	// Generation errors
	ErrPlanGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"PLAN_GENERATION_FAILED",
		"Failed to generate plan, please try again later",
		nil,
	)

	ErrChatFailed = NewBaseError(
		http.StatusInternalServerError,
		"CHAT_FAILED",
		"Failed to answer the question, please try again later",
		nil,
	)

	ErrGenerationTimeout = NewBaseError(
		http.StatusGatewayTimeout,
		"GENERATION_TIMEOUT",
		"The language model did not respond in time",
		nil,
	)

	// Knowledge base errors
	ErrRetrievalFailed = NewBaseError(
		http.StatusInternalServerError,
		"RETRIEVAL_FAILED",
		"Failed to search the knowledge base, please try again later",
		nil,
	)

	ErrKnowledgeBaseUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"KNOWLEDGE_BASE_UNAVAILABLE",
		"Knowledge base is not loaded yet",
		nil,
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		nil,
	)
)

// NewValidationError converts field-level validation failures into an AppError.
func NewValidationError(verr *entity.ValidationError) AppError {
	return ErrValidationFailed.WithDetails(verr.Fields)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the underlying driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
