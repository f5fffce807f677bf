package entity

import "strings"

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a profile or request field is malformed or out of range.
type ValidationError struct {
	Fields []FieldError
}

// Add records an invalid field.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any field was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}

	return "invalid profile: " + strings.Join(parts, "; ")
}
