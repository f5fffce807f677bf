// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"fitbot/internal/domain/entity"
	"fitbot/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their json names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate validates a bound request struct.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.WithStack(err)
	}

	return ToValidationError(fieldErrs)
}

// ToValidationError converts validator field errors into the domain validation error.
func ToValidationError(fieldErrs validator.ValidationErrors) *entity.ValidationError {
	result := &entity.ValidationError{}
	for _, fe := range fieldErrs {
		result.Add(fieldPath(fe), message(fe))
	}

	return result
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}

	return path
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte", "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte", "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
