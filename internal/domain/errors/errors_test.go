package errors

import (
	"net/http"
	"testing"

	"fitbot/internal/domain/entity"
	"fitbot/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDetails_KeepsIdentity(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("weight_kg")

	assert.ErrorIs(t, detailed, ErrValidationFailed)
	assert.NotErrorIs(t, detailed, ErrInternalError)
	assert.Equal(t, "weight_kg", detailed.Details())
	assert.Nil(t, ErrValidationFailed.Details())
}

func TestNewValidationError(t *testing.T) {
	verr := &entity.ValidationError{}
	verr.Add("age", "must be greater than 0")

	appErr := NewValidationError(verr)

	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	fields, ok := appErr.Details().([]entity.FieldError)
	require.True(t, ok)
	require.Len(t, fields, 1)
	assert.Equal(t, "age", fields[0].Field)
}

func TestWrapMessage_StillAppError(t *testing.T) {
	wrapped := ErrGenerationTimeout.WrapMessage("chat")

	appErr, ok := errors.AsType[AppError](wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusGatewayTimeout, appErr.HTTPCode())
}
