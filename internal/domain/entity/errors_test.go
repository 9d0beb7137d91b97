package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		field   string
		message string
		want    string
	}{
		{field: "nombre", message: "is required", want: "invalid nombre: is required"},
		{field: "fecha_inicio", message: "must be a date in YYYY-MM-DD format", want: "invalid fecha_inicio: must be a date in YYYY-MM-DD format"},
		{field: "cuit", message: "has an invalid check digit", want: "invalid cuit: has an invalid check digit"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			err := &ValidationError{Field: tt.field, Message: tt.message}
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestValidationError_Matching(t *testing.T) {
	wrapped := fmt.Errorf("create vendedores: %w", (&Seller{Name: "Ana"}).Validate())

	var validationErr *ValidationError
	require.ErrorAs(t, wrapped, &validationErr)
	assert.Equal(t, "email", validationErr.Field)
	assert.ErrorIs(t, wrapped, ErrValidationFailed)
	assert.NotErrorIs(t, wrapped, ErrNotFound)
	assert.NotErrorIs(t, wrapped, ErrInvalidInput)
}

func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrInvalidInput, ErrValidationFailed}
	for i, a := range sentinels {
		for j, b := range sentinels {
			assert.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
		}
	}
}
