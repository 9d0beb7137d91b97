package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid", value: "Lucía Fernández", wantErr: false},
		{name: "empty", value: "", wantErr: true},
		{name: "only spaces", value: "   ", wantErr: true},
		{name: "at limit", value: strings.Repeat("ñ", 200), wantErr: false},
		{name: "over limit", value: strings.Repeat("a", 201), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName("nombre", tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidationFailed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "empty is allowed", value: "", wantErr: false},
		{name: "plain address", value: "ventas@example.com", wantErr: false},
		{name: "missing at", value: "ventas.example.com", wantErr: true},
		{name: "display name", value: "Ventas <ventas@example.com>", wantErr: true},
		{name: "missing domain", value: "ventas@", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail("email", tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("fecha_inicio", "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, 3, int(d.Month()))

	_, err = ParseDate("fecha_inicio", "01/03/2025")
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "fecha_inicio", ve.Field)
}

func TestValidateCUIT(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid with dashes", value: "20-12345678-6", wantErr: false},
		{name: "valid without dashes", value: "30712345671", wantErr: false},
		{name: "wrong check digit", value: "20-12345678-5", wantErr: true},
		{name: "too short", value: "20-1234567-6", wantErr: true},
		{name: "letters", value: "20-1234567A-6", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCUIT("cuit", tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCUITCheckDigit(t *testing.T) {
	assert.Equal(t, 6, CUITCheckDigit("2012345678"))
	assert.Equal(t, 1, CUITCheckDigit("3071234567"))
}
