package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ventas-admin/internal/utils/text"
)

func TestCountRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "ASCII text", input: "hello", expected: 5},
		{name: "ASCII with spaces", input: "Av. Siempre Viva 100", expected: 20},
		{name: "accented", input: "Lucía Fernández", expected: 15},
		{name: "enye", input: "Señor", expected: 5},
		{name: "emoji", input: "ok👋", expected: 3},
		{name: "empty string", input: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.CountRunes(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{name: "short enough", input: "Yerba", max: 10, expected: "Yerba"},
		{name: "exact length", input: "Yerba", max: 5, expected: "Yerba"},
		{name: "shortened", input: "Dulce de leche", max: 8, expected: "Dulce d…"},
		{name: "accents count once", input: "Córdoba Capital", max: 8, expected: "Córdoba…"},
		{name: "single rune", input: "Rosario", max: 1, expected: "…"},
		{name: "no limit", input: "Rosario", max: 0, expected: "Rosario"},
		{name: "empty", input: "", max: 3, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := text.Truncate(tt.input, tt.max)
			assert.Equal(t, tt.expected, got)
			if tt.max > 0 {
				assert.LessOrEqual(t, text.CountRunes(got), tt.max)
			}
		})
	}
}
