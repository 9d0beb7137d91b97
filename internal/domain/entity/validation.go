package entity

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the calendar date format the backend uses (fecha_*).
const DateLayout = "2006-01-02"

// maxNameLength bounds free-text names sent to the backend.
const maxNameLength = 200

// ValidateName checks that a required name is present and not too long.
func ValidateName(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	if utf8.RuneCountInString(value) > maxNameLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not exceed %d characters", maxNameLength),
		}
	}
	return nil
}

// ValidateEmail accepts an empty address; a non-empty one must parse as a
// bare address without display name.
func ValidateEmail(field, value string) error {
	if value == "" {
		return nil
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return &ValidationError{Field: field, Message: "must be a valid email address"}
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, &ValidationError{Field: field, Message: "must be a date in YYYY-MM-DD format"}
	}
	return t, nil
}

// ValidateCUIT checks an Argentine tax ID: 11 digits, optionally written as
// XX-XXXXXXXX-X, with a valid check digit.
func ValidateCUIT(field, value string) error {
	digits := strings.ReplaceAll(value, "-", "")
	if len(digits) != 11 {
		return &ValidationError{Field: field, Message: "must have 11 digits"}
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return &ValidationError{Field: field, Message: "must contain only digits"}
		}
	}
	if int(digits[10]-'0') != CUITCheckDigit(digits[:10]) {
		return &ValidationError{Field: field, Message: "has an invalid check digit"}
	}
	return nil
}

// CUITCheckDigit computes the check digit for the first ten digits of a
// CUIT. prefix must hold exactly ten ASCII digits.
func CUITCheckDigit(prefix string) int {
	weights := [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}
	sum := 0
	for i := 0; i < 10; i++ {
		sum += int(prefix[i]-'0') * weights[i]
	}
	switch check := 11 - sum%11; check {
	case 11:
		return 0
	case 10:
		return 9
	default:
		return check
	}
}

func validateNonNegative(field string, v float64) error {
	if v < 0 {
		return &ValidationError{Field: field, Message: "must not be negative"}
	}
	return nil
}
