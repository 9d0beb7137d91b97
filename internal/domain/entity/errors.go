package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the client, the resource services and the mock
// backend. Backend status codes map onto them: 404 is ErrNotFound, 400 and
// 422 are ErrInvalidInput.
var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError names the backend field (in its JSON spelling) that failed
// a check. It matches ErrValidationFailed under errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
