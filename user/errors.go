package user

import (
	"github.com/go-faster/errors"
)

const (
	MsgEmptyUsername      = "Username cannot be null or empty."
	MsgInvalidEmailFormat = "Email is not in a valid format."
)

// Validation kinds. Match them with errors.Is.
var (
	ErrEmptyUsername      = errors.New("empty username")
	ErrInvalidEmailFormat = errors.New("invalid email format")
)

// ValidationError reports the first rule a DomainObject violated.
type ValidationError struct {
	Kind    error
	Field   string
	Message string
}

func newValidationError(kind error, field, msg string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

// Is reports whether target is the error's kind.
func (e *ValidationError) Is(target error) bool { return e.Kind == target }

func (e *ValidationError) Unwrap() error { return e.Kind }
