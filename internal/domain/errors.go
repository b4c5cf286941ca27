package domain

import "github.com/pkg/errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid request")

	ErrActorRequired = &ValidationError{Msg: "userId is required"}
	ErrSelfFollow    = &ValidationError{Msg: "cannot follow yourself"}
)

// ValidationError is a client mistake detected before storage is touched.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Required returns a validation error for a missing field.
func Required(field string) error {
	return &ValidationError{Msg: field + " is required"}
}
