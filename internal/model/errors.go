package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by stores when a requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a subscriber with the same email already exists.
	ErrConflict = errors.New("subscriber with this email already exists")
	// ErrUnknownToken is returned when no subscriber matches a confirmation token.
	ErrUnknownToken = errors.New("unknown confirmation token")
	// ErrStore marks infrastructure, connectivity and constraint failures of the subscriber store.
	ErrStore = errors.New("subscriber store failure")
	// ErrSend marks email provider failures, including timeouts.
	ErrSend = errors.New("email send failure")
)

// ValidationError reports malformed client input.
type ValidationError struct {
	Reason string
}

// NewValidationError creates a ValidationError with the given reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// UnexpectedError wraps a lower layer failure with the step that failed.
type UnexpectedError struct {
	Context string
	Err     error
}

// NewUnexpectedError wraps err with context.
func NewUnexpectedError(context string, err error) *UnexpectedError {
	return &UnexpectedError{Context: context, Err: err}
}

func (e *UnexpectedError) Error() string {
	if e.Err == nil {
		return e.Context
	}
	return fmt.Sprintf("%s: %v", e.Context, e.Err)
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}
