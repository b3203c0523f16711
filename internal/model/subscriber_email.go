package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var emailValidator = validator.New()

// SubscriberEmail is an email address that passed validation.
type SubscriberEmail struct {
	value string
}

// ParseSubscriberEmail validates raw and wraps it into a SubscriberEmail.
func ParseSubscriberEmail(raw string) (SubscriberEmail, error) {
	if raw == "" {
		return SubscriberEmail{}, NewValidationError("subscriber email must not be empty")
	}

	if err := emailValidator.Var(raw, "email"); err != nil {
		return SubscriberEmail{}, NewValidationError(fmt.Sprintf("%s is not a valid subscriber email", raw))
	}

	return SubscriberEmail{value: raw}, nil
}

func (e SubscriberEmail) String() string {
	return e.value
}
