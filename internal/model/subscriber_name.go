package model

import (
	"strings"

	"github.com/rivo/uniseg"
)

const (
	maxSubscriberNameLength  = 256
	forbiddenSubscriberRunes = `/()"<>\{}`
)

// SubscriberName is a display name that passed validation.
type SubscriberName struct {
	value string
}

// ParseSubscriberName validates raw and wraps it into a SubscriberName.
// Length is counted in grapheme clusters, not bytes.
func ParseSubscriberName(raw string) (SubscriberName, error) {
	if strings.TrimSpace(raw) == "" {
		return SubscriberName{}, NewValidationError("subscriber name must not be empty")
	}

	if uniseg.GraphemeClusterCount(raw) > maxSubscriberNameLength {
		return SubscriberName{}, NewValidationError("subscriber name is too long")
	}

	if strings.ContainsAny(raw, forbiddenSubscriberRunes) {
		return SubscriberName{}, NewValidationError("subscriber name contains forbidden characters")
	}

	return SubscriberName{value: raw}, nil
}

func (n SubscriberName) String() string {
	return n.value
}
