// Package domain contains the core concepts of the message board:
// value objects, entities and their invariants.
// No transport, storage or runtime logic should be added here.
package domain

import (
	"regexp"
	"strings"

	"message-board/errors"
)

// emailPattern accepts local@domain.tld shapes: non-empty local part,
// non-empty domain with at least one dot, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is an immutable, normalized email address.
// The zero value is not valid; always go through NewEmail.
type Email struct {
	value string
}

// NewEmail validates raw input and normalizes it to lowercase(trim(s)).
// A partially-valid Email is never constructed.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if !emailPattern.MatchString(trimmed) {
		return Email{}, errors.NewInvalidValueObject("invalid email format")
	}
	return Email{value: strings.ToLower(trimmed)}, nil
}

// Value exposes the normalized address. There is no implicit coercion,
// so callers can never forget normalization.
func (e Email) Value() string {
	return e.value
}

// Equals compares normalized values.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
