package domain

import (
	"strings"
	"unicode/utf8"

	"message-board/errors"
)

const maxNameLength = 50

// Name is an immutable display name, trimmed and between 1 and 50
// characters after trimming.
type Name struct {
	value string
}

// NewName validates raw input and stores the trimmed value.
func NewName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > maxNameLength {
		return Name{}, errors.NewInvalidValueObject("invalid name format")
	}
	return Name{value: trimmed}, nil
}

// Value exposes the trimmed name.
func (n Name) Value() string {
	return n.value
}

// Equals compares normalized values.
func (n Name) Equals(other Name) bool {
	return n.value == other.value
}
