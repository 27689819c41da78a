// Package errors defines the closed set of classified domain failures.
// Every failure raised by the domain layer carries one of the kind
// sentinels below, a human-readable message, and the entity/identifier
// it concerns when known. Adapters map the status category to their own
// transport statuses; this package knows nothing about HTTP.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind sentinels. Callers match with errors.Is and never depend on the
// concrete *DomainError type.
var (
	ErrEntityNotFound            = stderrors.New("entity not found")
	ErrEntityAlreadyExists       = stderrors.New("entity already exists")
	ErrInvalidInput              = stderrors.New("invalid input")
	ErrInvalidValueObject        = stderrors.New("invalid value object")
	ErrAuthentication            = stderrors.New("authentication failed")
	ErrForbiddenAction           = stderrors.New("forbidden action")
	ErrThrottling                = stderrors.New("too many requests")
	ErrInvalidThrottleIdentifier = stderrors.New("invalid throttle identifier")
)

// StatusCategory is the transport-agnostic classification of a failure.
// The boundary layer maps each category 1:1 to a transport status.
type StatusCategory string

const (
	StatusNotFound        StatusCategory = "not-found"
	StatusConflict        StatusCategory = "conflict"
	StatusBadRequest      StatusCategory = "bad-request"
	StatusUnauthorized    StatusCategory = "unauthorized"
	StatusForbidden       StatusCategory = "forbidden"
	StatusTooManyRequests StatusCategory = "too-many-requests"
	StatusInternal        StatusCategory = "internal"
)

// DomainError is the single error type produced by the domain layer.
// The kind discriminates programmatically; the message is safe to show
// to external callers.
type DomainError struct {
	kind       error
	message    string
	Entity     string
	Identifier string
}

func (e *DomainError) Error() string {
	return e.message
}

// Unwrap exposes the kind sentinel so errors.Is matches it.
func (e *DomainError) Unwrap() error {
	return e.kind
}

// Category classifies any error. Unclassified failures (store errors,
// bugs) fall through to StatusInternal and must be degraded to a
// generic response by the boundary.
func Category(err error) StatusCategory {
	switch {
	case stderrors.Is(err, ErrEntityNotFound):
		return StatusNotFound
	case stderrors.Is(err, ErrEntityAlreadyExists):
		return StatusConflict
	case stderrors.Is(err, ErrInvalidInput),
		stderrors.Is(err, ErrInvalidValueObject),
		stderrors.Is(err, ErrInvalidThrottleIdentifier):
		return StatusBadRequest
	case stderrors.Is(err, ErrAuthentication):
		return StatusUnauthorized
	case stderrors.Is(err, ErrForbiddenAction):
		return StatusForbidden
	case stderrors.Is(err, ErrThrottling):
		return StatusTooManyRequests
	default:
		return StatusInternal
	}
}

// NewEntityNotFound reports that a lookup for the given entity yielded
// nothing. The id may be empty when the lookup was not by id.
func NewEntityNotFound(entity, id string) error {
	message := fmt.Sprintf("%s not found", entity)
	if id != "" {
		message = fmt.Sprintf("%s with ID %s not found", entity, id)
	}
	return &DomainError{kind: ErrEntityNotFound, message: message, Entity: entity, Identifier: id}
}

// NewEntityAlreadyExists reports a uniqueness violation on the named
// identifier (e.g. "email").
func NewEntityAlreadyExists(entity, identifier string) error {
	message := fmt.Sprintf("%s already exists", entity)
	if identifier != "" {
		message = fmt.Sprintf("%s with this %s already exists", entity, identifier)
	}
	return &DomainError{kind: ErrEntityAlreadyExists, message: message, Entity: entity, Identifier: identifier}
}

// NewInvalidInput reports malformed or missing required input detected
// before the domain invariants are even consulted.
func NewInvalidInput(message string) error {
	return &DomainError{kind: ErrInvalidInput, message: message}
}

// NewInvalidValueObject reports that a value object constructor
// rejected its input.
func NewInvalidValueObject(message string) error {
	return &DomainError{kind: ErrInvalidValueObject, message: message}
}

// NewAuthentication is reserved; no current use case produces it.
func NewAuthentication(message string) error {
	return &DomainError{kind: ErrAuthentication, message: message}
}

// NewForbiddenAction is reserved; no current use case produces it.
func NewForbiddenAction(message string) error {
	return &DomainError{kind: ErrForbiddenAction, message: message}
}

// NewThrottling is reserved for the rate-limit integration point.
func NewThrottling(message string) error {
	return &DomainError{kind: ErrThrottling, message: message}
}

// NewInvalidThrottleIdentifier is reserved for the rate-limit
// integration point.
func NewInvalidThrottleIdentifier() error {
	return &DomainError{kind: ErrInvalidThrottleIdentifier, message: "throttle identifier cannot be empty"}
}
