// Package shared contains common domain types, errors, and events that are
// used across all domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")

	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyValue      = errors.New("value cannot be empty")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrInvalidFormat   = errors.New("invalid format")

	// Capacity errors
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// Persistence errors
	ErrIO = errors.New("i/o error")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "student", "roster", "textfile"
	Op      string // Operation that failed, e.g., "Register", "Decode"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Student domain errors
var (
	ErrStudentNotFound    = NewDomainError("student", "Find", ErrNotFound, "student not found")
	ErrDuplicateStudentID = NewDomainError("student", "Register", ErrAlreadyExists, "student id already exists")
	ErrInvalidStudentID   = NewDomainError("student", "Validate", ErrInvalidInput, "student id must be positive")
	ErrInvalidName        = NewDomainError("student", "Validate", ErrEmptyValue, "student name must not be empty")
	ErrInvalidNationalID  = NewDomainError("student", "Validate", ErrValidation, "national id must be exactly 14 digits")
)

// Roster errors
var (
	ErrRosterFull = NewDomainError("roster", "Add", ErrCapacityExceeded, "roster is at maximum capacity")
)

// Course and study-plan errors
var (
	ErrInvalidGrade       = NewDomainError("course", "Validate", ErrValueOutOfRange, "grade must be between 0 and 100")
	ErrInvalidCourseName  = NewDomainError("course", "Validate", ErrEmptyValue, "course name must not be empty")
	ErrCourseLimitReached = NewDomainError("course", "Add", ErrCapacityExceeded, "course list is full")
	ErrStudyPlanFull      = NewDomainError("plan", "Add", ErrCapacityExceeded, "study plan is full")
	ErrInvalidPosition    = NewDomainError("student", "RemoveAt", ErrValueOutOfRange, "position is out of range")
)

// Persistence errors
var (
	ErrMalformedRecord = NewDomainError("textfile", "Decode", ErrInvalidFormat, "malformed record line")
	ErrSaveFailed      = NewDomainError("textfile", "Save", ErrIO, "could not write roster file")
)

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if the error is an "already exists" error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsCapacityExceeded checks if the error is a capacity error.
func IsCapacityExceeded(err error) bool {
	return errors.Is(err, ErrCapacityExceeded)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrValueOutOfRange) ||
		errors.Is(err, ErrInvalidFormat)
}
