package errors

import (
	"errors"
	"fmt"
)

// ValidationError covers malformed user input (dates, times, party
// sizes). Always recoverable: re-prompt in conversation, 400 at the API.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// RuleViolation carries a human-readable reason for a business-rule
// rejection (time window, capacity). It is an expected outcome, not a
// defect, and the reason is meant to be shown to the user as-is.
type RuleViolation struct {
	Reason string
}

func (e *RuleViolation) Error() string { return e.Reason }

func NewRuleViolation(reason string) *RuleViolation {
	return &RuleViolation{Reason: reason}
}

// ConflictError signals that the persistence layer detected a race
// between check and write (e.g. a table double-booked).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// ConfigurationError covers unknown menu codes, unknown extras and the
// like: fatal for the current request, logged, generic message to the user.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

func NewConfiguration(message string) *ConfigurationError {
	return &ConfigurationError{Message: message}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsRuleViolation(err error) bool {
	var v *RuleViolation
	return errors.As(err, &v)
}

func IsConflict(err error) bool {
	var v *ConflictError
	return errors.As(err, &v)
}

func IsConfiguration(err error) bool {
	var v *ConfigurationError
	return errors.As(err, &v)
}
