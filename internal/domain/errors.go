package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound             = errors.New("not found")
	ErrAlreadyExists        = errors.New("already exists")
	ErrValidation           = errors.New("validation error")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrConflict             = errors.New("conflict")
	ErrDuplicateSlug        = errors.New("duplicate slug")
	ErrRollbackNotAvailable = errors.New("rollback not available")
	ErrAuditFailed          = errors.New("audit log append failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// DuplicateSlugError reports that a derived slug already belongs to another plan.
// It matches both ErrDuplicateSlug and ErrAlreadyExists.
type DuplicateSlugError struct {
	Slug string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("slug %q already in use", e.Slug)
}

func (e *DuplicateSlugError) Unwrap() []error {
	return []error{ErrDuplicateSlug, ErrAlreadyExists}
}

// AuditWarning is returned next to a committed mutation when the audit entry
// could not be appended under the best-effort audit policy.
// The mutation itself is durable; only the history record is missing.
type AuditWarning struct {
	EntityID string
	Action   AuditAction
	Err      error
}

func (w *AuditWarning) Error() string {
	return fmt.Sprintf("%s %s committed without audit entry: %v", w.Action, w.EntityID, w.Err)
}

func (w *AuditWarning) Unwrap() []error { return []error{ErrAuditFailed, w.Err} }
