package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrValidation          = errors.New("validation error")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrConflict            = errors.New("conflict")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrNotConfigured       = errors.New("not configured")
)

// Specific failures of the stall lifecycle. Each wraps its family sentinel,
// so errors.Is matches both the specific and the generic error.
var (
	ErrPhotoNotFound    = fmt.Errorf("photo: %w", ErrNotFound)
	ErrNoActiveOpening  = fmt.Errorf("no active opening: %w", ErrConflict)
	ErrStallOpen        = fmt.Errorf("stall is open: %w", ErrConflict)
	ErrAlreadyOpen      = fmt.Errorf("stall already open: %w", ErrConflict)
	ErrConcurrentUpdate = fmt.Errorf("concurrent update: %w", ErrConflict)
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

// HasField reports whether any field error refers to field.
func (e *ValidationError) HasField(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

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

// ProviderError reports a failed call to an external analysis capability.
// It matches both ErrProviderUnavailable and the underlying cause.
type ProviderError struct {
	Provider string
	Op       string
	Key      string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Provider, e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() []error { return []error{ErrProviderUnavailable, e.Err} }

// Machine-readable error codes exposed to callers.
const (
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeValidation       = "VALIDATION"
	CodeMissingPhotos    = "MISSING_PHOTOS"
	CodeMissingLocation  = "MISSING_LOCATION"
	CodeMissingInventory = "MISSING_INVENTORY"
	CodePhotoNotFound    = "PHOTO_NOT_FOUND"
	CodeProviderError    = "PROVIDER_ERROR"
	CodeEnvMissing       = "ENV_MISSING"
	CodeNotFound         = "NOT_FOUND"
	CodeNoOpen           = "NO_OPEN"
	CodeStallOpen        = "STALL_OPEN"
	CodeAlreadyOpen      = "ALREADY_OPEN"
	CodeConflict         = "CONFLICT"
	CodeInternal         = "INTERNAL"
)

// ErrorCode maps an error to its stable machine-readable code.
// Specific errors are checked before their families.
func ErrorCode(err error) string {
	var ve *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &ve):
		return validationCode(ve)
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrPhotoNotFound):
		return CodePhotoNotFound
	case errors.Is(err, ErrProviderUnavailable):
		return CodeProviderError
	case errors.Is(err, ErrNotConfigured):
		return CodeEnvMissing
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrNoActiveOpening):
		return CodeNoOpen
	case errors.Is(err, ErrStallOpen):
		return CodeStallOpen
	case errors.Is(err, ErrAlreadyOpen):
		return CodeAlreadyOpen
	case errors.Is(err, ErrConflict), errors.Is(err, ErrAlreadyExists):
		return CodeConflict
	case errors.Is(err, ErrValidation):
		return CodeValidation
	default:
		return CodeInternal
	}
}

// validationCode narrows the generic VALIDATION code for the check-in
// preconditions the mobile client reports individually.
func validationCode(ve *ValidationError) string {
	switch {
	case ve.HasField("stall_photo_key"), ve.HasField("products_photo_key"):
		return CodeMissingPhotos
	case ve.HasField("lat"), ve.HasField("lng"):
		return CodeMissingLocation
	case ve.HasField("inventory_text"):
		return CodeMissingInventory
	default:
		return CodeValidation
	}
}
