package stall

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
)

// CreateStallInput holds the parameters for registering a stall.
type CreateStallInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateStallInput) Validate() error {
	if fe := validateName(i.Name); fe != nil {
		return &domain.ValidationError{Errors: []domain.FieldError{*fe}}
	}
	return nil
}

// RenameStallInput holds the parameters for renaming a stall.
type RenameStallInput struct {
	StallID uuid.UUID
	Name    string
}

// Validate checks all fields and collects all errors.
func (i RenameStallInput) Validate() error {
	var errs []domain.FieldError
	if i.StallID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "stall_id", Message: "required"})
	}
	if fe := validateName(i.Name); fe != nil {
		errs = append(errs, *fe)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(name string) *domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return &domain.FieldError{Field: "name", Message: "required"}
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return &domain.FieldError{Field: "name", Message: "max 80 characters"}
	}
	return nil
}
