package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation marks errors produced by ValidationErrors.
var ErrValidation = errors.New("validation failed")

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors accumulates field errors.
type ValidationErrors struct {
	Errors []FieldError
}

// AddMessage records a field error.
func (v *ValidationErrors) AddMessage(field, message string) {
	v.Errors = append(v.Errors, FieldError{Field: field, Message: message})
}

// Err returns nil when nothing was recorded.
func (v *ValidationErrors) Err() error {
	if v == nil || len(v.Errors) == 0 {
		return nil
	}
	return v
}

func (v *ValidationErrors) Error() string {
	parts := make([]string, 0, len(v.Errors))
	for _, fe := range v.Errors {
		parts = append(parts, fe.Error())
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

// Unwrap lets errors.Is match ErrValidation.
func (v *ValidationErrors) Unwrap() error {
	return ErrValidation
}
