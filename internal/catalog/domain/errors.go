package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the stable, machine-readable classification of a catalog error.
type Kind string

const (
	KindValidation Kind = "ValidationError"
	KindNotFound   Kind = "NotFoundError"
	KindConflict   Kind = "ConflictError"
	KindStorage    Kind = "StorageError"
	KindInternal   Kind = "InternalError"
)

// FieldError describes one validation failure, including the offending value.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Error is the catalog error type. NotFound and Conflict are expected,
// recoverable-by-caller outcomes and propagate unchanged to the boundary;
// storage failures carry their cause for server-side logs only.
type Error struct {
	Kind          Kind
	Message       string
	Fields        []FieldError
	ConflictingID string
	cause         error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Details returns the client-facing structured detail for the error.
// Storage and internal causes are never exposed here.
func (e *Error) Details() map[string]any {
	switch e.Kind {
	case KindValidation:
		if len(e.Fields) == 0 {
			return nil
		}
		return map[string]any{"validationErrors": e.Fields}
	case KindConflict:
		if e.ConflictingID == "" {
			return nil
		}
		return map[string]any{"existingProductId": e.ConflictingID}
	default:
		return nil
	}
}

func NewValidationError(fields ...FieldError) *Error {
	messages := make([]string, len(fields))
	for i, f := range fields {
		messages[i] = f.Message
	}
	return &Error{
		Kind:    KindValidation,
		Message: strings.Join(messages, ", "),
		Fields:  fields,
	}
}

func NewNotFoundError(id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("product with id '%s' not found", id),
	}
}

func NewConflictError(name, existingID string) *Error {
	return &Error{
		Kind:          KindConflict,
		Message:       fmt.Sprintf("a product named '%s' already exists", name),
		ConflictingID: existingID,
	}
}

func NewStorageError(op string, cause error) *Error {
	return &Error{
		Kind:    KindStorage,
		Message: fmt.Sprintf("store operation '%s' failed", op),
		cause:   cause,
	}
}

func NewInternalError(message string, cause error) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: message,
		cause:   cause,
	}
}

// KindOf classifies any error, treating unrecognized errors as internal.
func KindOf(err error) Kind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool   { return KindOf(err) == KindConflict }
func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsStorage(err error) bool    { return KindOf(err) == KindStorage }

// AsError extracts the *Error from err, or nil.
func AsError(err error) *Error {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}
