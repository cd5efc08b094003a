package util

import "strings"

// Machine-readable failure type tags forwarded to the caller.
const (
	TypeValidation = "VALIDATION_ERROR"
	TypeNotFound   = "NOT_FOUND"
	TypeConflict   = "CONFLICT_ERROR"
	TypeCreate     = "CREATE_ERROR"
	TypeUpdate     = "UPDATE_ERROR"
	TypeDelete     = "DELETE_ERROR"
	TypeExternal   = "EXTERNAL_ERROR"
)

// AppError carries a failure type tag plus the aggregated human-readable
// messages, so a client can surface every rule violation at once.
type AppError struct {
	Type     string
	Messages []string
	cause    error
}

func (e *AppError) Error() string {
	if len(e.Messages) > 0 {
		return e.Type + ": " + strings.Join(e.Messages, "; ")
	}
	if e.cause != nil {
		return e.Type + ": " + e.cause.Error()
	}
	return e.Type
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func NewValidationError(messages []string) *AppError {
	return &AppError{Type: TypeValidation, Messages: messages}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Type: TypeNotFound, Messages: []string{message}}
}

func NewConflictError(message string) *AppError {
	return &AppError{Type: TypeConflict, Messages: []string{message}}
}

// NewOperationError wraps a store or dependency failure under one of the
// operation type tags. The cause is kept for logging, not for the caller.
func NewOperationError(typ, message string, cause error) *AppError {
	return &AppError{Type: typ, Messages: []string{message}, cause: cause}
}

func NewExternalError(prefix string, cause error) *AppError {
	msg := prefix
	if cause != nil {
		msg = prefix + ": " + cause.Error()
	}
	return &AppError{Type: TypeExternal, Messages: []string{msg}, cause: cause}
}
