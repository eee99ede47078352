package errors

import (
	"fmt"
	"net/http"
)

// ErrorBuilder provides a fluent API for creating ClassifiedError instances.
type ErrorBuilder struct {
	category ErrorCategory
	severity ErrorSeverity
	status   int
	message  string
	cause    error
	context  ErrorContext
}

// NewError creates a new ErrorBuilder with the specified category and message.
func NewError(category ErrorCategory, message string) *ErrorBuilder {
	return &ErrorBuilder{
		category: category,
		severity: SeverityError,
		message:  message,
		context:  make(ErrorContext),
	}
}

// WrapError creates a new ErrorBuilder that wraps an existing error.
func WrapError(err error, category ErrorCategory, message string) *ErrorBuilder {
	return &ErrorBuilder{
		category: category,
		severity: SeverityError,
		message:  message,
		cause:    err,
		context:  make(ErrorContext),
	}
}

// WithSeverity sets the error severity.
func (b *ErrorBuilder) WithSeverity(severity ErrorSeverity) *ErrorBuilder {
	b.severity = severity
	return b
}

// WithStatus sets the HTTP status the error should be rendered with.
func (b *ErrorBuilder) WithStatus(status int) *ErrorBuilder {
	b.status = status
	return b
}

// WithContext adds a context key-value pair.
func (b *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	b.context = b.context.Set(key, value)
	return b
}

// Fatal sets the severity to fatal.
func (b *ErrorBuilder) Fatal() *ErrorBuilder {
	return b.WithSeverity(SeverityFatal)
}

// Warning sets the severity to warning.
func (b *ErrorBuilder) Warning() *ErrorBuilder {
	return b.WithSeverity(SeverityWarning)
}

// Build creates the final ClassifiedError.
func (b *ErrorBuilder) Build() *ClassifiedError {
	return &ClassifiedError{
		category: b.category,
		severity: b.severity,
		status:   b.status,
		message:  b.message,
		cause:    b.cause,
		context:  b.context,
	}
}

// Convenience constructors for common error patterns

// ConfigError creates a configuration error.
func ConfigError(message string) *ErrorBuilder {
	return NewError(CategoryConfig, message).Fatal()
}

// ValidationError creates a request validation error (rendered as 422).
func ValidationError(message string) *ErrorBuilder {
	return NewError(CategoryValidation, message).Warning()
}

// HTTPFault creates an explicit fault that is rendered with the given status and
// a {"detail": message} body.
func HTTPFault(status int, message string) *ErrorBuilder {
	return NewError(CategoryFault, message).WithStatus(status)
}

// StoreError wraps a relational store failure; message names the failed operation.
func StoreError(err error, message string) *ErrorBuilder {
	return WrapError(err, CategoryStore, message)
}

// RuntimeError creates a runtime error.
func RuntimeError(message string) *ErrorBuilder {
	return NewError(CategoryRuntime, message)
}

// FromPanic converts a recovered panic value into a runtime error whose message is
// the panic text.
func FromPanic(rec any) *ClassifiedError {
	if err, ok := rec.(error); ok {
		return RuntimeError(err.Error()).WithStatus(http.StatusInternalServerError).Build()
	}
	return RuntimeError(fmt.Sprint(rec)).WithStatus(http.StatusInternalServerError).Build()
}
