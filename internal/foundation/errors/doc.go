// Package errors provides foundational, type-safe error primitives used across itemsvc.
//
// This package contains classified error types and helpers for robust error handling,
// including a fluent builder API for constructing ClassifiedError values with context.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, validation, store, fault, etc.)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - ClassifiedError: Structured error with category, severity, status and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - HTTP and CLI adapters for error presentation
//
// The HTTPErrorAdapter is the single place that turns an error into a response body.
// Explicit faults and validation failures are rendered as {"detail": ...}; every other
// failure is rendered as the uniform {"error": "Internal Server Error", "detail": ...}.
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryStore, "list items").
//		WithContext("driver", "postgres").
//		Build()
package errors
