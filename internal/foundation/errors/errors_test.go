package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "config.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid configuration" {
			t.Errorf("expected message 'invalid configuration', got %s", err.Message())
		}

		file, exists := err.Context().GetString("file")
		if !exists || file != "config.yaml" {
			t.Errorf("expected context file=config.yaml, got %v", file)
		}
	})

	t.Run("Error detection", func(t *testing.T) {
		err := ConfigError("test error").Build()

		if !HasCategory(err, CategoryConfig) {
			t.Error("expected error to have config category")
		}
		if HasCategory(errors.New("plain"), CategoryConfig) {
			t.Error("expected unclassified error to have no category")
		}
		if !err.IsFatal() {
			t.Error("expected config error to be fatal")
		}
	})

	t.Run("Detection through fmt wrapping", func(t *testing.T) {
		cause := errors.New("connection refused")
		inner := StoreError(cause, "list items").Build()
		wrapped := fmt.Errorf("handler: %w", inner)

		if !HasCategory(wrapped, CategoryStore) {
			t.Errorf("expected store category through wrapping, got %v", wrapped)
		}
		if !errors.Is(wrapped, cause) {
			t.Error("expected cause to be reachable through the store error")
		}
		if got := inner.Detail(); got != "list items: connection refused" {
			t.Errorf("Detail() = %q", got)
		}
	})
}

func TestErrorBuilder(t *testing.T) {
	t.Run("Fluent API", func(t *testing.T) {
		originalErr := errors.New("connection refused")
		err := WrapError(originalErr, CategoryStore, "insert item").
			Warning().
			WithContext("driver", "postgres").
			Build()

		if err.Category() != CategoryStore {
			t.Errorf("expected category %s, got %s", CategoryStore, err.Category())
		}
		if err.Severity() != SeverityWarning {
			t.Errorf("expected severity %s, got %s", SeverityWarning, err.Severity())
		}
		if !errors.Is(err, originalErr) {
			t.Error("expected wrapped cause to be reachable via errors.Is")
		}
		if got := err.Detail(); got != "insert item: connection refused" {
			t.Errorf("Detail() = %q", got)
		}
		if got := err.Error(); got != "[store:warning] insert item: connection refused" {
			t.Errorf("Error() = %q", got)
		}
	})

	t.Run("HTTP fault carries status", func(t *testing.T) {
		err := HTTPFault(http.StatusInternalServerError, "Intentional error for alerting").Build()
		if err.Status() != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", err.Status())
		}
		if err.Detail() != "Intentional error for alerting" {
			t.Errorf("unexpected detail %q", err.Detail())
		}
	})

	t.Run("WithContext does not mutate original", func(t *testing.T) {
		base := ValidationError("bad body").Build()
		derived := base.WithContext("field", "name")

		if _, ok := base.Context().Get("field"); ok {
			t.Error("base error context was mutated")
		}
		if v, _ := derived.Context().GetString("field"); v != "name" {
			t.Errorf("derived context field = %q", v)
		}
	})
}

func TestFromPanic(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		detail string
	}{
		{"string panic", "boom", "boom"},
		{"error panic", errors.New("runtime error: integer divide by zero"), "runtime error: integer divide by zero"},
		{"other value", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromPanic(tt.value)
			if err.Category() != CategoryRuntime {
				t.Errorf("category = %s, want runtime", err.Category())
			}
			if err.Detail() != tt.detail {
				t.Errorf("detail = %q, want %q", err.Detail(), tt.detail)
			}
			if err.Status() != http.StatusInternalServerError {
				t.Errorf("status = %d, want 500", err.Status())
			}
		})
	}
}

func TestErrorContextMerge(t *testing.T) {
	var empty ErrorContext
	other := ErrorContext{"a": 1}
	if got := empty.Merge(other); got["a"] != 1 {
		t.Errorf("merge into nil lost value: %v", got)
	}

	left := ErrorContext{"a": 1, "b": 2}
	merged := left.Merge(ErrorContext{"b": 3})
	if merged["a"] != 1 || merged["b"] != 3 {
		t.Errorf("merge precedence wrong: %v", merged)
	}
	if left["b"] != 2 {
		t.Errorf("merge mutated receiver: %v", left)
	}
}
