package errors

import (
	"errors"
	"log/slog"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation error", ValidationError("invalid input").Build(), 2},
		{"config error", ConfigError("bad config").Build(), 7},
		{"store error", WrapError(errors.New("refused"), CategoryStore, "connect").Build(), 8},
		{"internal error", NewError(CategoryInternal, "oops").Fatal().Build(), 10},
		{"runtime error", RuntimeError("panic").Build(), 12},
		{"unclassified error", &customError{msg: "unknown error"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.ExitCodeFor(tt.err)
			if got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	tests := []struct {
		name     string
		verbose  bool
		err      error
		expected string
	}{
		{"nil error", false, nil, ""},
		{"config error shows detail", false, ConfigError("invalid database.driver").Build(), "invalid database.driver"},
		{"store error shows category", false, StoreError(errors.New("refused"), "ping failed").Build(), "store: ping failed"},
		{"verbose shows full error", true, StoreError(errors.New("refused"), "ping failed").Build(), "[store:error] ping failed: refused"},
		{"unclassified error", false, &customError{msg: "boom"}, "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewCLIErrorAdapter(tt.verbose, slog.Default())
			if got := adapter.FormatError(tt.err); got != tt.expected {
				t.Errorf("FormatError() = %q, want %q", got, tt.expected)
			}
		})
	}
}

type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}

func TestCLIErrorAdapter_ShouldLog(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, slog.Default())
	if !quiet.shouldLog(ConfigError("bad config").Build()) {
		t.Error("expected fatal errors to be logged")
	}
	if quiet.shouldLog(ValidationError("bad input").Build()) {
		t.Error("expected non-fatal classified errors to stay quiet")
	}
	if !NewCLIErrorAdapter(true, slog.Default()).shouldLog(ValidationError("bad input").Build()) {
		t.Error("expected verbose adapter to log everything")
	}
}
