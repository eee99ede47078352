package errors

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// InternalServerErrorTitle is the fixed "error" field of the uniform failure body.
const InternalServerErrorTitle = "Internal Server Error"

// HTTPErrorAdapter handles error presentation and status code determination for HTTP applications.
type HTTPErrorAdapter struct {
	logger *slog.Logger
}

// NewHTTPErrorAdapter creates a new HTTP error adapter with an optional slog logger.
// If logger is nil, the default package logger will be used.
func NewHTTPErrorAdapter(logger *slog.Logger) *HTTPErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPErrorAdapter{logger: logger}
}

// HTTPErrorResponse is the JSON error payload. Error is only set on the uniform
// internal-failure body.
type HTTPErrorResponse struct {
	Error  string `json:"error,omitempty"`
	Detail string `json:"detail"`
}

// StatusCodeFor determines the HTTP status code for a given error based on
// its classification. Unknown errors map to 500.
func (a *HTTPErrorAdapter) StatusCodeFor(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if c, ok := AsClassified(err); ok {
		if c.Status() != 0 {
			return c.Status()
		}
		switch c.Category() {
		case CategoryValidation:
			return http.StatusUnprocessableEntity
		default:
			return http.StatusInternalServerError
		}
	}

	return http.StatusInternalServerError
}

// IsExplicit reports whether err was produced deliberately by a handler and is
// rendered with the short {"detail": ...} envelope.
func IsExplicit(err error) bool {
	return HasCategory(err, CategoryValidation) || HasCategory(err, CategoryFault)
}

// FormatErrorResponse converts errors into the canonical error payload.
func (a *HTTPErrorAdapter) FormatErrorResponse(err error) HTTPErrorResponse {
	if err == nil {
		return HTTPErrorResponse{}
	}
	c, ok := AsClassified(err)
	if ok && IsExplicit(err) {
		return HTTPErrorResponse{Detail: c.Message()}
	}
	if ok {
		return HTTPErrorResponse{Error: InternalServerErrorTitle, Detail: c.Detail()}
	}
	return HTTPErrorResponse{Error: InternalServerErrorTitle, Detail: err.Error()}
}

// WriteErrorResponse writes a JSON error response and logs with appropriate level.
func (a *HTTPErrorAdapter) WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	status := a.StatusCodeFor(err)
	payload := a.FormatErrorResponse(err)

	b, jerr := json.Marshal(payload)
	if jerr != nil {
		// Fall back to a minimal message
		w.WriteHeader(status)
		_, _ = w.Write([]byte("{\"error\":\"Internal Server Error\"}"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)

	// Structured logging by severity
	if c, ok := AsClassified(err); ok {
		lvl := a.slogLevelFromSeverity(c.Severity())
		a.logger.Log(r.Context(), lvl, c.Error(),
			slog.String("path", r.URL.Path),
			slog.Int("status", status))
		return
	}
	a.logger.ErrorContext(r.Context(), err.Error(),
		slog.String("path", r.URL.Path),
		slog.Int("status", status))
}

// Helper: map severities.
func (a *HTTPErrorAdapter) slogLevelFromSeverity(s ErrorSeverity) slog.Level {
	switch s {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityError, SeverityFatal:
		return slog.LevelError
	default:
		return slog.LevelError
	}
}
