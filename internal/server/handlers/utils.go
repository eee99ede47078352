package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	ferrors "git.home.luguber.info/inful/itemsvc/internal/foundation/errors"
	"git.home.luguber.info/inful/itemsvc/internal/logfields"
)

// writeJSON serializes v into a buffer and writes it with the given status code and
// a JSON Content-Type. Nothing is written when encoding fails; the encode error is
// returned as an internal error for the caller's adapter to render. A failed body
// write is only logged, since the status line has already been sent.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(v); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "encode response").Build()
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("failed writing JSON response body", logfields.Error(err))
	}
	return nil
}
