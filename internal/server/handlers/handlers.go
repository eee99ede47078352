package handlers

import (
	"log/slog"
	"net/http"

	ferrors "git.home.luguber.info/inful/itemsvc/internal/foundation/errors"
	"git.home.luguber.info/inful/itemsvc/internal/items"
	"git.home.luguber.info/inful/itemsvc/internal/logfields"
	"git.home.luguber.info/inful/itemsvc/internal/server/responses"
)

// IntentionalErrorDetail is the detail returned by the error-simulation endpoints.
const IntentionalErrorDetail = "Intentional error for alerting"

// HandlerFunc is an HTTP handler that reports failures through its error result.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Adapt converts fn into an http.Handler. A returned error is written through adapter.
func Adapt(adapter *ferrors.HTTPErrorAdapter, fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			adapter.WriteErrorResponse(w, r, err)
		}
	})
}

// Handlers serves the itemsvc API routes.
type Handlers struct {
	store  items.Store
	logger *slog.Logger
}

// New creates handlers backed by store. A nil logger uses slog.Default.
func New(store items.Store, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{store: store, logger: logger}
}

// HandleHealth reports liveness.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) error {
	h.logger.InfoContext(r.Context(), "Health check endpoint called")
	return writeJSON(w, http.StatusOK, responses.HealthResponse{Status: "ok"})
}

// HandleListItems returns all stored items.
func (h *Handlers) HandleListItems(w http.ResponseWriter, r *http.Request) error {
	list, err := h.store.List(r.Context())
	if err != nil {
		return err
	}
	h.logger.DebugContext(r.Context(), "Items listed", logfields.ItemCount(len(list)))
	return writeJSON(w, http.StatusOK, responses.ItemsResponse{Items: list})
}

// HandleCreateItem validates the request body and stores the item name. Invalid
// bodies never reach the store.
func (h *Handlers) HandleCreateItem(w http.ResponseWriter, r *http.Request) error {
	in, err := items.DecodeNewItem(r.Body)
	if err != nil {
		return err
	}
	if err := h.store.Insert(r.Context(), in.Name); err != nil {
		return err
	}
	h.logger.DebugContext(r.Context(), "Item inserted", logfields.ItemName(in.Name))
	return writeJSON(w, http.StatusOK, responses.MessageResponse{Message: "Item created successfully"})
}

// HandleError fails deliberately with an explicit 500 fault. It backs /error and /boom.
func (h *Handlers) HandleError(http.ResponseWriter, *http.Request) error {
	return ferrors.HTTPFault(http.StatusInternalServerError, IntentionalErrorDetail).Build()
}

// HandleBoomUnhandled panics with an integer division by zero, leaving the failure to
// the recovery middleware.
func (h *Handlers) HandleBoomUnhandled(w http.ResponseWriter, _ *http.Request) error {
	zero := 0
	n := 1 / zero
	return writeJSON(w, http.StatusOK, map[string]int{"result": n})
}
