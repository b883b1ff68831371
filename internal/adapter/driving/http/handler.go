// Package httphandler implements the JSON API driving adapter: a small
// machine-readable surface next to the HTML GUI, used by the container
// healthcheck and by scripts that want normalized list queries.
package httphandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/evaldash/internal/domain/port/driven"
	"github.com/ericfisherdev/evaldash/internal/query"
)

// Handler is the HTTP driving adapter that serves the JSON API.
type Handler struct {
	client driven.ReviewClient
	logger *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(client driven.ReviewClient, logger *slog.Logger) *Handler {
	return &Handler{client: client, logger: logger}
}

// RegisterRoutes registers all JSON API routes on the provided mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.HandleFunc("GET /api/v1/summary", h.Summary)
	mux.HandleFunc("GET /api/v1/items", h.ListItems)
}

// Health reports the dashboard's own status plus the review backend's
// reachability. The endpoint answers 200 either way; the backend state is
// in the body so the container healthcheck stays green while the backend
// restarts.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	backend := "ok"
	if err := h.client.Health(r.Context()); err != nil {
		h.logger.Warn("review backend unhealthy", "error", err)
		backend = err.Error()
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Backend: backend,
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}

// Summary proxies the review-progress snapshot.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.client.Summary(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch summary", "error", err)
		writeError(w, http.StatusBadGateway, "review backend unavailable")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// ListItems proxies one page of review items. The incoming query is run
// through the parameter codec first, so malformed values degrade to
// defaults and hand-edited URLs reach the backend in normalized form.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	params := query.Decode(r.URL.Query())

	page, err := h.client.ListItems(r.Context(), params)
	if err != nil {
		h.logger.Error("failed to list items", "error", err)
		writeError(w, http.StatusBadGateway, "review backend unavailable")
		return
	}

	writeJSON(w, http.StatusOK, page)
}
