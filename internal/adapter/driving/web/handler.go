// Package web serves the server-rendered dashboard GUI. Each request gets
// its own parameter controller seeded from the request URL; commits travel
// back to the browser as a 303 redirect to the published query, so the URL
// stays the single source of committed state.
package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/evaldash/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/evaldash/internal/adapter/driving/web/templates/pages"
	"github.com/ericfisherdev/evaldash/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/evaldash/internal/application"
	"github.com/ericfisherdev/evaldash/internal/domain/port/driven"
	"github.com/ericfisherdev/evaldash/internal/query"
)

// Handler holds the dependencies for the GUI handlers.
type Handler struct {
	client  driven.ReviewClient
	reviews *application.ReviewService
	logger  *slog.Logger
}

// NewHandler creates a Handler with the required dependencies.
func NewHandler(client driven.ReviewClient, reviews *application.ReviewService, logger *slog.Logger) *Handler {
	return &Handler{
		client:  client,
		reviews: reviews,
		logger:  logger,
	}
}

// Root redirects the landing page to the item list.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/items", http.StatusFound)
}

// ItemList renders the item table for the URL's query parameters. A backend
// fetch failure renders the page with an inline error banner instead of
// failing the request; the filter panel stays usable.
func (h *Handler) ItemList(w http.ResponseWriter, r *http.Request) {
	csrf := ensureCSRFToken(w, r)

	ctrl := query.NewController(nil)
	list := application.NewListService(h.client, ctrl)
	ctrl.Initialize(r.URL.Query())

	page, fetchErr := list.Sync(r.Context())
	if fetchErr != nil {
		h.logger.Error("failed to fetch items", "error", fetchErr)
	}

	summary, err := h.client.Summary(r.Context())
	if err != nil {
		h.logger.Warn("failed to fetch summary", "error", err)
		summary = nil
	}

	vm := toListPage(ctrl.Committed(), ctrl.Draft(), page, summary, fetchErr, csrf)
	h.render(w, r, "Items", pages.ItemList(vm))
}

// ApplyFilters commits the posted filter form: the form fields are merged
// into the draft as a patch, committed (which resets the page to 1), and
// the published query becomes the redirect target.
func (h *Handler) ApplyFilters(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid CSRF token", http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	current, err := url.ParseQuery(r.PostForm.Get("current_query"))
	if err != nil {
		current = url.Values{}
	}

	var published url.Values
	ctrl := query.NewController(query.PublisherFunc(func(q url.Values) { published = q }))
	ctrl.Initialize(current)
	ctrl.UpdateDraft(filterPatch(r.PostForm))
	ctrl.Commit()

	http.Redirect(w, r, listTarget(published), http.StatusSeeOther)
}

// ResetFilters discards all filters and redirects to the default view.
func (h *Handler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid CSRF token", http.StatusForbidden)
		return
	}

	var published url.Values
	ctrl := query.NewController(query.PublisherFunc(func(q url.Values) { published = q }))
	ctrl.Reset()

	http.Redirect(w, r, listTarget(published), http.StatusSeeOther)
}

// ItemDetail renders one item with its scores and the review form.
func (h *Handler) ItemDetail(w http.ResponseWriter, r *http.Request) {
	csrf := ensureCSRFToken(w, r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "Bad request", "The item ID must be a number.")
		return
	}

	item, err := h.client.GetItem(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to fetch item", "review_id", id, "error", err)
		h.renderError(w, r, http.StatusBadGateway, "Backend unavailable", "The review API did not respond: "+err.Error())
		return
	}
	if item == nil {
		h.renderError(w, r, http.StatusNotFound, "Item not found", fmt.Sprintf("No review item with ID %d.", id))
		return
	}

	returnQuery, returnVals := parseReturnQuery(r.URL.Query().Get("return"))
	vm := toDetailPage(item, query.Decode(returnVals), h.reviews.ReviewerName(r.Context()), returnQuery, csrf)
	h.render(w, r, fmt.Sprintf("Item #%d", id), pages.ItemDetail(vm))
}

// SubmitReview records the posted human judgment. A missing reviewer name
// re-renders the detail page with an inline form error; success redirects
// back to the list the reviewer came from.
func (h *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid CSRF token", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "Bad request", "The item ID must be a number.")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	returnQuery, returnVals := parseReturnQuery(r.PostForm.Get("return"))
	sub := reviewSubmission(r.PostForm)

	_, err = h.reviews.Submit(r.Context(), id, sub)
	switch {
	case errors.Is(err, application.ErrReviewerNameRequired):
		h.rerenderDetailWithError(w, r, id, sub, returnQuery, returnVals)
	case err != nil:
		h.logger.Error("failed to submit review", "review_id", id, "error", err)
		h.renderError(w, r, http.StatusBadGateway, "Submission failed", "The review API rejected the update: "+err.Error())
	default:
		http.Redirect(w, r, backPath(returnQuery), http.StatusSeeOther)
	}
}

// SkipItem marks one item skipped and returns to the list.
func (h *Handler) SkipItem(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid CSRF token", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "Bad request", "The item ID must be a number.")
		return
	}

	returnQuery, _ := parseReturnQuery(r.FormValue("return"))
	if _, err := h.reviews.Skip(r.Context(), id); err != nil {
		h.logger.Error("failed to skip item", "review_id", id, "error", err)
		h.renderError(w, r, http.StatusBadGateway, "Skip failed", "The review API rejected the update: "+err.Error())
		return
	}

	http.Redirect(w, r, backPath(returnQuery), http.StatusSeeOther)
}

// SkipPage marks the checked items skipped in one bulk request.
func (h *Handler) SkipPage(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid CSRF token", http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	returnQuery, _ := parseReturnQuery(r.PostForm.Get("return"))
	ids := reviewIDs(r.PostForm)

	result, err := h.reviews.SkipAll(r.Context(), ids)
	if err != nil {
		h.logger.Error("failed to skip items", "count", len(ids), "error", err)
		h.renderError(w, r, http.StatusBadGateway, "Skip failed", "The review API rejected the bulk update: "+err.Error())
		return
	}
	if len(result.Errors) > 0 {
		h.logger.Warn("bulk skip partially failed", "updated", result.UpdatedCount, "errors", len(result.Errors))
	}

	http.Redirect(w, r, backPath(returnQuery), http.StatusSeeOther)
}

func (h *Handler) rerenderDetailWithError(w http.ResponseWriter, r *http.Request, id int, sub application.Submission, returnQuery string, returnVals url.Values) {
	item, err := h.client.GetItem(r.Context(), id)
	if err != nil || item == nil {
		h.renderError(w, r, http.StatusBadGateway, "Backend unavailable", "The review API did not respond.")
		return
	}

	csrf := ensureCSRFToken(w, r)
	vm := toDetailPage(item, query.Decode(returnVals), sub.ReviewerName, returnQuery, csrf)
	vm.Form.FormError = "Reviewer name is required."

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	h.renderBody(w, r, fmt.Sprintf("Item #%d", id), pages.ItemDetail(vm))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, title string, content templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.renderBody(w, r, title, content)
}

func (h *Handler) renderBody(w http.ResponseWriter, r *http.Request, title string, content templ.Component) {
	if err := templates.Layout(title, content).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "path", r.URL.Path, "error", err)
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, title, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	h.renderBody(w, r, title, pages.Error(viewmodel.ErrorPage{Title: title, Message: message}))
}

// parseReturnQuery parses the carried list query. It returns both the
// normalized encoded form (safe to embed in paths and hidden fields) and
// the parsed values; junk input degrades to the empty query.
func parseReturnQuery(raw string) (string, url.Values) {
	vals, err := url.ParseQuery(raw)
	if err != nil {
		return "", url.Values{}
	}
	return vals.Encode(), vals
}

func listTarget(published url.Values) string {
	if enc := published.Encode(); enc != "" {
		return "/items?" + enc
	}
	return "/items"
}
