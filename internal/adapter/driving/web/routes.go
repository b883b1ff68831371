package web

import "net/http"

// RegisterRoutes registers the GUI routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /{$}", h.Root)

	mux.HandleFunc("GET /items", h.ItemList)
	mux.HandleFunc("POST /items/filter", h.ApplyFilters)
	mux.HandleFunc("POST /items/reset", h.ResetFilters)
	mux.HandleFunc("POST /items/skip-page", h.SkipPage)

	mux.HandleFunc("GET /items/{id}", h.ItemDetail)
	mux.HandleFunc("POST /items/{id}/review", h.SubmitReview)
	mux.HandleFunc("POST /items/{id}/skip", h.SkipItem)

	mux.Handle("GET /static/", http.FileServerFS(staticFS))
}
