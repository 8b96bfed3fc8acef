package interaction

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Selah/internal/api/handlers"
	"Selah/internal/core/interactions"
)

// ListLikersHandler handles liker listing
type ListLikersHandler struct {
	service interactions.Service
}

// NewListLikersHandler creates a new list likers handler
func NewListLikersHandler(service interactions.Service) *ListLikersHandler {
	return &ListLikersHandler{service: service}
}

// HandleListLikers returns actors holding an active like, newest first.
// Public endpoint; no authentication involved.
// GET /content/{contentType}/{contentId}/likers?limit=50&offset=0
func (h *ListLikersHandler) HandleListLikers(w http.ResponseWriter, r *http.Request) {
	// Out-of-range values fall back to service defaults.
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	ref := contentRef(chi.URLParam(r, "contentType"), chi.URLParam(r, "contentId"))
	likers, err := h.service.ListLikers(r.Context(), ref, limit, offset)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if likers == nil {
		likers = []interactions.Liker{}
	}
	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"likers": likers,
	})
}
