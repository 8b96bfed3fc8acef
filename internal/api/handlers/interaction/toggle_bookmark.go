package interaction

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Selah/internal/api/handlers"
	"Selah/internal/api/middleware"
	"Selah/internal/core/interactions"
)

// ToggleBookmarkHandler handles bookmark toggles
type ToggleBookmarkHandler struct {
	service interactions.Service
}

// NewToggleBookmarkHandler creates a new toggle bookmark handler
func NewToggleBookmarkHandler(service interactions.Service) *ToggleBookmarkHandler {
	return &ToggleBookmarkHandler{service: service}
}

// HandleToggleBookmark flips the caller's bookmark state on a content item
// POST /content/{contentType}/{contentId}/bookmark
func (h *ToggleBookmarkHandler) HandleToggleBookmark(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetActorID(r)
	if actorID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	ref := contentRef(chi.URLParam(r, "contentType"), chi.URLParam(r, "contentId"))
	result, err := h.service.ToggleBookmark(r.Context(), actorID, ref)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"bookmarked":    result.Active,
		"bookmarkCount": result.Count,
	})
}
