package interaction

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Selah/internal/api/handlers"
	"Selah/internal/api/middleware"
	"Selah/internal/core/interactions"
)

// GetStateHandler handles single-item interaction metadata reads
type GetStateHandler struct {
	service interactions.Service
}

// NewGetStateHandler creates a new get state handler
func NewGetStateHandler(service interactions.Service) *GetStateHandler {
	return &GetStateHandler{service: service}
}

// HandleGetState resolves counters plus the caller's flags for one item.
// Anonymous callers get counters with all flags false.
// GET /content/{contentType}/{contentId}/interactions
func (h *GetStateHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	// Empty actor id is an anonymous read, not an error.
	actorID := middleware.GetActorID(r)

	ref := contentRef(chi.URLParam(r, "contentType"), chi.URLParam(r, "contentId"))
	state, err := h.service.GetState(r.Context(), actorID, ref)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, state)
}
