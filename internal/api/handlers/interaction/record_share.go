package interaction

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Selah/internal/api/handlers"
	"Selah/internal/api/middleware"
	"Selah/internal/core/interactions"
)

// RecordShareHandler handles share registration
type RecordShareHandler struct {
	service interactions.Service
}

// NewRecordShareHandler creates a new record share handler
func NewRecordShareHandler(service interactions.Service) *RecordShareHandler {
	return &RecordShareHandler{service: service}
}

// HandleRecordShare appends a share fact and increments the share counter.
// Shares are not deduplicated; sharing twice counts twice.
// POST /content/{contentType}/{contentId}/share
func (h *RecordShareHandler) HandleRecordShare(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetActorID(r)
	if actorID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	ref := contentRef(chi.URLParam(r, "contentType"), chi.URLParam(r, "contentId"))
	count, err := h.service.RecordShare(r.Context(), actorID, ref)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"shareCount": count,
	})
}
