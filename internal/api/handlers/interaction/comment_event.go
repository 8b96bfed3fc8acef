package interaction

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"Selah/internal/api/handlers"
	"Selah/internal/api/middleware"
	"Selah/internal/core/interactions"
)

// CommentEventInput records a comment lifecycle event from the comment
// subsystem. Bodies are not stored here, only the countable fact.
type CommentEventInput struct {
	Action string `json:"action" validate:"required,oneof=created removed"`
}

// CommentEventHandler keeps the comment counter in step with the external
// comment subsystem
type CommentEventHandler struct {
	service  interactions.Service
	validate *validator.Validate
}

// NewCommentEventHandler creates a new comment event handler
func NewCommentEventHandler(service interactions.Service) *CommentEventHandler {
	return &CommentEventHandler{
		service:  service,
		validate: validator.New(),
	}
}

// HandleCommentEvent applies a created/removed comment fact.
// POST /content/{contentType}/{contentId}/comment-event
//
// Request body: { "action": "created" | "removed" }
func (h *CommentEventHandler) HandleCommentEvent(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetActorID(r)
	if actorID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	var input CommentEventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "action must be 'created' or 'removed'")
		return
	}

	ref := contentRef(chi.URLParam(r, "contentType"), chi.URLParam(r, "contentId"))

	var (
		count int64
		err   error
	)
	if input.Action == "created" {
		count, err = h.service.RecordComment(r.Context(), actorID, ref)
	} else {
		count, err = h.service.RemoveComment(r.Context(), actorID, ref)
	}
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"commentCount": count,
	})
}
