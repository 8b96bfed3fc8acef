package interaction

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"Selah/internal/api/handlers"
	"Selah/internal/api/middleware"
	"Selah/internal/core/content"
	"Selah/internal/core/interactions"
)

// BatchStatesInput is the request body for a batched state read.
type BatchStatesInput struct {
	ContentType string   `json:"contentType" validate:"required"`
	ContentIDs  []string `json:"contentIds" validate:"required,min=1,max=100"`
}

// batchItem is one entry of the batched response, keyed inline by id so the
// output preserves request order.
type batchItem struct {
	ID string `json:"contentId"`
	interactions.State
}

// BatchStatesHandler handles batched interaction state reads
type BatchStatesHandler struct {
	service  interactions.Service
	validate *validator.Validate
}

// NewBatchStatesHandler creates a new batch states handler
func NewBatchStatesHandler(service interactions.Service) *BatchStatesHandler {
	return &BatchStatesHandler{
		service:  service,
		validate: validator.New(),
	}
}

// HandleBatchStates resolves interaction state for up to 100 items of one
// content type in a single call. Malformed ids are skipped, not fatal.
// POST /content/batch
//
// Request body: { "contentType": "media", "contentIds": ["...", "..."] }
// Response: { "items": [ { "contentId": "...", ...state } ], "skipped": n }
func (h *BatchStatesHandler) HandleBatchStates(w http.ResponseWriter, r *http.Request) {
	var input BatchStatesInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "contentType is required and contentIds must hold 1-100 entries")
		return
	}

	actorID := middleware.GetActorID(r)
	batch, err := h.service.GetStates(r.Context(), actorID, content.Type(input.ContentType), input.ContentIDs)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// Emit items in request order, once per unique id. The service keys its
	// result by canonical id, so ids are canonicalized again for the lookup.
	items := make([]batchItem, 0, len(batch.States))
	seen := make(map[string]bool, len(batch.States))
	for _, raw := range input.ContentIDs {
		id, err := interactions.CanonicalContentID(raw)
		if err != nil {
			continue
		}
		state, ok := batch.States[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		items = append(items, batchItem{ID: id, State: *state})
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":   items,
		"skipped": batch.Skipped,
	})
}
