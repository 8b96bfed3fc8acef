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

// RecordViewInput is the engagement payload a client sends with a view event.
type RecordViewInput struct {
	DurationMs  int64   `json:"durationMs" validate:"min=0"`
	ProgressPct float64 `json:"progressPct" validate:"min=0,max=100"`
	IsComplete  bool    `json:"isComplete"`
}

// RecordViewHandler handles view registration
type RecordViewHandler struct {
	service  interactions.Service
	validate *validator.Validate
}

// NewRecordViewHandler creates a new record view handler
func NewRecordViewHandler(service interactions.Service) *RecordViewHandler {
	return &RecordViewHandler{
		service:  service,
		validate: validator.New(),
	}
}

// HandleRecordView registers a qualified view exactly once per actor and
// content item; repeat qualifying events update engagement metadata only.
// POST /content/{contentType}/{contentId}/view
//
// Request body: { "durationMs": 4200, "progressPct": 30.5, "isComplete": false }
func (h *RecordViewHandler) HandleRecordView(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetActorID(r)
	if actorID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	var input RecordViewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "durationMs must be >= 0 and progressPct between 0 and 100")
		return
	}

	ref := contentRef(chi.URLParam(r, "contentType"), chi.URLParam(r, "contentId"))
	engagement := interactions.Engagement{
		DurationMs:  input.DurationMs,
		ProgressPct: input.ProgressPct,
		IsComplete:  input.IsComplete,
	}

	result, err := h.service.RecordView(r.Context(), actorID, ref, engagement)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}
