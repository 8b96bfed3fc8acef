package interaction

import (
	"errors"
	"log"
	"net/http"

	"Selah/internal/api/handlers"
	"Selah/internal/core/content"
	"Selah/internal/core/interactions"
)

// handleServiceError converts service errors to appropriate HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, interactions.ErrContentNotFound):
		handlers.WriteError(w, http.StatusNotFound, "ContentNotFound", "Content not found")
	case errors.Is(err, content.ErrUnsupportedType):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Unsupported content type")
	case errors.Is(err, interactions.ErrInvalidContentID):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid content id")
	case errors.Is(err, interactions.ErrInvalidActor):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Invalid actor identity")
	case errors.Is(err, interactions.ErrActorRequired):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
	case errors.Is(err, interactions.ErrConflict):
		handlers.WriteError(w, http.StatusConflict, "WriteConflict", "Concurrent write conflict, please retry")
	default:
		// Internal server error - log the actual error for debugging
		log.Printf("Interaction handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}

// contentRef builds the content reference from chi URL params.
func contentRef(contentType, contentID string) interactions.ContentRef {
	return interactions.ContentRef{
		Type: content.Type(contentType),
		ID:   contentID,
	}
}
