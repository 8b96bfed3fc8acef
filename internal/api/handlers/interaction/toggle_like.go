package interaction

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Selah/internal/api/handlers"
	"Selah/internal/api/middleware"
	"Selah/internal/core/content"
	"Selah/internal/core/interactions"
)

// ToggleLikeHandler handles like/follow/favorite toggles
type ToggleLikeHandler struct {
	service interactions.Service
}

// NewToggleLikeHandler creates a new toggle like handler
func NewToggleLikeHandler(service interactions.Service) *ToggleLikeHandler {
	return &ToggleLikeHandler{service: service}
}

// HandleToggleLike flips the caller's like state on a content item
// POST /content/{contentType}/{contentId}/like
//
// Response body varies with the content type's vocabulary:
// { "liked": bool, "likeCount": n } or { "following": bool, "followerCount": n }
// or { "favorited": bool, "favoriteCount": n }
func (h *ToggleLikeHandler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetActorID(r)
	if actorID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	ref := contentRef(chi.URLParam(r, "contentType"), chi.URLParam(r, "contentId"))
	result, err := h.service.ToggleLike(r.Context(), actorID, ref)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, toggleResponse(result))
}

// toggleResponse shapes the toggle outcome with vocabulary-specific field
// names so clients see "following"/"followerCount" for artists and
// "favorited"/"favoriteCount" for merch.
func toggleResponse(result *interactions.ToggleResult) map[string]interface{} {
	switch result.Vocabulary {
	case content.VocabularyFollow:
		return map[string]interface{}{
			"following":     result.Active,
			"followerCount": result.Count,
		}
	case content.VocabularyFavorite:
		return map[string]interface{}{
			"favorited":     result.Active,
			"favoriteCount": result.Count,
		}
	default:
		return map[string]interface{}{
			"liked":     result.Active,
			"likeCount": result.Count,
		}
	}
}
