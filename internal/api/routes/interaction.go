package routes

import (
	"github.com/go-chi/chi/v5"

	"Selah/internal/api/handlers/interaction"
	"Selah/internal/api/middleware"
	"Selah/internal/core/interactions"
)

// RegisterInteractionRoutes registers the content interaction endpoints.
// Mutations require authentication; state reads run under OptionalAuth so
// anonymous callers still see counters; the likers listing is fully public.
func RegisterInteractionRoutes(r chi.Router, service interactions.Service, authMiddleware *middleware.AuthMiddleware) {
	// Initialize handlers
	toggleLikeHandler := interaction.NewToggleLikeHandler(service)
	toggleBookmarkHandler := interaction.NewToggleBookmarkHandler(service)
	recordViewHandler := interaction.NewRecordViewHandler(service)
	recordShareHandler := interaction.NewRecordShareHandler(service)
	commentEventHandler := interaction.NewCommentEventHandler(service)
	getStateHandler := interaction.NewGetStateHandler(service)
	batchStatesHandler := interaction.NewBatchStatesHandler(service)
	listLikersHandler := interaction.NewListLikersHandler(service)

	r.Route("/content", func(r chi.Router) {
		// Mutation endpoints - require authentication
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Post("/{contentType}/{contentId}/like", toggleLikeHandler.HandleToggleLike)
			r.Post("/{contentType}/{contentId}/bookmark", toggleBookmarkHandler.HandleToggleBookmark)
			r.Post("/{contentType}/{contentId}/view", recordViewHandler.HandleRecordView)
			r.Post("/{contentType}/{contentId}/share", recordShareHandler.HandleRecordShare)
			r.Post("/{contentType}/{contentId}/comment-event", commentEventHandler.HandleCommentEvent)
		})

		// Read endpoints - work for anonymous callers too
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.OptionalAuth)
			r.Get("/{contentType}/{contentId}/interactions", getStateHandler.HandleGetState)
			r.Post("/batch", batchStatesHandler.HandleBatchStates)
		})

		// Public endpoints
		r.Get("/{contentType}/{contentId}/likers", listLikersHandler.HandleListLikers)
	})
}
