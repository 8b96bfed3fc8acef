package routes

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"Selah/internal/realtime"
)

// RegisterRealtimeRoutes mounts the websocket endpoint clients use to follow
// live counter updates. Subscription management happens over the socket
// itself, so no auth middleware is involved here.
func RegisterRealtimeRoutes(r chi.Router, hub *realtime.Hub, logger *slog.Logger) {
	r.Get("/ws", realtime.ServeWS(hub, logger))
}
