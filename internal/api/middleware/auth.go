package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"Selah/internal/auth"
)

// Context keys for storing actor information
type contextKey string

const (
	ActorIDKey   contextKey = "actor_id"
	JWTClaimsKey contextKey = "jwt_claims"
)

// AuthMiddleware enforces bearer-token authentication for mutation routes.
// Reads tolerate anonymity via OptionalAuth; writes go through RequireAuth.
type AuthMiddleware struct {
	secret []byte
	logger *slog.Logger
}

// NewAuthMiddleware creates the middleware with the shared HS256 secret.
func NewAuthMiddleware(secret []byte, logger *slog.Logger) *AuthMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthMiddleware{secret: secret, logger: logger}
}

// RequireAuth ensures the caller presents a valid token. On success the
// actor id (the token's sub claim) is injected into the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeAuthError(w, "Missing or malformed Authorization header")
			return
		}

		claims, err := auth.ParseAndVerify(token, m.secret)
		if err != nil {
			m.logger.Warn("auth failure",
				"ip", r.RemoteAddr,
				"method", r.Method,
				"path", r.URL.Path,
				"error", err)
			writeAuthError(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), ActorIDKey, claims.Subject)
		ctx = context.WithValue(ctx, JWTClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth loads actor identity when a valid token is present but never
// rejects. Metadata reads must work identically for anonymous callers.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := auth.ParseAndVerify(token, m.secret)
		if err != nil {
			// Invalid token on an optional route degrades to anonymous.
			m.logger.Debug("optional auth failed", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), ActorIDKey, claims.Subject)
		ctx = context.WithValue(ctx, JWTClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

// GetActorID extracts the authenticated actor id from the request context.
// Returns empty string if not authenticated.
func GetActorID(r *http.Request) string {
	id, _ := r.Context().Value(ActorIDKey).(string)
	return id
}

// ActorIDFromContext is the context-level accessor for service layers.
func ActorIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ActorIDKey).(string)
	return id
}

// SetTestActorID injects an actor id for tests that bypass token issuance.
func SetTestActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, ActorIDKey, actorID)
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized","message":"` + message + `"}`))
}
