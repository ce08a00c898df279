package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/writermorphosis/writermorphosis-server/internal/service"
)

// ctxKey is the type for context keys to avoid collisions.
type ctxKey string

// sessionIDKey is the context key for the resolved session ID.
const sessionIDKey ctxKey = "sessionID"

// GetSessionID returns the session ID from context.
// Returns a 401 error if the request carried no valid session token.
func GetSessionID(ctx context.Context) (string, error) {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	if !ok || sessionID == "" {
		return "", huma.Error401Unauthorized("Session token required")
	}
	return sessionID, nil
}

// setSessionID stores the session ID in context.
func setSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// sessionMiddleware validates Bearer tokens and stores the session ID in
// context. A missing or invalid token continues without a session; handlers
// that need one use GetSessionID and reject there.
func sessionMiddleware(accounts *service.AccountService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			token := authHeader[7:]
			sessionID, err := accounts.ResolveSession(r.Context(), token)
			if err != nil {
				// Invalid token - continue without session (handler will
				// reject if one is required)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(setSessionID(r.Context(), sessionID)))
		})
	}
}
