package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tabscan/tabscan/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for storing the authenticated user ID.
	UserIDKey contextKey = "user_id"
	// EmailKey is the context key for storing the authenticated user's email.
	EmailKey contextKey = "email"
)

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetEmail extracts the user email from the context.
// Returns empty string if not found.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// bearerToken extracts the token from an Authorization header, or "" when
// the header is absent or malformed.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// RequireAuth returns middleware that validates JWT bearer tokens and
// rejects unauthenticated requests. Valid claims are added to the request
// context.
func RequireAuth(jwtManager *auth.JWTManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			http.Error(w, auth.ErrMissingToken.Error(), http.StatusUnauthorized)
			return
		}

		claims, err := jwtManager.Validate(token)
		if err != nil {
			http.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, EmailKey, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth returns middleware that validates JWT tokens if present but
// allows requests without authentication. Useful for endpoints that behave
// differently for authenticated users (e.g. persisting scan history).
func OptionalAuth(jwtManager *auth.JWTManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			// Invalid tokens are ignored, not rejected: optional auth.
			if claims, err := jwtManager.Validate(token); err == nil {
				ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
				ctx = context.WithValue(ctx, EmailKey, claims.Email)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}
