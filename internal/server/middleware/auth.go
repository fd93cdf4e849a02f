// Package middleware provides HTTP middleware for authentication.
package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type contextKey struct{}

// TokenValidator validates bearer tokens. It is implemented by the server's JWT service.
type TokenValidator interface {
	ValidateToken(tokenString string) (UserIDGetter, error)
}

// UserIDGetter is the part of validated claims the middleware needs.
type UserIDGetter interface {
	GetUserID() uuid.UUID
}

// ExpiryGetter is optionally implemented by claims that carry an expiry.
type ExpiryGetter interface {
	GetExpiry() time.Time
}

// Session is the authenticated caller of one request. It is built by
// AuthMiddleware and lives only as long as the request context.
type Session struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// WithSession returns ctx carrying s.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// SessionFrom returns the session stored in ctx.
func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKey{}).(Session)
	return s, ok
}

// AuthMiddleware rejects requests without a valid "Bearer <token>" header and
// stores the caller's Session in the request context.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w)
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				unauthorized(w)
				return
			}

			s := Session{UserID: claims.GetUserID()}
			if s.UserID == uuid.Nil {
				unauthorized(w)
				return
			}
			if e, ok := claims.(ExpiryGetter); ok {
				s.ExpiresAt = e.GetExpiry()
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}

// GetUserID returns the authenticated user ID of the request.
func GetUserID(r *http.Request) (uuid.UUID, error) {
	s, ok := SessionFrom(r.Context())
	if !ok {
		return uuid.Nil, fmt.Errorf("user ID not found in request context")
	}
	return s.UserID, nil
}

// bearerToken parses a case-insensitive "Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="resume-builder"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
