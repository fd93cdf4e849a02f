package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testTokenValidator struct {
	validTokens map[string]uuid.UUID
}

func newTestTokenValidator() *testTokenValidator {
	return &testTokenValidator{validTokens: make(map[string]uuid.UUID)}
}

func (v *testTokenValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	userID, ok := v.validTokens[tokenString]
	if !ok {
		return nil, fmt.Errorf("invalid token")
	}
	return &testClaims{userID: userID, expiry: time.Unix(1900000000, 0)}, nil
}

type testClaims struct {
	userID uuid.UUID
	expiry time.Time
}

func (c *testClaims) GetUserID() uuid.UUID { return c.userID }
func (c *testClaims) GetExpiry() time.Time { return c.expiry }

func serve(t *testing.T, v TokenValidator, header string) (*httptest.ResponseRecorder, *Session) {
	t.Helper()
	var seen *Session
	handler := AuthMiddleware(v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := SessionFrom(r.Context())
		require.True(t, ok)
		seen = &s
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/resumes", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, seen
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	v := newTestTokenValidator()
	userID := uuid.New()
	v.validTokens["valid-token"] = userID

	for _, header := range []string{"Bearer valid-token", "bearer valid-token", "BEARER   valid-token"} {
		rec, s := serve(t, v, header)
		assert.Equal(t, http.StatusNoContent, rec.Code, header)
		require.NotNil(t, s)
		assert.Equal(t, userID, s.UserID)
		assert.Equal(t, time.Unix(1900000000, 0), s.ExpiresAt)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	v := newTestTokenValidator()
	v.validTokens["valid-token"] = uuid.New()
	v.validTokens["nil-user"] = uuid.Nil

	tests := map[string]string{
		"missing header":  "",
		"no scheme":       "valid-token",
		"wrong scheme":    "Basic valid-token",
		"extra parts":     "Bearer valid-token extra",
		"scheme only":     "Bearer",
		"unknown token":   "Bearer nope",
		"nil user in jwt": "Bearer nil-user",
	}
	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			rec, s := serve(t, v, header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, s)
			assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestGetUserID(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithSession(req.Context(), Session{UserID: userID}))

	got, err := GetUserID(req)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestGetUserID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	userID, err := GetUserID(req)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, userID)
}

func TestSessionFrom_ForeignValue(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey{}, "not a session")
	_, ok := SessionFrom(ctx)
	assert.False(t, ok)
}
