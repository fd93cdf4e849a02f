package types

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failedTags returns "Field:tag" for every failed validation in err.
func failedTags(t *testing.T, err error) []string {
	t.Helper()
	var ve validator.ValidationErrors
	require.True(t, errors.As(err, &ve), "expected validator.ValidationErrors, got %T", err)
	tags := make([]string, 0, len(ve))
	for _, fe := range ve {
		tags = append(tags, fe.Field()+":"+fe.Tag())
	}
	return tags
}

func TestAuthRequests_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     interface{ Validate() error }
		wantErr []string
	}{
		{
			name: "register ok without phone",
			req:  &CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "12345678"},
		},
		{
			name:    "register missing name",
			req:     &CreateUserRequest{Email: "jane@example.com", Password: "password123"},
			wantErr: []string{"Name:required"},
		},
		{
			name:    "register bad email and short password",
			req:     &CreateUserRequest{Name: "Jane", Email: "not-an-email", Password: "short"},
			wantErr: []string{"Email:email", "Password:min"},
		},
		{
			name: "login ok",
			req:  &LoginRequest{Email: "jane@example.com", Password: "x"},
		},
		{
			name:    "login missing both",
			req:     &LoginRequest{},
			wantErr: []string{"Email:required", "Password:required"},
		},
		{
			name: "password change ok",
			req:  &UpdatePasswordRequest{CurrentPassword: "old", NewPassword: "new-password"},
		},
		{
			name:    "password change too short",
			req:     &UpdatePasswordRequest{CurrentPassword: "old", NewPassword: "1234567"},
			wantErr: []string{"NewPassword:min"},
		},
		{
			name: "profile ok",
			req:  &UpdateProfileRequest{Name: "Jane Smith", Phone: "555-0100"},
		},
		{
			name:    "profile name too long",
			req:     &UpdateProfileRequest{Name: strings.Repeat("n", 201)},
			wantErr: []string{"Name:max"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ElementsMatch(t, tt.wantErr, failedTags(t, err))
		})
	}
}

func TestLoginResponse_JSON(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	resp := LoginResponse{
		User: &User{
			ID:          uuid.MustParse("6f1c2a7e-1d4b-4a53-9a6e-2f7e3c1b9d10"),
			Name:        "Jane",
			Email:       "jane@example.com",
			PasswordSet: true,
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		Token: "jwt",
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "jwt", raw["token"])
	user := raw["user"].(map[string]any)
	assert.Equal(t, true, user["password_set"])
	assert.Equal(t, "2024-01-02T03:04:05Z", user["created_at"])
	assert.NotContains(t, user, "phone", "empty phone is omitted")
	assert.NotContains(t, user, "password_hash")
}
