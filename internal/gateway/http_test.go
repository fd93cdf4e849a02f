package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SaveCreatesThenUpdates(t *testing.T) {
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method+" "+r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var doc types.Document
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
		status := http.StatusOK
		if doc.ID == "" {
			doc.ID = "r1"
			status = http.StatusCreated
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(doc)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", WithToken("tok"))
	ctx := context.Background()

	saved, err := c.SaveResume(ctx, &types.Document{Title: "x"})
	require.NoError(t, err)
	assert.Equal(t, "r1", saved.ID)

	_, err = c.SaveResume(ctx, saved)
	require.NoError(t, err)

	assert.Equal(t, []string{"POST /resumes", "PUT /resumes/r1"}, methods)
}

func TestClient_ErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   Kind
	}{
		{"not found", http.StatusNotFound, KindNotFound},
		{"unprocessable", http.StatusUnprocessableEntity, KindValidation},
		{"bad request", http.StatusBadRequest, KindValidation},
		{"server error", http.StatusInternalServerError, KindNetwork},
		{"unavailable", http.StatusServiceUnavailable, KindNetwork},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "nope"})
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).LoadResume(context.Background(), "abc")
			require.Error(t, err)
			assert.Equal(t, tt.want, KindOf(err))
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).LoadResume(context.Background(), "abc")
	assert.Equal(t, KindNetwork, KindOf(err))
}

func TestClient_LoginAndDelete(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(types.LoginResponse{Token: "issued"})
	})
	mux.HandleFunc("DELETE /resumes/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer issued" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /resumes", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]types.ResumeSummary{{ID: "r1", Title: "One"}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()
	require.NoError(t, c.Login(ctx, "ada@example.com", "password123"))
	require.NoError(t, c.DeleteResume(ctx, "r1"))

	list, err := c.ListResumes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "One", list[0].Title)
}
