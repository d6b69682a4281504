package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStoresTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "alice@example.com", req["email"])
			json.NewEncoder(w).Encode(TokenPair{AccessToken: "acc-1", RefreshToken: "ref-1"})
		case "/api/ideas":
			// subsequent calls must carry the bearer token
			assert.Equal(t, "Bearer acc-1", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode([]Idea{{ID: "1", Name: "Solar Kiln"}})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	assert.False(t, c.IsLoggedIn())

	require.NoError(t, c.Login(context.Background(), "alice@example.com", "password123"))
	assert.True(t, c.IsLoggedIn())

	ideas, err := c.ListIdeas(context.Background())
	require.NoError(t, err)
	require.Len(t, ideas, 1)
	assert.Equal(t, "Solar Kiln", ideas[0].Name)

	c.Logout()
	assert.False(t, c.IsLoggedIn())
}

func TestErrorEnvelopeDecoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "forbidden", "detail": "only the creator may change privacy"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.SetFilePrivacy(context.Background(), "f-1", true)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "forbidden", apiErr.Code)
	assert.Contains(t, apiErr.Detail, "creator")
}

func TestUnreachableServerIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL)
	err := c.Ping(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestDisplayURLRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/images/img-1/display-url", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"url": "https://bucket.s3.us-east-1.amazonaws.com/idea-files/42-x/images/1-a.png?X-Amz-Signature=abc"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	url, err := c.ImageDisplayURL(context.Background(), "img-1")
	require.NoError(t, err)
	assert.Contains(t, url, "X-Amz-Signature")
}
