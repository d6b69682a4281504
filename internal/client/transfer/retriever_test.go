package transfer

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ooakt0/fyi-bolt-sub000/internal/common"
	"github.com/ooakt0/fyi-bolt-sub000/internal/logging"
)

type stubResolver struct {
	url   string
	err   error
	calls int
}

func (s *stubResolver) ResolveDisplayURL(ctx context.Context, objectID string) (string, error) {
	s.calls++
	return s.url, s.err
}

func TestRetrieverFirstAttemptSucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "image-bytes")
	}))
	defer srv.Close()

	resolver := &stubResolver{}
	r := NewRetriever(resolver, srv.Client(), logging.NewJSONLogger())

	res := r.Fetch(context.Background(), "img-1", srv.URL+"/idea-files/42-my-idea/images/1-photo.png")
	require.NoError(t, res.Err)
	assert.Equal(t, []byte("image-bytes"), res.Data)
	assert.Equal(t, StateLoaded, r.State())
	assert.Zero(t, resolver.calls, "no re-sign needed on success")
}

func TestRetrieverRetriesWithFreshSignedURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the stored unsigned URL fails; only the signed retry succeeds
		if r.URL.Query().Get("X-Amz-Signature") == "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		io.WriteString(w, "image-bytes")
	}))
	defer srv.Close()

	resolver := &stubResolver{url: srv.URL + "/idea-files/42-my-idea/images/1-photo.png?X-Amz-Signature=abc"}
	r := NewRetriever(resolver, srv.Client(), logging.NewJSONLogger())

	res := r.Fetch(context.Background(), "img-1", srv.URL+"/idea-files/42-my-idea/images/1-photo.png")
	require.NoError(t, res.Err)
	assert.Equal(t, []byte("image-bytes"), res.Data)
	assert.Equal(t, resolver.url, res.DisplayURL)
	assert.Equal(t, StateLoaded, r.State())
	assert.Equal(t, 1, resolver.calls)
}

func TestRetrieverTerminalFailureServesPlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	resolver := &stubResolver{url: srv.URL + "/idea-files/42-my-idea/images/1-photo.png?X-Amz-Signature=abc"}
	r := NewRetriever(resolver, srv.Client(), logging.NewJSONLogger())

	res := r.Fetch(context.Background(), "img-1", srv.URL+"/idea-files/42-my-idea/images/1-photo.png")
	require.Error(t, res.Err)

	var rerr *common.RetrievalError
	require.True(t, errors.As(res.Err, &rerr))
	assert.Nil(t, res.Data)
	assert.Equal(t, PlaceholderAsset, res.DisplayURL)
	assert.Equal(t, StateErrorFinal, r.State())
	assert.Equal(t, 1, resolver.calls, "exactly one re-sign attempt")
}

func TestRetrieverNeverRetriesSignedAttempt(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	resolver := &stubResolver{}
	r := NewRetriever(resolver, srv.Client(), logging.NewJSONLogger())

	res := r.Fetch(context.Background(), "img-1", srv.URL+"/idea-files/42-my-idea/images/1-photo.png?X-Amz-Signature=stale")
	require.Error(t, res.Err)
	assert.Equal(t, PlaceholderAsset, res.DisplayURL)
	assert.Equal(t, StateErrorFinal, r.State())
	assert.Equal(t, 1, hits, "signed attempts are not retried")
	assert.Zero(t, resolver.calls, "resolver must not be consulted after a signed failure")
}

func TestRetrieverResolverFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	resolver := &stubResolver{err: errors.New("backend down")}
	r := NewRetriever(resolver, srv.Client(), logging.NewJSONLogger())

	res := r.Fetch(context.Background(), "img-1", srv.URL+"/idea-files/42-my-idea/images/1-photo.png")
	require.Error(t, res.Err)
	assert.Equal(t, PlaceholderAsset, res.DisplayURL)
	assert.Equal(t, StateErrorFinal, r.State())
}
