package transfer

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/ooakt0/fyi-bolt-sub000/internal/common"
	"github.com/ooakt0/fyi-bolt-sub000/internal/logging"
	"github.com/ooakt0/fyi-bolt-sub000/internal/storagepath"
)

// PlaceholderAsset is what a view renders when retrieval terminally fails.
const PlaceholderAsset = "/images/image-placeholder.jpg"

// State tracks one displayed object through the retrieval lifecycle:
// Unloaded -> Loading -> {Loaded | ErrorOnceRetrying -> {Loaded | ErrorFinal}}.
// Loaded and ErrorFinal are terminal.
type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
	StateErrorOnceRetrying
	StateErrorFinal
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrorOnceRetrying:
		return "error_once_retrying"
	case StateErrorFinal:
		return "error_final"
	default:
		return "unknown"
	}
}

// Resolver mints a fresh signed display URL for an object id.
type Resolver interface {
	ResolveDisplayURL(ctx context.Context, objectID string) (string, error)
}

// Result is the outcome of one retrieval. On terminal failure Data is nil
// and DisplayURL is the placeholder asset; Err reports what went wrong but
// is safe to ignore in rendering paths.
type Result struct {
	Data       []byte
	DisplayURL string
	Err        error
}

// Retriever fetches one object's bytes with a single bounded retry: if the
// first fetch fails on a URL that was not already a signed attempt, it
// forces one fresh signed URL and tries again. It never retries a signed
// attempt, so the retry bound is verifiable rather than emergent.
type Retriever struct {
	resolver Resolver
	client   *http.Client
	logger   logging.Logger
	state    State
}

func NewRetriever(resolver Resolver, client *http.Client, logger logging.Logger) *Retriever {
	if client == nil {
		client = http.DefaultClient
	}
	return &Retriever{
		resolver: resolver,
		client:   client,
		logger:   logger.With("module", "retriever"),
		state:    StateUnloaded,
	}
}

// State exposes the current lifecycle state, mostly for tests and views.
func (r *Retriever) State() State { return r.state }

// Fetch retrieves the object's bytes. rawURL is the stored object URL (may
// or may not already be signed). The failure path never panics or returns
// a nil Result: terminal errors surface as the placeholder asset.
func (r *Retriever) Fetch(ctx context.Context, objectID, rawURL string) Result {
	r.state = StateLoading

	data, err := r.get(ctx, rawURL)
	if err == nil {
		r.state = StateLoaded
		return Result{Data: data, DisplayURL: rawURL}
	}

	if storagepath.IsSignedURL(rawURL) {
		// the failed attempt was already signed; no second try
		return r.fail(ctx, objectID, rawURL, err)
	}

	r.state = StateErrorOnceRetrying

	fresh, rerr := r.resolver.ResolveDisplayURL(ctx, objectID)
	if rerr != nil {
		return r.fail(ctx, objectID, rawURL, fmt.Errorf("re-sign: %w", rerr))
	}

	data, err = r.get(ctx, fresh)
	if err != nil {
		return r.fail(ctx, objectID, rawURL, err)
	}

	r.state = StateLoaded
	return Result{Data: data, DisplayURL: fresh}
}

func (r *Retriever) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch failed: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (r *Retriever) fail(ctx context.Context, objectID, rawURL string, err error) Result {
	r.state = StateErrorFinal
	// log the key only; a signed URL embeds live credentials
	key := storagepath.ExtractKey(rawURL)
	r.logger.Warn(ctx, "retrieval failed, serving placeholder", "object_id", objectID, "key", key, "error", err.Error())
	return Result{
		DisplayURL: PlaceholderAsset,
		Err:        &common.RetrievalError{Path: key, Err: err},
	}
}
