// Package transfer moves object bytes between the client and the storage
// backend: a single-shot PUT against presigned upload URLs, and a
// bounded-retry fetch for display.
package transfer

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/ooakt0/fyi-bolt-sub000/internal/common"
)

// cap on how much of an error response body is captured for diagnostics
const maxErrorBodyBytes = 4 << 10

// PutObject uploads the full payload to a presigned URL with the declared
// content type. It issues exactly one PUT: retry policy belongs to the
// caller, and none of the consuming flows retry uploads automatically.
// Any non-2xx response is an UploadError carrying the backend status and
// body; transport failures are UploadErrors with no status.
func PutObject(ctx context.Context, client *http.Client, uploadURL string, payload []byte, contentType string) error {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(payload))
	if err != nil {
		return &common.UploadError{Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(payload))

	resp, err := client.Do(req)
	if err != nil {
		return &common.UploadError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &common.UploadError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return nil
}
