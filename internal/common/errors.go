// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is / errors.As to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// ValidationError reports a malformed storage path. It is raised before any
// network call and must short-circuit the operation that produced it.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid storage path %q: %s", e.Path, e.Reason)
}

// SigningError reports that the object-storage backend refused or failed to
// mint a signed URL. Not retried automatically.
type SigningError struct {
	Op   string // "presign-put" or "presign-get"
	Path string
	Err  error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("signing failed (%s) for %s: %v", e.Op, e.Path, e.Err)
}

func (e *SigningError) Unwrap() error { return e.Err }

// UploadError reports a failed PUT against a signed URL. StatusCode and Body
// carry the backend response when one was received; Err carries transport
// failures that produced no response.
type UploadError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upload failed: %v", e.Err)
	}
	return fmt.Sprintf("upload failed: status %d: %s", e.StatusCode, e.Body)
}

func (e *UploadError) Unwrap() error { return e.Err }

// PersistenceError reports a failed metadata write after a possibly-successful
// storage operation. Surfaced distinctly from UploadError so operators can
// reconcile orphaned objects.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("metadata %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// RetrievalError reports that a display URL could not be produced or fetched
// even after the one permitted retry. Terminal; callers fall back to the
// placeholder asset instead of propagating it into rendering.
type RetrievalError struct {
	Path string
	Err  error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval failed for %s: %v", e.Path, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }
