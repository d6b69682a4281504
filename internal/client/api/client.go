// Package api is the REST client for the marketplace server. It keeps the
// current token pair in memory and retries nothing on its own: callers decide
// what a failed call means for their flow.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUnavailable marks transport-level failures so callers can tell "server
// said no" apart from "server unreachable".
var ErrUnavailable = errors.New("server unavailable")

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Code       string `json:"error"`
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s (%d)", e.Code, e.StatusCode)
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	accessToken  string
	refreshToken string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// IsLoggedIn reports whether the client holds an access token.
func (c *Client) IsLoggedIn() bool { return c.accessToken != "" }

// Logout drops the stored token pair.
func (c *Client) Logout() {
	c.accessToken = ""
	c.refreshToken = ""
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Code = resp.Status
		}
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RegisteredUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (c *Client) Register(ctx context.Context, email, name, password, role string) (*RegisteredUser, error) {
	req := map[string]string{"email": email, "name": name, "password": password, "role": role}
	var user RegisteredUser
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and stores the returned token pair for later calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	req := map[string]string{"email": email, "password": password}
	var tokens TokenPair
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &tokens); err != nil {
		return err
	}
	c.accessToken = tokens.AccessToken
	c.refreshToken = tokens.RefreshToken
	return nil
}

// Refresh rotates the stored refresh token for a fresh pair.
func (c *Client) Refresh(ctx context.Context) error {
	req := map[string]string{"refresh_token": c.refreshToken}
	var tokens TokenPair
	if err := c.do(ctx, http.MethodPost, "/api/auth/refresh", req, &tokens); err != nil {
		return err
	}
	c.accessToken = tokens.AccessToken
	c.refreshToken = tokens.RefreshToken
	return nil
}

type Idea struct {
	ID          string    `json:"id"`
	CreatorID   string    `json:"creator_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Stage       string    `json:"stage"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Client) CreateIdea(ctx context.Context, name, description, stage string) (*Idea, error) {
	req := map[string]string{"name": name, "description": description, "stage": stage}
	var idea Idea
	if err := c.do(ctx, http.MethodPost, "/api/ideas", req, &idea); err != nil {
		return nil, err
	}
	return &idea, nil
}

func (c *Client) ListIdeas(ctx context.Context) ([]Idea, error) {
	var ideas []Idea
	if err := c.do(ctx, http.MethodGet, "/api/ideas", nil, &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

// UploadTarget is a one-shot destination for a direct-to-storage upload.
type UploadTarget struct {
	UploadURL  string `json:"upload_url"`
	ObjectURL  string `json:"object_url"`
	StorageKey string `json:"storage_key"`
}

func (c *Client) RequestFileUploadURL(ctx context.Context, ideaID, fileName, fileType, contentType string) (*UploadTarget, error) {
	req := map[string]string{"file_name": fileName, "file_type": fileType, "content_type": contentType}
	var target UploadTarget
	if err := c.do(ctx, http.MethodPost, "/api/ideas/"+ideaID+"/files/upload-url", req, &target); err != nil {
		return nil, err
	}
	return &target, nil
}

func (c *Client) RequestImageUploadURL(ctx context.Context, ideaID, fileName, contentType string) (*UploadTarget, error) {
	req := map[string]string{"file_name": fileName, "content_type": contentType}
	var target UploadTarget
	if err := c.do(ctx, http.MethodPost, "/api/ideas/"+ideaID+"/images/upload-url", req, &target); err != nil {
		return nil, err
	}
	return &target, nil
}

type IdeaFile struct {
	ID          string    `json:"id"`
	IdeaID      string    `json:"idea_id"`
	FileURL     string    `json:"file_url"`
	FileType    string    `json:"file_type"`
	FileName    string    `json:"file_name"`
	DisplayName string    `json:"display_name"`
	IsPrivate   bool      `json:"is_private"`
	UploadedAt  time.Time `json:"uploaded_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *Client) RecordFile(ctx context.Context, ideaID, fileURL, fileType string) (*IdeaFile, error) {
	req := map[string]string{"file_url": fileURL, "file_type": fileType}
	var file IdeaFile
	if err := c.do(ctx, http.MethodPost, "/api/ideas/"+ideaID+"/files", req, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// ListFiles returns the idea's visible files grouped by category.
func (c *Client) ListFiles(ctx context.Context, ideaID string) (map[string][]IdeaFile, error) {
	var grouped map[string][]IdeaFile
	if err := c.do(ctx, http.MethodGet, "/api/ideas/"+ideaID+"/files", nil, &grouped); err != nil {
		return nil, err
	}
	return grouped, nil
}

type IdeaImage struct {
	ID          string    `json:"id"`
	IdeaID      string    `json:"idea_id"`
	ImageURL    string    `json:"image_url"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeInBytes int64     `json:"size_in_bytes"`
	IsPrivate   bool      `json:"is_private"`
	Caption     string    `json:"caption"`
	AspectRatio string    `json:"aspect_ratio"`
	CreatedAt   time.Time `json:"created_at"`
}

type RecordImageRequest struct {
	ImageURL    string `json:"image_url"`
	ContentType string `json:"content_type"`
	SizeInBytes int64  `json:"size_in_bytes"`
	IsPrivate   bool   `json:"is_private"`
	Caption     string `json:"caption"`
	AspectRatio string `json:"aspect_ratio"`
}

func (c *Client) RecordImage(ctx context.Context, ideaID string, req RecordImageRequest) (*IdeaImage, error) {
	var image IdeaImage
	if err := c.do(ctx, http.MethodPost, "/api/ideas/"+ideaID+"/images", req, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

func (c *Client) ListImages(ctx context.Context, ideaID string) ([]IdeaImage, error) {
	var images []IdeaImage
	if err := c.do(ctx, http.MethodGet, "/api/ideas/"+ideaID+"/images", nil, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (c *Client) SetFilePrivacy(ctx context.Context, fileID string, isPrivate bool) error {
	return c.do(ctx, http.MethodPatch, "/api/files/"+fileID+"/privacy", map[string]bool{"is_private": isPrivate}, nil)
}

func (c *Client) SetImagePrivacy(ctx context.Context, imageID string, isPrivate bool) error {
	return c.do(ctx, http.MethodPatch, "/api/images/"+imageID+"/privacy", map[string]bool{"is_private": isPrivate}, nil)
}

func (c *Client) DeleteImage(ctx context.Context, imageID string) error {
	return c.do(ctx, http.MethodDelete, "/api/images/"+imageID, nil, nil)
}

func (c *Client) FileDisplayURL(ctx context.Context, fileID string) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/files/"+fileID+"/display-url", nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

func (c *Client) ImageDisplayURL(ctx context.Context, imageID string) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/images/"+imageID+"/display-url", nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// Ping checks server health; used by the CLI to report connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}
