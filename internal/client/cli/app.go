// Package cli implements the interactive terminal client: a small REPL over
// the REST API plus the direct-to-storage upload and retrieval flows.
package cli

import (
	"bufio"
	"context"
	"net/http"
	"os"
	"time"

	"github.com/ooakt0/fyi-bolt-sub000/internal/client/api"
	"github.com/ooakt0/fyi-bolt-sub000/internal/client/config"
	"github.com/ooakt0/fyi-bolt-sub000/internal/logging"
)

type App struct {
	config    *config.Config
	api       *api.Client
	transport *http.Client
	logger    logging.Logger
	reader    *bufio.Reader
	userEmail string
}

func NewApp(c *config.Config) *App {
	return &App{
		config:    c,
		api:       api.NewClient(c.ServerEndpointAddr),
		transport: &http.Client{Timeout: 60 * time.Second},
		logger:    logging.NewJSONLogger(),
		reader:    bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.api.IsLoggedIn()
}

// imageResolver adapts the API client to the retriever's resolver shape.
type imageResolver struct {
	api *api.Client
}

func (r *imageResolver) ResolveDisplayURL(ctx context.Context, imageID string) (string, error) {
	return r.api.ImageDisplayURL(ctx, imageID)
}
