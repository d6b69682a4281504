package refreshtokens

import (
	"context"

	"github.com/ooakt0/fyi-bolt-sub000/internal/server/models"
)

type Repository interface {
	Add(ctx context.Context, token *models.RefreshToken) error
	Find(ctx context.Context, token string) (*models.RefreshToken, error)
	Delete(ctx context.Context, token string) error
}
