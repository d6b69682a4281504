package images

import (
	"context"

	"github.com/ooakt0/fyi-bolt-sub000/internal/server/models"
)

type Repository interface {
	Insert(ctx context.Context, image *models.IdeaImage) error
	GetByID(ctx context.Context, id string) (*models.IdeaImage, error)
	ListByIdea(ctx context.Context, ideaID string) ([]*models.IdeaImage, error)
	UpdatePrivacy(ctx context.Context, id string, isPrivate bool) error
	Delete(ctx context.Context, id string) error
}
