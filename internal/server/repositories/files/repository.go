package files

import (
	"context"

	"github.com/ooakt0/fyi-bolt-sub000/internal/server/models"
)

type Repository interface {
	Insert(ctx context.Context, file *models.IdeaFile) error
	GetByID(ctx context.Context, id string) (*models.IdeaFile, error)
	ListByIdea(ctx context.Context, ideaID string) ([]*models.IdeaFile, error)
	UpdatePrivacy(ctx context.Context, id string, isPrivate bool) error
}
