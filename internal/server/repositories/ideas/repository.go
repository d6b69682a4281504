package ideas

import (
	"context"

	"github.com/ooakt0/fyi-bolt-sub000/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, idea *models.Idea) error
	GetByID(ctx context.Context, id string) (*models.Idea, error)
	List(ctx context.Context) ([]*models.Idea, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*models.Idea, error)
}
