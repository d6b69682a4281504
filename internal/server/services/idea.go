package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ooakt0/fyi-bolt-sub000/internal/server/models"
	"github.com/ooakt0/fyi-bolt-sub000/internal/server/repositories/repomanager"
)

// IdeaService manages the ideas that files and images attach to.
type IdeaService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewIdeaService(db *sql.DB, m repomanager.RepositoryManager) *IdeaService {
	return &IdeaService{db: db, repomanager: m}
}

// Create stores a new idea owned by creatorID.
func (s *IdeaService) Create(ctx context.Context, creatorID, name, description, stage string) (*models.Idea, error) {
	if stage == "" {
		stage = "concept"
	}
	idea := &models.Idea{
		ID:          uuid.NewString(),
		CreatorID:   creatorID,
		Name:        name,
		Description: description,
		Stage:       stage,
	}
	if err := s.repomanager.Ideas(s.db).Create(ctx, idea); err != nil {
		return nil, fmt.Errorf("error creating idea: %w", err)
	}
	return idea, nil
}

func (s *IdeaService) Get(ctx context.Context, id string) (*models.Idea, error) {
	return s.repomanager.Ideas(s.db).GetByID(ctx, id)
}

func (s *IdeaService) List(ctx context.Context) ([]*models.Idea, error) {
	return s.repomanager.Ideas(s.db).List(ctx)
}
