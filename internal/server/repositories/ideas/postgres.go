package ideas

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ooakt0/fyi-bolt-sub000/internal/common"
	"github.com/ooakt0/fyi-bolt-sub000/internal/dbx"
	"github.com/ooakt0/fyi-bolt-sub000/internal/server/models"
)

// PostgresRepository implements idea storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, idea *models.Idea) error {
	query := `
		INSERT INTO ideas (id, creator_id, name, description, stage)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		idea.ID, idea.CreatorID, idea.Name, idea.Description, idea.Stage)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Idea, error) {
	query := `
		SELECT id, creator_id, name, description, stage, created_at, updated_at
		FROM ideas WHERE id=$1
	`

	result := &models.Idea{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&result.ID, &result.CreatorID, &result.Name, &result.Description,
		&result.Stage, &result.CreatedAt, &result.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select idea: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Idea, error) {
	query := `
		SELECT id, creator_id, name, description, stage, created_at, updated_at
		FROM ideas ORDER BY created_at DESC
	`
	return r.selectMany(ctx, query)
}

func (r *PostgresRepository) ListByCreator(ctx context.Context, creatorID string) ([]*models.Idea, error) {
	query := `
		SELECT id, creator_id, name, description, stage, created_at, updated_at
		FROM ideas WHERE creator_id=$1 ORDER BY created_at DESC
	`
	return r.selectMany(ctx, query, creatorID)
}

func (r *PostgresRepository) selectMany(ctx context.Context, query string, args ...any) ([]*models.Idea, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select ideas: %w", err)
	}
	defer rows.Close()

	var result []*models.Idea
	for rows.Next() {
		var item models.Idea
		if err := rows.Scan(&item.ID, &item.CreatorID, &item.Name, &item.Description,
			&item.Stage, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
