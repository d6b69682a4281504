package images

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ooakt0/fyi-bolt-sub000/internal/common"
	"github.com/ooakt0/fyi-bolt-sub000/internal/dbx"
	"github.com/ooakt0/fyi-bolt-sub000/internal/server/models"
)

// PostgresRepository implements idea_images storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, image *models.IdeaImage) error {
	query := `
		INSERT INTO idea_images (id, idea_id, image_url, file_name, content_type, size_in_bytes, is_private, caption, aspect_ratio, storage_provider)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		image.ID, image.IdeaID, image.ImageURL, image.FileName, image.ContentType,
		image.SizeInBytes, image.IsPrivate, image.Caption, image.AspectRatio,
		image.StorageProvider).
		Scan(&image.CreatedAt, &image.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.IdeaImage, error) {
	query := selectColumns + ` WHERE id=$1`

	row := r.db.QueryRowContext(ctx, query, id)
	item, err := scanImage(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select image: %w", err)
	}
	return item, nil
}

// ListByIdea returns all image records for an idea, newest first.
func (r *PostgresRepository) ListByIdea(ctx context.Context, ideaID string) ([]*models.IdeaImage, error) {
	query := selectColumns + ` WHERE idea_id=$1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ideaID)
	if err != nil {
		return nil, fmt.Errorf("failed to select images: %w", err)
	}
	defer rows.Close()

	var result []*models.IdeaImage
	for rows.Next() {
		item, err := scanImage(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) UpdatePrivacy(ctx context.Context, id string, isPrivate bool) error {
	query := `UPDATE idea_images SET is_private=$2, updated_at=now() WHERE id=$1`
	result, err := r.db.ExecContext(ctx, query, id, isPrivate)
	if err != nil {
		return fmt.Errorf("failed to update privacy: %w", err)
	}
	return requireOneRow(result)
}

// Delete removes the metadata record only; the underlying object-storage
// bytes are left to backend lifecycle cleanup.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM idea_images WHERE id=$1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return requireOneRow(result)
}

const selectColumns = `
	SELECT id, idea_id, image_url, file_name, content_type, size_in_bytes, is_private, caption, aspect_ratio, storage_provider, created_at, updated_at
	FROM idea_images`

func requireOneRow(result sql.Result) error {
	ra, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	if ra != 1 {
		return fmt.Errorf("wrong rows affected count: %d", ra)
	}
	return nil
}

func scanImage(scan func(dest ...any) error) (*models.IdeaImage, error) {
	var item models.IdeaImage
	if err := scan(&item.ID, &item.IdeaID, &item.ImageURL, &item.FileName, &item.ContentType,
		&item.SizeInBytes, &item.IsPrivate, &item.Caption, &item.AspectRatio,
		&item.StorageProvider, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}
