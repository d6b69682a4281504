package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ooakt0/fyi-bolt-sub000/internal/common"
	"github.com/ooakt0/fyi-bolt-sub000/internal/dbx"
	"github.com/ooakt0/fyi-bolt-sub000/internal/server/models"
)

// PostgresRepository implements idea_files storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert stores a new file record. The row's timestamps are read back so the
// caller gets the server-assigned values.
func (r *PostgresRepository) Insert(ctx context.Context, file *models.IdeaFile) error {
	query := `
		INSERT INTO idea_files (id, idea_id, file_url, file_type, storage_provider, file_name, uploaded_at, is_private)
		VALUES ($1, $2, $3, $4, $5, $6, now(), $7)
		RETURNING uploaded_at, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		file.ID, file.IdeaID, file.FileURL, string(file.FileType),
		file.StorageProvider, file.FileName, file.IsPrivate).
		Scan(&file.UploadedAt, &file.CreatedAt, &file.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID returns one file record, or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.IdeaFile, error) {
	query := `
		SELECT id, idea_id, file_url, file_type, storage_provider, file_name, uploaded_at, is_private, created_at, updated_at
		FROM idea_files WHERE id=$1
	`
	row := r.db.QueryRowContext(ctx, query, id)
	item, err := scanFile(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select file: %w", err)
	}
	return item, nil
}

// ListByIdea returns all file records for an idea, newest first.
func (r *PostgresRepository) ListByIdea(ctx context.Context, ideaID string) ([]*models.IdeaFile, error) {
	query := `
		SELECT id, idea_id, file_url, file_type, storage_provider, file_name, uploaded_at, is_private, created_at, updated_at
		FROM idea_files WHERE idea_id=$1 ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, ideaID)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	var result []*models.IdeaFile
	for rows.Next() {
		item, err := scanFile(rows.Scan)
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

// UpdatePrivacy toggles is_private for one record. Exactly one row must be
// affected; zero rows means the record does not exist.
func (r *PostgresRepository) UpdatePrivacy(ctx context.Context, id string, isPrivate bool) error {
	query := `UPDATE idea_files SET is_private=$2, updated_at=now() WHERE id=$1`
	result, err := r.db.ExecContext(ctx, query, id, isPrivate)
	if err != nil {
		return fmt.Errorf("failed to update privacy: %w", err)
	}
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

// scanFile reads one row into a model, validating the stored category so
// malformed rows are rejected at the boundary instead of propagated.
func scanFile(scan func(dest ...any) error) (*models.IdeaFile, error) {
	var item models.IdeaFile
	var rawType string
	if err := scan(&item.ID, &item.IdeaID, &item.FileURL, &rawType, &item.StorageProvider,
		&item.FileName, &item.UploadedAt, &item.IsPrivate, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	ft, err := models.ParseFileType(rawType)
	if err != nil {
		return nil, fmt.Errorf("malformed row %s: %w", item.ID, err)
	}
	item.FileType = ft
	return &item, nil
}
