// Package services contains server-side business logic: account handling,
// signed-URL issuance, and the file/image metadata pipeline.
package services

import (
	"context"
	"database/sql"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/ooakt0/fyi-bolt-sub000/internal/common"
	"github.com/ooakt0/fyi-bolt-sub000/internal/logging"
	"github.com/ooakt0/fyi-bolt-sub000/internal/server/models"
	"github.com/ooakt0/fyi-bolt-sub000/internal/server/repositories/repomanager"
	"github.com/ooakt0/fyi-bolt-sub000/internal/storagepath"
)

// StorageProviderS3 is recorded on every metadata row written by this service.
const StorageProviderS3 = "aws-s3"

// FileService orchestrates the upload and retrieval pipeline for idea files
// and gallery images: path construction, signed-URL issuance, metadata
// records, privacy enforcement, and display-URL resolution.
//
// The upload sequence (issue URL -> client PUT -> record metadata) is not
// transactional. A failure after the PUT leaves orphaned bytes in storage;
// RecordFile/RecordImage surface that as a PersistenceError distinct from
// upload failures so operators can reconcile.
type FileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	storage     *StorageService
	logger      logging.Logger
}

func NewFileService(db *sql.DB, m repomanager.RepositoryManager, storage *StorageService, logger logging.Logger) *FileService {
	return &FileService{
		db:          db,
		repomanager: m,
		storage:     storage,
		logger:      logger.With("module", "file_service"),
	}
}

// requireCreator loads the idea and rejects callers other than its creator.
// Privacy toggles and deletes are enforced here, server-side, rather than
// trusted to the UI.
func (s *FileService) requireCreator(ctx context.Context, userID, ideaID string) (*models.Idea, error) {
	idea, err := s.repomanager.Ideas(s.db).GetByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if idea.CreatorID != userID {
		return nil, common.ErrorForbidden
	}
	return idea, nil
}

// CreateFileUploadTarget builds and validates the storage key for a new
// document and mints a presigned PUT URL for it. Only the idea's creator may
// upload.
func (s *FileService) CreateFileUploadTarget(ctx context.Context, userID, ideaID, fileName string, fileType models.FileType, contentType string) (*UploadTarget, error) {
	idea, err := s.requireCreator(ctx, userID, ideaID)
	if err != nil {
		return nil, err
	}

	base := storagepath.BuildBasePath(idea.ID, idea.Name)
	key := storagepath.BuildFilePath(base, string(fileType), fileName)

	return s.storage.IssueUploadURL(ctx, key, contentType)
}

// CreateImageUploadTarget is the gallery-image variant of
// CreateFileUploadTarget; images live under the idea's images/ segment.
func (s *FileService) CreateImageUploadTarget(ctx context.Context, userID, ideaID, fileName, contentType string) (*UploadTarget, error) {
	idea, err := s.requireCreator(ctx, userID, ideaID)
	if err != nil {
		return nil, err
	}

	base := storagepath.BuildBasePath(idea.ID, idea.Name)
	key := storagepath.BuildImagePath(base, fileName)

	return s.storage.IssueUploadURL(ctx, key, contentType)
}

// requireOwnKey extracts the storage key from a caller-submitted object URL
// and verifies it lies under the idea's own base path. Every record must
// embed its own idea's id and name; accepting a foreign key would let one
// idea's creator attach (and later resolve) another idea's private objects.
func requireOwnKey(idea *models.Idea, rawURL string) (string, error) {
	key := storagepath.ExtractKey(rawURL)
	base := storagepath.BuildBasePath(idea.ID, idea.Name)
	if !strings.HasPrefix(key, base+"/") {
		return "", &common.ValidationError{Path: key, Reason: "key does not belong to idea " + idea.ID}
	}
	return key, nil
}

// RecordFile persists the metadata record after a successful upload.
// Documents are public at creation time; privacy is toggled separately.
func (s *FileService) RecordFile(ctx context.Context, userID, ideaID, fileURL string, fileType models.FileType) (*models.IdeaFile, error) {
	idea, err := s.requireCreator(ctx, userID, ideaID)
	if err != nil {
		return nil, err
	}

	key, err := requireOwnKey(idea, fileURL)
	if err != nil {
		return nil, err
	}

	file := &models.IdeaFile{
		ID:              uuid.NewString(),
		IdeaID:          ideaID,
		FileURL:         fileURL,
		FileType:        fileType,
		StorageProvider: StorageProviderS3,
		FileName:        path.Base(key),
		IsPrivate:       false,
	}

	if err := s.repomanager.Files(s.db).Insert(ctx, file); err != nil {
		return nil, &common.PersistenceError{Op: "insert file", Err: err}
	}

	s.logger.Info(ctx, "recorded file", "idea_id", ideaID, "file_id", file.ID, "file_name", file.FileName)
	return file, nil
}

// RecordImage persists a gallery-image record; privacy is caller-specified
// at creation time.
func (s *FileService) RecordImage(ctx context.Context, userID, ideaID string, in RecordImageInput) (*models.IdeaImage, error) {
	idea, err := s.requireCreator(ctx, userID, ideaID)
	if err != nil {
		return nil, err
	}

	key, err := requireOwnKey(idea, in.ImageURL)
	if err != nil {
		return nil, err
	}

	image := &models.IdeaImage{
		ID:              uuid.NewString(),
		IdeaID:          ideaID,
		ImageURL:        in.ImageURL,
		FileName:        path.Base(key),
		ContentType:     in.ContentType,
		SizeInBytes:     in.SizeInBytes,
		IsPrivate:       in.IsPrivate,
		Caption:         in.Caption,
		AspectRatio:     in.AspectRatio,
		StorageProvider: StorageProviderS3,
	}

	if err := s.repomanager.Images(s.db).Insert(ctx, image); err != nil {
		return nil, &common.PersistenceError{Op: "insert image", Err: err}
	}

	s.logger.Info(ctx, "recorded image", "idea_id", ideaID, "image_id", image.ID, "file_name", image.FileName)
	return image, nil
}

// RecordImageInput carries the caller-supplied fields of a new image record.
type RecordImageInput struct {
	ImageURL    string
	ContentType string
	SizeInBytes int64
	IsPrivate   bool
	Caption     string
	AspectRatio string
}

// ListFiles returns the idea's documents newest-first, with records the
// viewer may not see filtered out.
func (s *FileService) ListFiles(ctx context.Context, viewerID, ideaID string) ([]*models.IdeaFile, error) {
	idea, err := s.repomanager.Ideas(s.db).GetByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	all, err := s.repomanager.Files(s.db).ListByIdea(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	visible := make([]*models.IdeaFile, 0, len(all))
	for _, f := range all {
		if CanView(viewerID, f.IsPrivate, idea.CreatorID) {
			visible = append(visible, f)
		}
	}
	return visible, nil
}

// ListImages returns the idea's gallery images newest-first, privacy-filtered.
func (s *FileService) ListImages(ctx context.Context, viewerID, ideaID string) ([]*models.IdeaImage, error) {
	idea, err := s.repomanager.Ideas(s.db).GetByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	all, err := s.repomanager.Images(s.db).ListByIdea(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	visible := make([]*models.IdeaImage, 0, len(all))
	for _, img := range all {
		if CanView(viewerID, img.IsPrivate, idea.CreatorID) {
			visible = append(visible, img)
		}
	}
	return visible, nil
}

// SetFilePrivacy toggles a document's privacy flag. Creator-only.
func (s *FileService) SetFilePrivacy(ctx context.Context, userID, fileID string, isPrivate bool) error {
	file, err := s.repomanager.Files(s.db).GetByID(ctx, fileID)
	if err != nil {
		return err
	}
	if _, err := s.requireCreator(ctx, userID, file.IdeaID); err != nil {
		return err
	}

	if err := s.repomanager.Files(s.db).UpdatePrivacy(ctx, fileID, isPrivate); err != nil {
		return &common.PersistenceError{Op: "update file privacy", Err: err}
	}
	return nil
}

// SetImagePrivacy toggles an image's privacy flag. Creator-only.
func (s *FileService) SetImagePrivacy(ctx context.Context, userID, imageID string, isPrivate bool) error {
	image, err := s.repomanager.Images(s.db).GetByID(ctx, imageID)
	if err != nil {
		return err
	}
	if _, err := s.requireCreator(ctx, userID, image.IdeaID); err != nil {
		return err
	}

	if err := s.repomanager.Images(s.db).UpdatePrivacy(ctx, imageID, isPrivate); err != nil {
		return &common.PersistenceError{Op: "update image privacy", Err: err}
	}
	return nil
}

// DeleteImage removes an image's metadata record. Creator-only. The
// underlying bytes are not deleted here; storage lifecycle cleanup owns them.
func (s *FileService) DeleteImage(ctx context.Context, userID, imageID string) error {
	image, err := s.repomanager.Images(s.db).GetByID(ctx, imageID)
	if err != nil {
		return err
	}
	if _, err := s.requireCreator(ctx, userID, image.IdeaID); err != nil {
		return err
	}

	if err := s.repomanager.Images(s.db).Delete(ctx, imageID); err != nil {
		return &common.PersistenceError{Op: "delete image", Err: err}
	}

	s.logger.Info(ctx, "deleted image", "image_id", imageID, "idea_id", image.IdeaID)
	return nil
}

// ResolveFileDisplayURL checks the Privacy Gate for the viewer and then
// resolves the document's stored URL to a displayable one. The gate runs
// before any signing: a denied viewer never receives a usable URL even
// though one could technically be minted.
func (s *FileService) ResolveFileDisplayURL(ctx context.Context, viewerID, fileID string) (string, error) {
	file, err := s.repomanager.Files(s.db).GetByID(ctx, fileID)
	if err != nil {
		return "", err
	}
	idea, err := s.repomanager.Ideas(s.db).GetByID(ctx, file.IdeaID)
	if err != nil {
		return "", err
	}
	if !CanView(viewerID, file.IsPrivate, idea.CreatorID) {
		return "", common.ErrorForbidden
	}
	if !MustSign(file.IsPrivate) {
		return file.FileURL, nil
	}
	return s.ResolveDisplayURL(ctx, file.FileURL)
}

// ResolveImageDisplayURL is the gallery-image variant of ResolveFileDisplayURL.
func (s *FileService) ResolveImageDisplayURL(ctx context.Context, viewerID, imageID string) (string, error) {
	image, err := s.repomanager.Images(s.db).GetByID(ctx, imageID)
	if err != nil {
		return "", err
	}
	idea, err := s.repomanager.Ideas(s.db).GetByID(ctx, image.IdeaID)
	if err != nil {
		return "", err
	}
	if !CanView(viewerID, image.IsPrivate, idea.CreatorID) {
		return "", common.ErrorForbidden
	}
	if !MustSign(image.IsPrivate) {
		return image.ImageURL, nil
	}
	return s.ResolveDisplayURL(ctx, image.ImageURL)
}

// ResolveDisplayURL turns a stored object URL into one a viewer can fetch.
// Already-signed URLs are returned unchanged to avoid redundant signing.
// Otherwise the storage key is extracted from the URL and a fresh signed GET
// URL is minted; keys outside the idea-files namespace are legacy records
// and are logged but still resolved.
func (s *FileService) ResolveDisplayURL(ctx context.Context, rawURL string) (string, error) {
	if storagepath.IsSignedURL(rawURL) {
		return rawURL, nil
	}

	key := storagepath.ExtractKey(rawURL)
	if !strings.HasPrefix(key, storagepath.Prefix) {
		s.logger.Warn(ctx, "resolving legacy record outside idea-files namespace", "key", key)
	}

	return s.storage.IssueDownloadURL(ctx, key)
}
