package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ooakt0/fyi-bolt-sub000/internal/server/models"
	"github.com/ooakt0/fyi-bolt-sub000/internal/server/services"
	"github.com/ooakt0/fyi-bolt-sub000/internal/storagepath"
)

type uploadURLRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	FileType    string `json:"file_type"`
	ContentType string `json:"content_type" binding:"required"`
}

type uploadURLResponse struct {
	UploadURL  string `json:"upload_url"`
	ObjectURL  string `json:"object_url"`
	StorageKey string `json:"storage_key"`
}

func (s *Server) handleFileUploadURL(c *gin.Context) {
	var req uploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "detail": err.Error()})
		return
	}

	fileType, err := models.ParseFileType(req.FileType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "detail": err.Error()})
		return
	}

	target, err := s.files.CreateFileUploadTarget(c.Request.Context(),
		viewerID(c), c.Param("id"), req.FileName, fileType, req.ContentType)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, uploadURLResponse{
		UploadURL:  target.UploadURL,
		ObjectURL:  target.ObjectURL,
		StorageKey: target.StorageKey,
	})
}

type recordFileRequest struct {
	FileURL  string `json:"file_url" binding:"required"`
	FileType string `json:"file_type" binding:"required"`
}

type fileResponse struct {
	ID          string    `json:"id"`
	IdeaID      string    `json:"idea_id"`
	FileURL     string    `json:"file_url"`
	FileType    string    `json:"file_type"`
	FileName    string    `json:"file_name"`
	DisplayName string    `json:"display_name"`
	IsPrivate   bool      `json:"is_private"`
	UploadedAt  time.Time `json:"uploaded_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func toFileResponse(f *models.IdeaFile) fileResponse {
	return fileResponse{
		ID:          f.ID,
		IdeaID:      f.IdeaID,
		FileURL:     f.FileURL,
		FileType:    string(f.FileType),
		FileName:    f.FileName,
		DisplayName: storagepath.FormatDisplayFileName(f.FileName),
		IsPrivate:   f.IsPrivate,
		UploadedAt:  f.UploadedAt,
		CreatedAt:   f.CreatedAt,
	}
}

func (s *Server) handleRecordFile(c *gin.Context) {
	var req recordFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "detail": err.Error()})
		return
	}

	fileType, err := models.ParseFileType(req.FileType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "detail": err.Error()})
		return
	}

	file, err := s.files.RecordFile(c.Request.Context(), viewerID(c), c.Param("id"), req.FileURL, fileType)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toFileResponse(file))
}

func (s *Server) handleListFiles(c *gin.Context) {
	listed, err := s.files.ListFiles(c.Request.Context(), viewerID(c), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	// grouped by category for the gallery/file-manager views
	grouped := make(map[string][]fileResponse)
	for _, f := range listed {
		grouped[string(f.FileType)] = append(grouped[string(f.FileType)], toFileResponse(f))
	}
	c.JSON(http.StatusOK, grouped)
}

func (s *Server) handleImageUploadURL(c *gin.Context) {
	var req uploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "detail": err.Error()})
		return
	}

	target, err := s.files.CreateImageUploadTarget(c.Request.Context(),
		viewerID(c), c.Param("id"), req.FileName, req.ContentType)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, uploadURLResponse{
		UploadURL:  target.UploadURL,
		ObjectURL:  target.ObjectURL,
		StorageKey: target.StorageKey,
	})
}

type recordImageRequest struct {
	ImageURL    string `json:"image_url" binding:"required"`
	ContentType string `json:"content_type"`
	SizeInBytes int64  `json:"size_in_bytes"`
	IsPrivate   bool   `json:"is_private"`
	Caption     string `json:"caption"`
	AspectRatio string `json:"aspect_ratio"`
}

type imageResponse struct {
	ID          string    `json:"id"`
	IdeaID      string    `json:"idea_id"`
	ImageURL    string    `json:"image_url"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeInBytes int64     `json:"size_in_bytes"`
	IsPrivate   bool      `json:"is_private"`
	Caption     string    `json:"caption"`
	AspectRatio string    `json:"aspect_ratio"`
	CreatedAt   time.Time `json:"created_at"`
}

func toImageResponse(img *models.IdeaImage) imageResponse {
	return imageResponse{
		ID:          img.ID,
		IdeaID:      img.IdeaID,
		ImageURL:    img.ImageURL,
		FileName:    img.FileName,
		ContentType: img.ContentType,
		SizeInBytes: img.SizeInBytes,
		IsPrivate:   img.IsPrivate,
		Caption:     img.Caption,
		AspectRatio: img.AspectRatio,
		CreatedAt:   img.CreatedAt,
	}
}

func (s *Server) handleRecordImage(c *gin.Context) {
	var req recordImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "detail": err.Error()})
		return
	}

	image, err := s.files.RecordImage(c.Request.Context(), viewerID(c), c.Param("id"), services.RecordImageInput{
		ImageURL:    req.ImageURL,
		ContentType: req.ContentType,
		SizeInBytes: req.SizeInBytes,
		IsPrivate:   req.IsPrivate,
		Caption:     req.Caption,
		AspectRatio: req.AspectRatio,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toImageResponse(image))
}

func (s *Server) handleListImages(c *gin.Context) {
	listed, err := s.files.ListImages(c.Request.Context(), viewerID(c), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	result := make([]imageResponse, 0, len(listed))
	for _, img := range listed {
		result = append(result, toImageResponse(img))
	}
	c.JSON(http.StatusOK, result)
}

type privacyRequest struct {
	IsPrivate *bool `json:"is_private" binding:"required"`
}

func (s *Server) handleFilePrivacy(c *gin.Context) {
	var req privacyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "detail": err.Error()})
		return
	}

	if err := s.files.SetFilePrivacy(c.Request.Context(), viewerID(c), c.Param("id"), *req.IsPrivate); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleImagePrivacy(c *gin.Context) {
	var req privacyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "detail": err.Error()})
		return
	}

	if err := s.files.SetImagePrivacy(c.Request.Context(), viewerID(c), c.Param("id"), *req.IsPrivate); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDeleteImage(c *gin.Context) {
	if err := s.files.DeleteImage(c.Request.Context(), viewerID(c), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleFileDisplayURL(c *gin.Context) {
	url, err := s.files.ResolveFileDisplayURL(c.Request.Context(), viewerID(c), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (s *Server) handleImageDisplayURL(c *gin.Context) {
	url, err := s.files.ResolveImageDisplayURL(c.Request.Context(), viewerID(c), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
