package models

import (
	"fmt"
	"time"
)

// FileType is the closed enumeration of logical document categories.
type FileType string

const (
	FileTypeValidationReport FileType = "validation_report"
	FileTypePitchDeck        FileType = "pitch_deck"
	FileTypeVideo            FileType = "video"
	FileTypeAIImage          FileType = "ai_image"
	FileTypeMarketResearch   FileType = "market_research"
	FileTypeUserUpload       FileType = "user_upload"
)

// ParseFileType validates a raw category string at the boundary. Unknown
// values are rejected rather than propagated.
func ParseFileType(s string) (FileType, error) {
	switch ft := FileType(s); ft {
	case FileTypeValidationReport, FileTypePitchDeck, FileTypeVideo,
		FileTypeAIImage, FileTypeMarketResearch, FileTypeUserUpload:
		return ft, nil
	default:
		return "", fmt.Errorf("unknown file type %q", s)
	}
}

// IdeaFile is the metadata record for a document stored in object storage.
// FileURL and the underlying bytes are immutable after creation; only
// IsPrivate may be toggled, and only by the idea's creator.
type IdeaFile struct {
	ID              string
	IdeaID          string
	FileURL         string
	FileType        FileType
	StorageProvider string
	// FileName is the disambiguated stored name; the original display name
	// is recovered with storagepath.FormatDisplayFileName.
	FileName   string
	UploadedAt time.Time
	IsPrivate  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
