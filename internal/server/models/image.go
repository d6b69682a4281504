package models

import "time"

// IdeaImage is the metadata record for a gallery image. Images carry a
// caption and aspect-ratio hint instead of a logical category, and IsPrivate
// is caller-specified at creation time.
type IdeaImage struct {
	ID              string
	IdeaID          string
	ImageURL        string
	FileName        string
	ContentType     string
	SizeInBytes     int64
	IsPrivate       bool
	Caption         string
	AspectRatio     string
	StorageProvider string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
