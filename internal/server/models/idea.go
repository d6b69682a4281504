package models

import "time"

// Idea is a creator-owned project that files and images attach to.
type Idea struct {
	ID          string
	CreatorID   string
	Name        string
	Description string
	Stage       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
