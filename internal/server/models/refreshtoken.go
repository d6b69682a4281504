package models

import "time"

// RefreshToken is a server-stored, rotating long-lived credential.
type RefreshToken struct {
	ID      string
	UserID  string
	Token   string
	Expires time.Time
}
