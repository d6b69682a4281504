// Package models defines server-side data models persisted in the database.
package models

import "time"

// Role distinguishes idea creators from investors.
type Role string

const (
	RoleCreator  Role = "creator"
	RoleInvestor Role = "investor"
)

type User struct {
	ID           string
	Email        string
	Name         string
	Role         Role
	Salt         []byte
	PasswordHash []byte
	CreatedAt    time.Time
}
