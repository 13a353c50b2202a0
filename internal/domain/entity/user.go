// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the account that owns plants and accumulates points, levels and badges.
type User struct {
	ID           uint64    `json:"id"`         // Store-assigned sequence id.
	Username     string    `json:"username"`   // Unique login name.
	PasswordHash string    `json:"-"`          // bcrypt hash, never serialized.
	Level        int       `json:"level"`      // Always >= 1 and never decreases.
	Points       int       `json:"points"`     // Always >= 0.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// NewUser returns a user at the starting level with no points.
func NewUser(username, passwordHash string) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Level:        1,
		Points:       0,
	}
}
