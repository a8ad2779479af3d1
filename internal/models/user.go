// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered board member. Accounts are created on first
// sign-in with a new username; there are no password credentials.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity is the authenticated caller derived from a validated token.
// It is never persisted; it is rebuilt from the credential on every request.
type Identity struct {
	UserID   uint
	Username string
}
