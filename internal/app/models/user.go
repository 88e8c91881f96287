package models

import (
	"time"
)

// User defines the user model based on the 'users' table. Accounts are created
// on first Google sign-in and keyed by the Google subject identifier.
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	GoogleID    string     `json:"-" db:"google_id"`
	Email       string     `json:"email" db:"email" example:"learner@gmail.com"`
	Name        string     `json:"name" db:"name" example:"Jane Doe"`
	Picture     string     `json:"picture,omitempty" db:"picture"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" example:"2026-01-01T10:00:00Z"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at" example:"2026-01-02T15:30:00Z"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at" example:"2026-04-20T18:00:00Z"`
}
