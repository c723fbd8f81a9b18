package models

import "time"

// User is an identity record. Email is normalized (lowercase, trimmed) and
// case-insensitively unique among non-deleted users. Role is assigned at
// creation and immutable: no mutator exists anywhere in the codebase.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
