package models

import "time"

// Test groups questions under a single owner identity.
type Test struct {
	ID          int64
	Title       string
	Description string
	UserID      int64
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
