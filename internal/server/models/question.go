package models

import "time"

// Question is a multiple-choice question belonging to a test. Its owner is
// transitive: the identity that owns the parent test.
type Question struct {
	ID            int64
	Title         string
	Description   string
	Options       [4]string
	CorrectAnswer int
	TestID        int64
	Deleted       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
