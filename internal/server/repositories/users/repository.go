// Package users contains the identity repository. Identities are never
// deleted through this server, so every read filters on is_deleted = false
// only to stay consistent with the shared row shape.
package users

import (
	"context"

	"github.com/avolkov/quizdeck/internal/server/models"
)

type Repository interface {
	// Create inserts a new identity. A normalized-email collision with an
	// existing row yields common.ErrDuplicateEmail.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail looks up an identity by normalized email.
	// Returns common.ErrNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID looks up an identity by id. Returns common.ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
