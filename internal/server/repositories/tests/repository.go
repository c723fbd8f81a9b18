// Package tests contains the test repository. Default reads filter
// soft-deleted rows; GetOwnership is the one lookup that sees them, because
// the authorization guard needs the deleted flag to apply its own rules.
package tests

import (
	"context"

	"github.com/avolkov/quizdeck/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, test *models.Test) (*models.Test, error)

	// GetByID returns an active test. Returns common.ErrNotFound if the row
	// is absent or soft-deleted.
	GetByID(ctx context.Context, id int64) (*models.Test, error)

	// GetOwnership returns the owner identity id and deleted flag of a test
	// regardless of its deleted state. Returns common.ErrNotFound only when
	// the row does not exist at all.
	GetOwnership(ctx context.Context, id int64) (ownerID int64, deleted bool, err error)

	// ListByOwner returns the owner's active tests, newest first.
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Test, error)

	// CountByOwner returns the number of the owner's active tests.
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)

	// Update rewrites title and description of an active test.
	Update(ctx context.Context, test *models.Test) (*models.Test, error)

	// SoftDelete marks a test deleted. Deleting an already-deleted test is
	// a no-op success.
	SoftDelete(ctx context.Context, id int64) error
}
