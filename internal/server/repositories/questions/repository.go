// Package questions contains the question repository. A question's owner is
// transitive through its parent test; this package only exposes the direct
// parent link, the ownership walk lives in the services layer.
package questions

import (
	"context"

	"github.com/avolkov/quizdeck/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, question *models.Question) (*models.Question, error)

	// GetByID returns an active question. Returns common.ErrNotFound if the
	// row is absent or soft-deleted.
	GetByID(ctx context.Context, id int64) (*models.Question, error)

	// GetOwnership returns the parent test id and the question's own deleted
	// flag regardless of its deleted state. Returns common.ErrNotFound only
	// when the row does not exist at all.
	GetOwnership(ctx context.Context, id int64) (testID int64, deleted bool, err error)

	// ListByTest returns the test's active questions in creation order.
	ListByTest(ctx context.Context, testID int64) ([]*models.Question, error)

	// CountByTest returns the number of the test's active questions.
	CountByTest(ctx context.Context, testID int64) (int64, error)

	// Update rewrites the content fields of an active question.
	Update(ctx context.Context, question *models.Question) (*models.Question, error)

	// SoftDelete marks a question deleted. Deleting an already-deleted
	// question is a no-op success.
	SoftDelete(ctx context.Context, id int64) error
}
