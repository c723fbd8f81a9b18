package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkov/quizdeck/internal/common"
	"github.com/avolkov/quizdeck/internal/server/models"
	"github.com/avolkov/quizdeck/internal/server/repositories/repomanager"
)

// OwnershipResolver walks the ownership tree Identity → Test → Question. It
// performs pure lookups, no mutation, so callers may cancel at any point
// without observable side effects.
type OwnershipResolver struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewOwnershipResolver(db *sql.DB, m repomanager.RepositoryManager) *OwnershipResolver {
	return &OwnershipResolver{db: db, repomanager: m}
}

// Resolve returns the ownership state of the referenced resource: the
// identity at the root of its chain and the node's own deleted flag.
//
// For a question, the parent test is resolved first; an absent or deleted
// parent makes the question not-found regardless of the question's own
// stored state. Backing-store failures are wrapped and never reported as
// common.ErrNotFound, so a timeout cannot teach a caller that a resource
// does not exist.
func (r *OwnershipResolver) Resolve(ctx context.Context, ref models.ResourceRef) (*models.Ownership, error) {
	switch ref.Kind {
	case models.KindTest:
		ownerID, deleted, err := r.repomanager.Tests(r.db).GetOwnership(ctx, ref.ID)
		if err != nil {
			return nil, resolveErr(err)
		}
		return &models.Ownership{OwnerID: ownerID, Deleted: deleted}, nil

	case models.KindQuestion:
		testID, deleted, err := r.repomanager.Questions(r.db).GetOwnership(ctx, ref.ID)
		if err != nil {
			return nil, resolveErr(err)
		}

		ownerID, parentDeleted, err := r.repomanager.Tests(r.db).GetOwnership(ctx, testID)
		if err != nil {
			return nil, resolveErr(err)
		}
		if parentDeleted {
			return nil, common.ErrNotFound
		}

		return &models.Ownership{OwnerID: ownerID, Deleted: deleted}, nil

	default:
		return nil, common.ErrNotFound
	}
}

func resolveErr(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrNotFound
	}
	return fmt.Errorf("%w: ownership lookup: %v", common.ErrInternal, err)
}
