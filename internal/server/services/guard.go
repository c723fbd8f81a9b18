package services

import (
	"context"
	"fmt"

	"github.com/avolkov/quizdeck/internal/common"
	"github.com/avolkov/quizdeck/internal/server/auth"
	"github.com/avolkov/quizdeck/internal/server/config"
	"github.com/avolkov/quizdeck/internal/server/models"
)

// Guard is the single authorization choke point. Every test and question
// operation resolves its caller through Authorize or AuthorizeDelete; no
// other component reads or mutates resource state on behalf of a caller.
//
// Failure modes are deliberately asymmetric: a role mismatch is a hard
// permission error (role is a platform-wide property), while an absent,
// soft-deleted, or foreign resource is uniformly "not found" so callers
// cannot distinguish "exists but not yours" from "does not exist".
type Guard struct {
	jwtSecret []byte
	resolver  *OwnershipResolver
}

func NewGuard(cfg *config.Config, resolver *OwnershipResolver) *Guard {
	return &Guard{
		jwtSecret: []byte(cfg.SecretKey),
		resolver:  resolver,
	}
}

// Authorize validates the bearer token, enforces the role policy, and, when
// ref is non-nil, confirms that the caller owns the referenced resource and
// that the resource is active. It returns the caller's identity id.
func (g *Guard) Authorize(ctx context.Context, token string, requiredRole models.Role, ref *models.ResourceRef) (int64, error) {
	return g.authorize(ctx, token, requiredRole, ref, false)
}

// AuthorizeDelete is Authorize for delete paths: the referenced resource may
// already be soft-deleted, so a retried delete stays a success. The
// ownership and role checks are identical.
func (g *Guard) AuthorizeDelete(ctx context.Context, token string, requiredRole models.Role, ref *models.ResourceRef) (int64, error) {
	return g.authorize(ctx, token, requiredRole, ref, true)
}

func (g *Guard) authorize(ctx context.Context, token string, requiredRole models.Role, ref *models.ResourceRef, allowDeleted bool) (int64, error) {
	claims, err := auth.ParseToken(token, g.jwtSecret)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", common.ErrUnauthenticated, err)
	}

	if claims.Role != requiredRole {
		return 0, common.ErrPermissionDenied
	}

	if ref == nil {
		return claims.UserID, nil
	}

	own, err := g.resolver.Resolve(ctx, *ref)
	if err != nil {
		return 0, err
	}

	if own.OwnerID != claims.UserID {
		return 0, common.ErrNotFound
	}
	if own.Deleted && !allowDeleted {
		return 0, common.ErrNotFound
	}

	return claims.UserID, nil
}
