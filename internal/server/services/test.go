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

// TestService implements test CRUD. Every operation takes the caller's raw
// bearer token and runs it through the guard; ids never arrive here
// pre-authorized.
type TestService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	guard       *Guard
}

func NewTestService(db *sql.DB, m repomanager.RepositoryManager, guard *Guard) *TestService {
	return &TestService{db: db, repomanager: m, guard: guard}
}

// Create makes a new active test owned by the caller.
func (s *TestService) Create(ctx context.Context, token, title, description string) (*models.Test, error) {
	userID, err := s.guard.Authorize(ctx, token, models.RoleTeacher, nil)
	if err != nil {
		return nil, err
	}

	test := &models.Test{Title: title, Description: description, UserID: userID}

	created, err := s.repomanager.Tests(s.db).Create(ctx, test)
	if err != nil {
		return nil, fmt.Errorf("error creating test: %w", common.ErrInternal)
	}

	return created, nil
}

// Get returns one of the caller's active tests.
func (s *TestService) Get(ctx context.Context, token string, id int64) (*models.Test, error) {
	ref := &models.ResourceRef{Kind: models.KindTest, ID: id}
	if _, err := s.guard.Authorize(ctx, token, models.RoleTeacher, ref); err != nil {
		return nil, err
	}

	test, err := s.repomanager.Tests(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}

	return test, nil
}

// List returns all of the caller's active tests with a total count.
func (s *TestService) List(ctx context.Context, token string) ([]*models.Test, int64, error) {
	userID, err := s.guard.Authorize(ctx, token, models.RoleTeacher, nil)
	if err != nil {
		return nil, 0, err
	}

	repo := s.repomanager.Tests(s.db)
	list, err := repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, 0, common.ErrInternal
	}
	total, err := repo.CountByOwner(ctx, userID)
	if err != nil {
		return nil, 0, common.ErrInternal
	}

	return list, total, nil
}

// Update rewrites title and description of one of the caller's active tests.
func (s *TestService) Update(ctx context.Context, token string, id int64, title, description string) (*models.Test, error) {
	ref := &models.ResourceRef{Kind: models.KindTest, ID: id}
	if _, err := s.guard.Authorize(ctx, token, models.RoleTeacher, ref); err != nil {
		return nil, err
	}

	updated, err := s.repomanager.Tests(s.db).Update(ctx, &models.Test{ID: id, Title: title, Description: description})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}

	return updated, nil
}

// Delete soft-deletes one of the caller's tests. The transition is one-way
// and idempotent: deleting an already-deleted test succeeds again. Child
// questions keep their own flags; they disappear from sight because every
// question path resolves through an active parent.
func (s *TestService) Delete(ctx context.Context, token string, id int64) error {
	ref := &models.ResourceRef{Kind: models.KindTest, ID: id}
	if _, err := s.guard.AuthorizeDelete(ctx, token, models.RoleTeacher, ref); err != nil {
		return err
	}

	if err := s.repomanager.Tests(s.db).SoftDelete(ctx, id); err != nil {
		return common.ErrInternal
	}

	return nil
}
