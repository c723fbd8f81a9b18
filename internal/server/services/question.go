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

// QuestionInput carries the content fields of a question across the service
// boundary.
type QuestionInput struct {
	Title         string
	Description   string
	Options       [4]string
	CorrectAnswer int
}

func (in QuestionInput) validate() error {
	if in.CorrectAnswer < 1 || in.CorrectAnswer > 4 {
		return common.ErrInvalidAnswer
	}
	return nil
}

// QuestionService implements question CRUD. A question can only ever be
// created under a test the caller owns, and every lookup resolves ownership
// through the parent test first.
type QuestionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	guard       *Guard
}

func NewQuestionService(db *sql.DB, m repomanager.RepositoryManager, guard *Guard) *QuestionService {
	return &QuestionService{db: db, repomanager: m, guard: guard}
}

// Create adds a question to one of the caller's active tests.
func (s *QuestionService) Create(ctx context.Context, token string, testID int64, in QuestionInput) (*models.Question, error) {
	ref := &models.ResourceRef{Kind: models.KindTest, ID: testID}
	if _, err := s.guard.Authorize(ctx, token, models.RoleTeacher, ref); err != nil {
		return nil, err
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	q := &models.Question{
		Title:         in.Title,
		Description:   in.Description,
		Options:       in.Options,
		CorrectAnswer: in.CorrectAnswer,
		TestID:        testID,
	}

	created, err := s.repomanager.Questions(s.db).Create(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("error creating question: %w", common.ErrInternal)
	}

	return created, nil
}

// Get returns an active question from one of the caller's active tests.
func (s *QuestionService) Get(ctx context.Context, token string, id int64) (*models.Question, error) {
	ref := &models.ResourceRef{Kind: models.KindQuestion, ID: id}
	if _, err := s.guard.Authorize(ctx, token, models.RoleTeacher, ref); err != nil {
		return nil, err
	}

	q, err := s.repomanager.Questions(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}

	return q, nil
}

// GetForTest returns an active question addressed through its parent test:
// the caller must own the active test testID, and the question must belong
// to exactly that test. A question that exists under a different test is
// not-found on this path.
func (s *QuestionService) GetForTest(ctx context.Context, token string, testID, id int64) (*models.Question, error) {
	ref := &models.ResourceRef{Kind: models.KindTest, ID: testID}
	if _, err := s.guard.Authorize(ctx, token, models.RoleTeacher, ref); err != nil {
		return nil, err
	}

	q, err := s.repomanager.Questions(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	if q.TestID != testID {
		return nil, common.ErrNotFound
	}

	return q, nil
}

// ListByTest returns the active questions of one of the caller's active
// tests with a total count. Listing is always scoped through the parent, so
// questions under a deleted test are unreachable even when their own flags
// are still false.
func (s *QuestionService) ListByTest(ctx context.Context, token string, testID int64) ([]*models.Question, int64, error) {
	ref := &models.ResourceRef{Kind: models.KindTest, ID: testID}
	if _, err := s.guard.Authorize(ctx, token, models.RoleTeacher, ref); err != nil {
		return nil, 0, err
	}

	repo := s.repomanager.Questions(s.db)
	list, err := repo.ListByTest(ctx, testID)
	if err != nil {
		return nil, 0, common.ErrInternal
	}
	total, err := repo.CountByTest(ctx, testID)
	if err != nil {
		return nil, 0, common.ErrInternal
	}

	return list, total, nil
}

// Update rewrites the content of an active question in one of the caller's
// active tests.
func (s *QuestionService) Update(ctx context.Context, token string, id int64, in QuestionInput) (*models.Question, error) {
	ref := &models.ResourceRef{Kind: models.KindQuestion, ID: id}
	if _, err := s.guard.Authorize(ctx, token, models.RoleTeacher, ref); err != nil {
		return nil, err
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	q := &models.Question{
		ID:            id,
		Title:         in.Title,
		Description:   in.Description,
		Options:       in.Options,
		CorrectAnswer: in.CorrectAnswer,
	}

	updated, err := s.repomanager.Questions(s.db).Update(ctx, q)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}

	return updated, nil
}

// Delete soft-deletes a question. Idempotent for the owner while the parent
// test is active; once the parent is deleted the question resolves to
// not-found like every other path through it.
func (s *QuestionService) Delete(ctx context.Context, token string, id int64) error {
	ref := &models.ResourceRef{Kind: models.KindQuestion, ID: id}
	if _, err := s.guard.AuthorizeDelete(ctx, token, models.RoleTeacher, ref); err != nil {
		return err
	}

	if err := s.repomanager.Questions(s.db).SoftDelete(ctx, id); err != nil {
		return common.ErrInternal
	}

	return nil
}
