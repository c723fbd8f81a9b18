// Package repotest provides map-backed repository implementations that
// satisfy the same interfaces as the Postgres repositories. They exist so
// that service- and handler-level tests can run without a database.
// Not safe for concurrent use.
package repotest

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/avolkov/quizdeck/internal/common"
	"github.com/avolkov/quizdeck/internal/dbx"
	"github.com/avolkov/quizdeck/internal/server/models"
	questionsrepo "github.com/avolkov/quizdeck/internal/server/repositories/questions"
	testsrepo "github.com/avolkov/quizdeck/internal/server/repositories/tests"
	usersrepo "github.com/avolkov/quizdeck/internal/server/repositories/users"
)

type UsersRepo struct {
	nextID int64
	ByID   map[int64]*models.User
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{ByID: map[int64]*models.User{}}
}

func (f *UsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	for _, existing := range f.ByID {
		if strings.EqualFold(existing.Email, u.Email) {
			return nil, common.ErrDuplicateEmail
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.ByID[u.ID] = u
	return u, nil
}

func (f *UsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.ByID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *UsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if u, ok := f.ByID[id]; ok {
		return u, nil
	}
	return nil, common.ErrNotFound
}

type TestsRepo struct {
	nextID int64
	ByID   map[int64]*models.Test

	// OwnershipErr, when set, is returned by GetOwnership to simulate a
	// backing-store failure.
	OwnershipErr error
}

func NewTestsRepo() *TestsRepo {
	return &TestsRepo{ByID: map[int64]*models.Test{}}
}

func (f *TestsRepo) Create(ctx context.Context, t *models.Test) (*models.Test, error) {
	f.nextID++
	t.ID = f.nextID
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	f.ByID[t.ID] = t
	return t, nil
}

func (f *TestsRepo) GetByID(ctx context.Context, id int64) (*models.Test, error) {
	t, ok := f.ByID[id]
	if !ok || t.Deleted {
		return nil, common.ErrNotFound
	}
	return t, nil
}

func (f *TestsRepo) GetOwnership(ctx context.Context, id int64) (int64, bool, error) {
	if f.OwnershipErr != nil {
		return 0, false, f.OwnershipErr
	}
	t, ok := f.ByID[id]
	if !ok {
		return 0, false, common.ErrNotFound
	}
	return t.UserID, t.Deleted, nil
}

func (f *TestsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Test, error) {
	result := []*models.Test{}
	for _, t := range f.ByID {
		if t.UserID == ownerID && !t.Deleted {
			result = append(result, t)
		}
	}
	return result, nil
}

func (f *TestsRepo) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	list, _ := f.ListByOwner(ctx, ownerID)
	return int64(len(list)), nil
}

func (f *TestsRepo) Update(ctx context.Context, t *models.Test) (*models.Test, error) {
	existing, ok := f.ByID[t.ID]
	if !ok || existing.Deleted {
		return nil, common.ErrNotFound
	}
	existing.Title = t.Title
	existing.Description = t.Description
	existing.UpdatedAt = time.Now()
	return existing, nil
}

func (f *TestsRepo) SoftDelete(ctx context.Context, id int64) error {
	if t, ok := f.ByID[id]; ok {
		t.Deleted = true
	}
	return nil
}

type QuestionsRepo struct {
	nextID int64
	ByID   map[int64]*models.Question
}

func NewQuestionsRepo() *QuestionsRepo {
	return &QuestionsRepo{ByID: map[int64]*models.Question{}}
}

func (f *QuestionsRepo) Create(ctx context.Context, q *models.Question) (*models.Question, error) {
	f.nextID++
	q.ID = f.nextID
	q.CreatedAt = time.Now()
	q.UpdatedAt = q.CreatedAt
	f.ByID[q.ID] = q
	return q, nil
}

func (f *QuestionsRepo) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	q, ok := f.ByID[id]
	if !ok || q.Deleted {
		return nil, common.ErrNotFound
	}
	return q, nil
}

func (f *QuestionsRepo) GetOwnership(ctx context.Context, id int64) (int64, bool, error) {
	q, ok := f.ByID[id]
	if !ok {
		return 0, false, common.ErrNotFound
	}
	return q.TestID, q.Deleted, nil
}

func (f *QuestionsRepo) ListByTest(ctx context.Context, testID int64) ([]*models.Question, error) {
	result := []*models.Question{}
	for _, q := range f.ByID {
		if q.TestID == testID && !q.Deleted {
			result = append(result, q)
		}
	}
	return result, nil
}

func (f *QuestionsRepo) CountByTest(ctx context.Context, testID int64) (int64, error) {
	list, _ := f.ListByTest(ctx, testID)
	return int64(len(list)), nil
}

func (f *QuestionsRepo) Update(ctx context.Context, q *models.Question) (*models.Question, error) {
	existing, ok := f.ByID[q.ID]
	if !ok || existing.Deleted {
		return nil, common.ErrNotFound
	}
	existing.Title = q.Title
	existing.Description = q.Description
	existing.Options = q.Options
	existing.CorrectAnswer = q.CorrectAnswer
	existing.UpdatedAt = time.Now()
	return existing, nil
}

func (f *QuestionsRepo) SoftDelete(ctx context.Context, id int64) error {
	if q, ok := f.ByID[id]; ok {
		q.Deleted = true
	}
	return nil
}

// Manager wires the in-memory repositories together behind the same
// interface the Postgres manager implements.
type Manager struct {
	UsersRepo     *UsersRepo
	TestsRepo     *TestsRepo
	QuestionsRepo *QuestionsRepo
}

func NewManager() *Manager {
	return &Manager{
		UsersRepo:     NewUsersRepo(),
		TestsRepo:     NewTestsRepo(),
		QuestionsRepo: NewQuestionsRepo(),
	}
}

func (m *Manager) RunMigrations(context.Context, *sql.DB) error   { return nil }
func (m *Manager) Users(db dbx.DBTX) usersrepo.Repository         { return m.UsersRepo }
func (m *Manager) Tests(db dbx.DBTX) testsrepo.Repository         { return m.TestsRepo }
func (m *Manager) Questions(db dbx.DBTX) questionsrepo.Repository { return m.QuestionsRepo }
