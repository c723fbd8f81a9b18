package questions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkov/quizdeck/internal/common"
	"github.com/avolkov/quizdeck/internal/dbx"
	"github.com/avolkov/quizdeck/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const questionColumns = `id, title, description, option_1, option_2, option_3, option_4, correct_answer, test_id, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, q *models.Question) (*models.Question, error) {

	query :=
		`INSERT INTO questions (title, description, option_1, option_2, option_3, option_4, correct_answer, test_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		q.Title, q.Description, q.Options[0], q.Options[1], q.Options[2], q.Options[3], q.CorrectAnswer, q.TestID).
		Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return q, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions
		 WHERE id = $1 AND is_deleted = false
		 `

	return scanQuestion(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetOwnership(ctx context.Context, id int64) (int64, bool, error) {
	query :=
		`SELECT test_id, is_deleted FROM questions
		 WHERE id = $1
		 `

	var testID int64
	var deleted bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&testID, &deleted)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, common.ErrNotFound
		}
		return 0, false, fmt.Errorf("db error: %w", err)
	}

	return testID, deleted, nil
}

func (r *PostgresRepository) ListByTest(ctx context.Context, testID int64) ([]*models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions
		 WHERE test_id = $1 AND is_deleted = false
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, testID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Question{}
	for rows.Next() {
		q := &models.Question{}
		if err := rows.Scan(&q.ID, &q.Title, &q.Description,
			&q.Options[0], &q.Options[1], &q.Options[2], &q.Options[3],
			&q.CorrectAnswer, &q.TestID, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) CountByTest(ctx context.Context, testID int64) (int64, error) {
	query :=
		`SELECT COUNT(*) FROM questions
		 WHERE test_id = $1 AND is_deleted = false
		 `

	var count int64
	if err := r.db.QueryRowContext(ctx, query, testID).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) Update(ctx context.Context, q *models.Question) (*models.Question, error) {
	query :=
		`UPDATE questions SET title = $2, description = $3,
		     option_1 = $4, option_2 = $5, option_3 = $6, option_4 = $7,
		     correct_answer = $8, updated_at = now()
		 WHERE id = $1 AND is_deleted = false
		 RETURNING ` + questionColumns + `
		 `

	return scanQuestion(r.db.QueryRowContext(ctx, query,
		q.ID, q.Title, q.Description, q.Options[0], q.Options[1], q.Options[2], q.Options[3], q.CorrectAnswer))
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, id int64) error {
	query :=
		`UPDATE questions SET is_deleted = true, updated_at = now()
		 WHERE id = $1 AND is_deleted = false
		 `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func scanQuestion(row *sql.Row) (*models.Question, error) {
	q := &models.Question{}
	err := row.Scan(&q.ID, &q.Title, &q.Description,
		&q.Options[0], &q.Options[1], &q.Options[2], &q.Options[3],
		&q.CorrectAnswer, &q.TestID, &q.CreatedAt, &q.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return q, nil
}
