package tests

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

func (r *PostgresRepository) Create(ctx context.Context, test *models.Test) (*models.Test, error) {

	query :=
		`INSERT INTO tests (title, description, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		test.Title, test.Description, test.UserID).
		Scan(&test.ID, &test.CreatedAt, &test.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return test, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Test, error) {
	query :=
		`SELECT id, title, description, user_id, created_at, updated_at FROM tests
		 WHERE id = $1 AND is_deleted = false
		 `

	test := &models.Test{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&test.ID, &test.Title, &test.Description, &test.UserID, &test.CreatedAt, &test.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return test, nil
}

func (r *PostgresRepository) GetOwnership(ctx context.Context, id int64) (int64, bool, error) {
	query :=
		`SELECT user_id, is_deleted FROM tests
		 WHERE id = $1
		 `

	var ownerID int64
	var deleted bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&ownerID, &deleted)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, common.ErrNotFound
		}
		return 0, false, fmt.Errorf("db error: %w", err)
	}

	return ownerID, deleted, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Test, error) {
	query :=
		`SELECT id, title, description, user_id, created_at, updated_at FROM tests
		 WHERE user_id = $1 AND is_deleted = false
		 ORDER BY id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Test{}
	for rows.Next() {
		test := &models.Test{}
		if err := rows.Scan(&test.ID, &test.Title, &test.Description, &test.UserID, &test.CreatedAt, &test.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, test)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	query :=
		`SELECT COUNT(*) FROM tests
		 WHERE user_id = $1 AND is_deleted = false
		 `

	var count int64
	if err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) Update(ctx context.Context, test *models.Test) (*models.Test, error) {
	query :=
		`UPDATE tests SET title = $2, description = $3, updated_at = now()
		 WHERE id = $1 AND is_deleted = false
		 RETURNING id, title, description, user_id, created_at, updated_at
		 `

	updated := &models.Test{}
	err := r.db.QueryRowContext(ctx, query, test.ID, test.Title, test.Description).
		Scan(&updated.ID, &updated.Title, &updated.Description, &updated.UserID, &updated.CreatedAt, &updated.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, id int64) error {
	query :=
		`UPDATE tests SET is_deleted = true, updated_at = now()
		 WHERE id = $1 AND is_deleted = false
		 `

	// Zero affected rows means the test was already deleted; the transition
	// is one-way and idempotent, so that is still a success.
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
