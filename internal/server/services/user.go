// Package services contains server-side business logic: identity
// registration and login, the authorization guard, and the test/question
// services that all pass through it.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avolkov/quizdeck/internal/common"
	"github.com/avolkov/quizdeck/internal/server/auth"
	"github.com/avolkov/quizdeck/internal/server/config"
	"github.com/avolkov/quizdeck/internal/server/models"
	"github.com/avolkov/quizdeck/internal/server/repositories/repomanager"
)

// UserService provides identity operations:
//   - Register: create identities with a hashed credential and a fixed role
//   - Login: verify credentials and mint a session token
//   - GetByID: fetch fresh profile data (never trusted from a token)
//
// There is deliberately no update or delete: emails and roles are immutable
// by omission.
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	minPasswordLength           int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		minPasswordLength:           cfg.MinPasswordLength,
	}
}

// NormalizeEmail lowercases and trims an email address. Uniqueness and login
// lookups always go through the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new identity. The role must belong to the closed set
// and is immutable afterwards. The raw password never leaves this function:
// only its argon2id hash is handed to the repository.
func (s *UserService) Register(ctx context.Context, email, password string, role models.Role) (*models.User, error) {
	if !role.IsValid() {
		return nil, common.ErrInvalidRole
	}
	if len(password) < s.minPasswordLength {
		return nil, common.ErrWeakPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", common.ErrInternal)
	}

	user := &models.User{
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
		Role:         role,
	}

	repo := s.repomanager.Users(s.db)
	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("error creating user: %w", common.ErrInternal)
	}

	return created, nil
}

// Login verifies the password for the identity registered under the
// normalized email and, on success, returns a signed session token. Both
// unknown-email and wrong-password fail with the same generic error.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrInternal
	}

	ok, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", common.ErrInternal
	}
	if !ok {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrInternal
	}

	return token, nil
}

// GetByID returns the identity record for the given id.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return user, nil
}

// GetByEmail returns the identity record registered under the normalized
// email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return user, nil
}

// ValidateToken checks a session token against the signing key and returns
// its claims. Pure computation: no identity state is consulted.
func (s *UserService) ValidateToken(token string) (*auth.Claims, error) {
	return auth.ParseToken(token, s.jwtSecret)
}
