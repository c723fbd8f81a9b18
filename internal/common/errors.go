// Package common defines shared sentinel errors used across QuizDeck
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")

	// Registration-time errors (user-correctable).
	ErrDuplicateEmail = errors.New("email already registered")
	ErrInvalidRole    = errors.New("invalid role")
	ErrWeakPassword   = errors.New("password too weak")

	// Login-time error. Deliberately generic: never reveals whether the
	// email exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Token lifecycle errors.
	ErrTokenMalformed = errors.New("malformed token")
	ErrBadSignature   = errors.New("bad token signature")
	ErrTokenExpired   = errors.New("token expired")

	// Authorization errors.
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors surfaced at the service boundary.
	ErrInvalidAnswer = errors.New("correct answer must be between 1 and 4")
)
