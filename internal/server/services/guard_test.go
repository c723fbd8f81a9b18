package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avolkov/quizdeck/internal/common"
	"github.com/avolkov/quizdeck/internal/server/auth"
	"github.com/avolkov/quizdeck/internal/server/models"
)

func TestAuthorize_NoTokenOrGarbage(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := e.guard.Authorize(ctx, tok, models.RoleTeacher, nil)
		if !errors.Is(err, common.ErrUnauthenticated) {
			t.Fatalf("token %q: expected ErrUnauthenticated, got %v", tok, err)
		}
	}
}

func TestAuthorize_ExpiredToken(t *testing.T) {
	e := newEnv(t)

	tok, err := auth.GenerateToken(1, models.RoleTeacher, []byte("k"), -time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = e.guard.Authorize(context.Background(), tok, models.RoleTeacher, nil)
	if !errors.Is(err, common.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected expired cause to be preserved, got %v", err)
	}
}

func TestAuthorize_ForgedToken(t *testing.T) {
	e := newEnv(t)

	tok, err := auth.GenerateToken(1, models.RoleTeacher, []byte("other-key"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = e.guard.Authorize(context.Background(), tok, models.RoleTeacher, nil)
	if !errors.Is(err, common.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if !errors.Is(err, common.ErrBadSignature) {
		t.Fatalf("expected signature cause to be preserved, got %v", err)
	}
}

func TestAuthorize_RoleMismatchIsHardFailure(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	student := e.registerAndLogin(t, "c@x.com", models.RoleStudent)

	// Role policy fails before any ownership lookup, so even a reference to
	// a nonexistent resource yields permission-denied, not not-found.
	ref := &models.ResourceRef{Kind: models.KindTest, ID: 999}
	_, err := e.guard.Authorize(ctx, student, models.RoleTeacher, ref)
	if !errors.Is(err, common.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestAuthorize_CrossTenantTestIsNotFound(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.registerAndLogin(t, "a@x.com", models.RoleTeacher)
	bob := e.registerAndLogin(t, "b@x.com", models.RoleTeacher)

	created, err := e.tests.Create(ctx, alice, "T1", "")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// Both hold TEACHER; ownership still separates them.
	_, err = e.tests.Get(ctx, bob, created.ID)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign test, got %v", err)
	}

	got, err := e.tests.Get(ctx, alice, created.ID)
	if err != nil {
		t.Fatalf("owner Get error: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("unexpected test: %+v", got)
	}
}

func TestAuthorize_StoreFailureIsNotNotFound(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.registerAndLogin(t, "a@x.com", models.RoleTeacher)
	created, err := e.tests.Create(ctx, alice, "T1", "")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// A timeout must not teach a retrying caller that the resource is gone.
	e.rm.TestsRepo.OwnershipErr = context.DeadlineExceeded

	ref := &models.ResourceRef{Kind: models.KindTest, ID: created.ID}
	_, err = e.guard.Authorize(ctx, alice, models.RoleTeacher, ref)
	if errors.Is(err, common.ErrNotFound) {
		t.Fatalf("store failure must not map to ErrNotFound: %v", err)
	}
	if !errors.Is(err, common.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestAuthorize_UnknownKindIsNotFound(t *testing.T) {
	e := newEnv(t)

	alice := e.registerAndLogin(t, "a@x.com", models.RoleTeacher)

	ref := &models.ResourceRef{Kind: models.ResourceKind("folder"), ID: 1}
	_, err := e.guard.Authorize(context.Background(), alice, models.RoleTeacher, ref)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
