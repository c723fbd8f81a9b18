package services

import (
	"context"
	"errors"
	"testing"

	"github.com/avolkov/quizdeck/internal/common"
	"github.com/avolkov/quizdeck/internal/server/models"
)

func TestTestService_StudentCannotCreate(t *testing.T) {
	e := newEnv(t)

	student := e.registerAndLogin(t, "c@x.com", models.RoleStudent)

	_, err := e.tests.Create(context.Background(), student, "T1", "")
	if !errors.Is(err, common.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestTestService_ListIsOwnerScoped(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.registerAndLogin(t, "a@x.com", models.RoleTeacher)
	bob := e.registerAndLogin(t, "b@x.com", models.RoleTeacher)

	for _, title := range []string{"A1", "A2"} {
		if _, err := e.tests.Create(ctx, alice, title, ""); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}
	if _, err := e.tests.Create(ctx, bob, "B1", ""); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	list, total, err := e.tests.List(ctx, alice)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 2 || total != 2 {
		t.Fatalf("expected 2 tests for alice, got %d (total %d)", len(list), total)
	}
	for _, item := range list {
		if item.Title == "B1" {
			t.Fatalf("foreign test leaked into listing")
		}
	}
}

func TestTestService_UpdateForeignTestIsNotFound(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.registerAndLogin(t, "a@x.com", models.RoleTeacher)
	bob := e.registerAndLogin(t, "b@x.com", models.RoleTeacher)

	created, err := e.tests.Create(ctx, alice, "T1", "")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	_, err = e.tests.Update(ctx, bob, created.ID, "hijacked", "")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	got, err := e.tests.Get(ctx, alice, created.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Title != "T1" {
		t.Fatalf("foreign update must not apply, title=%q", got.Title)
	}
}

func TestTestService_DeleteIsIdempotent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.registerAndLogin(t, "a@x.com", models.RoleTeacher)

	created, err := e.tests.Create(ctx, alice, "T1", "")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := e.tests.Delete(ctx, alice, created.ID); err != nil {
		t.Fatalf("first Delete error: %v", err)
	}
	if err := e.tests.Delete(ctx, alice, created.ID); err != nil {
		t.Fatalf("second Delete must also succeed, got %v", err)
	}

	// Deleted tests disappear from reads and listings.
	if _, err := e.tests.Get(ctx, alice, created.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	list, total, err := e.tests.List(ctx, alice)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 0 || total != 0 {
		t.Fatalf("deleted test still listed: %d (total %d)", len(list), total)
	}
}

func TestTestService_DeleteForeignTestIsNotFound(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.registerAndLogin(t, "a@x.com", models.RoleTeacher)
	bob := e.registerAndLogin(t, "b@x.com", models.RoleTeacher)

	created, err := e.tests.Create(ctx, alice, "T1", "")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := e.tests.Delete(ctx, bob, created.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Still alive for the owner.
	if _, err := e.tests.Get(ctx, alice, created.ID); err != nil {
		t.Fatalf("owner Get error: %v", err)
	}
}
