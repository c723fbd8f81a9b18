package services

import (
	"context"
	"errors"
	"testing"

	"github.com/avolkov/quizdeck/internal/common"
	"github.com/avolkov/quizdeck/internal/server/models"
)

func sampleQuestion() QuestionInput {
	return QuestionInput{
		Title:         "2+2?",
		Options:       [4]string{"1", "2", "3", "4"},
		CorrectAnswer: 4,
	}
}

func TestQuestionService_CreateUnderOwnTest(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.registerAndLogin(t, "a@x.com", models.RoleTeacher)
	test, err := e.tests.Create(ctx, alice, "T1", "")
	if err != nil {
		t.Fatalf("Create test error: %v", err)
	}

	q, err := e.questions.Create(ctx, alice, test.ID, sampleQuestion())
	if err != nil {
		t.Fatalf("Create question error: %v", err)
	}
	if q.TestID != test.ID {
		t.Fatalf("question bound to wrong test: %d", q.TestID)
	}
}

func TestQuestionService_CreateUnderForeignTestIsNotFound(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.registerAndLogin(t, "a@x.com", models.RoleTeacher)
	bob := e.registerAndLogin(t, "b@x.com", models.RoleTeacher)

	test, err := e.tests.Create(ctx, alice, "T1", "")
	if err != nil {
		t.Fatalf("Create test error: %v", err)
	}

	_, err = e.questions.Create(ctx, bob, test.ID, sampleQuestion())
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQuestionService_CorrectAnswerRange(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.registerAndLogin(t, "a@x.com", models.RoleTeacher)
	test, err := e.tests.Create(ctx, alice, "T1", "")
	if err != nil {
		t.Fatalf("Create test error: %v", err)
	}

	for _, answer := range []int{0, 5, -1} {
		in := sampleQuestion()
		in.CorrectAnswer = answer
		if _, err := e.questions.Create(ctx, alice, test.ID, in); !errors.Is(err, common.ErrInvalidAnswer) {
			t.Fatalf("answer %d: expected ErrInvalidAnswer, got %v", answer, err)
		}
	}
}

func TestQuestionService_StudentIsDeniedRegardlessOfOwnership(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.registerAndLogin(t, "a@x.com", models.RoleTeacher)
	student := e.registerAndLogin(t, "c@x.com", models.RoleStudent)

	test, err := e.tests.Create(ctx, alice, "T1", "")
	if err != nil {
		t.Fatalf("Create test error: %v", err)
	}
	q, err := e.questions.Create(ctx, alice, test.ID, sampleQuestion())
	if err != nil {
		t.Fatalf("Create question error: %v", err)
	}

	if _, err := e.questions.Get(ctx, student, q.ID); !errors.Is(err, common.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if _, _, err := e.questions.ListByTest(ctx, student, test.ID); !errors.Is(err, common.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestQuestionService_DeletedParentHidesQuestions(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.registerAndLogin(t, "a@x.com", models.RoleTeacher)

	test, err := e.tests.Create(ctx, alice, "T1", "")
	if err != nil {
		t.Fatalf("Create test error: %v", err)
	}
	q, err := e.questions.Create(ctx, alice, test.ID, sampleQuestion())
	if err != nil {
		t.Fatalf("Create question error: %v", err)
	}

	if err := e.tests.Delete(ctx, alice, test.ID); err != nil {
		t.Fatalf("Delete test error: %v", err)
	}

	// Non-cascading delete: the question's own flag stays false...
	if e.rm.QuestionsRepo.ByID[q.ID].Deleted {
		t.Fatalf("question flag must remain false")
	}

	// ...but every path through the deleted parent resolves to not-found,
	// delete included.
	if _, err := e.questions.Get(ctx, alice, q.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for question under deleted test, got %v", err)
	}
	if _, _, err := e.questions.ListByTest(ctx, alice, test.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for listing under deleted test, got %v", err)
	}
	if err := e.questions.Delete(ctx, alice, q.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for delete under deleted test, got %v", err)
	}
}

func TestQuestionService_DeleteIsIdempotent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.registerAndLogin(t, "a@x.com", models.RoleTeacher)

	test, err := e.tests.Create(ctx, alice, "T1", "")
	if err != nil {
		t.Fatalf("Create test error: %v", err)
	}
	q, err := e.questions.Create(ctx, alice, test.ID, sampleQuestion())
	if err != nil {
		t.Fatalf("Create question error: %v", err)
	}

	if err := e.questions.Delete(ctx, alice, q.ID); err != nil {
		t.Fatalf("first Delete error: %v", err)
	}
	if err := e.questions.Delete(ctx, alice, q.ID); err != nil {
		t.Fatalf("second Delete must also succeed, got %v", err)
	}

	if _, err := e.questions.Get(ctx, alice, q.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestQuestionService_GetForTest(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.registerAndLogin(t, "a@x.com", models.RoleTeacher)
	bob := e.registerAndLogin(t, "b@x.com", models.RoleTeacher)

	t1, err := e.tests.Create(ctx, alice, "T1", "")
	if err != nil {
		t.Fatalf("Create test error: %v", err)
	}
	t2, err := e.tests.Create(ctx, alice, "T2", "")
	if err != nil {
		t.Fatalf("Create test error: %v", err)
	}
	q, err := e.questions.Create(ctx, alice, t1.ID, sampleQuestion())
	if err != nil {
		t.Fatalf("Create question error: %v", err)
	}

	got, err := e.questions.GetForTest(ctx, alice, t1.ID, q.ID)
	if err != nil {
		t.Fatalf("GetForTest error: %v", err)
	}
	if got.ID != q.ID || got.TestID != t1.ID {
		t.Fatalf("unexpected question: %+v", got)
	}

	// The question exists, but not under this test.
	if _, err := e.questions.GetForTest(ctx, alice, t2.ID, q.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for test mismatch, got %v", err)
	}

	// A foreign caller never reaches the question lookup.
	if _, err := e.questions.GetForTest(ctx, bob, t1.ID, q.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign test, got %v", err)
	}
}

func TestQuestionService_UpdatePreservesOwnership(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.registerAndLogin(t, "a@x.com", models.RoleTeacher)
	bob := e.registerAndLogin(t, "b@x.com", models.RoleTeacher)

	test, err := e.tests.Create(ctx, alice, "T1", "")
	if err != nil {
		t.Fatalf("Create test error: %v", err)
	}
	q, err := e.questions.Create(ctx, alice, test.ID, sampleQuestion())
	if err != nil {
		t.Fatalf("Create question error: %v", err)
	}

	in := sampleQuestion()
	in.Title = "hijacked"
	if _, err := e.questions.Update(ctx, bob, q.ID, in); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	in.Title = "3+3?"
	in.CorrectAnswer = 2
	updated, err := e.questions.Update(ctx, alice, q.ID, in)
	if err != nil {
		t.Fatalf("owner Update error: %v", err)
	}
	if updated.Title != "3+3?" || updated.CorrectAnswer != 2 {
		t.Fatalf("update not applied: %+v", updated)
	}
}
