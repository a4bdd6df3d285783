package question

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mcqbank/backend/internal/apperror"
	"github.com/mcqbank/backend/internal/auth"
)

// fakeRepo is an in-memory Repository honoring the ownership scope the same
// way the SQL implementation does.
type fakeRepo struct {
	questions []*Question
	nextSeq   int64
}

func (f *fakeRepo) Create(q *Question) error {
	f.nextSeq++
	q.Seq = f.nextSeq
	copied := *q
	f.questions = append(f.questions, &copied)
	return nil
}

func (f *fakeRepo) FindByID(scope auth.Scope, id uuid.UUID) (*Question, error) {
	for _, q := range f.questions {
		if q.ID == id && scope.Contains(q.CreatedBy) {
			copied := *q
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) List(scope auth.Scope, opts ListOptions) ([]QuestionWithAuthor, error) {
	var rows []QuestionWithAuthor
	for _, q := range f.questions {
		if !scope.Contains(q.CreatedBy) {
			continue
		}
		if opts.Subject != "" && q.Subject != opts.Subject {
			continue
		}
		if opts.PYQType != "" && q.PYQType != opts.PYQType {
			continue
		}
		if opts.Shift != "" && q.Shift != opts.Shift {
			continue
		}
		if opts.Year != nil && (q.Year == nil || *q.Year != *opts.Year) {
			continue
		}
		rows = append(rows, QuestionWithAuthor{Question: *q})
	}
	return rows, nil
}

func (f *fakeRepo) Update(q *Question) error {
	for i, existing := range f.questions {
		if existing.ID == q.ID {
			copied := *q
			f.questions[i] = &copied
			return nil
		}
	}
	return nil
}

func (f *fakeRepo) Delete(scope auth.Scope, id uuid.UUID) (bool, error) {
	for i, q := range f.questions {
		if q.ID == id && scope.Contains(q.CreatedBy) {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ForEachInScope(scope auth.Scope, fn func(*Question) error) error {
	for _, q := range f.questions {
		if !scope.Contains(q.CreatedBy) {
			continue
		}
		if err := fn(q); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeRepo) CountByYear(year int) (int64, error) {
	var count int64
	for _, q := range f.questions {
		if q.Year != nil && *q.Year == year {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) CountByExamDate(date string) (int64, error) {
	var count int64
	for _, q := range f.questions {
		if q.ExamDate != nil && *q.ExamDate == date {
			count++
		}
	}
	return count, nil
}

type fakeYears struct{ years []int }

func (f fakeYears) AvailableYears() ([]int, error) {
	return f.years, nil
}

func newTestService() (Service, *fakeRepo) {
	repo := &fakeRepo{}
	return NewService(repo, fakeYears{years: []int{2025, 2024, 2023, 2022, 2021}}), repo
}

func validSubmit() SubmitQuestionRequest {
	return SubmitQuestionRequest{
		QuestionNo:    "Q12",
		Question:      "A particle moves in a circle...",
		Options:       []string{"2 m/s", "4 m/s", "6 m/s", "8 m/s"},
		CorrectOption: 1,
		Subject:       "Physics",
		Topic:         "Circular Motion",
		Difficulty:    "Medium",
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("ConvertsOneBasedCorrectOption", func(t *testing.T) {
		svc, _ := newTestService()

		q, err := svc.Submit(ctx, owner, validSubmit())
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if q.CorrectOptionIndex != 0 {
			t.Errorf("correctOption 1 must store index 0, got %d", q.CorrectOptionIndex)
		}

		dto := validSubmit()
		dto.CorrectOption = 4
		q, err = svc.Submit(ctx, owner, dto)
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if q.CorrectOptionIndex != 3 {
			t.Errorf("correctOption 4 must store index 3, got %d", q.CorrectOptionIndex)
		}
	})

	t.Run("RejectsOutOfBoundsCorrectOption", func(t *testing.T) {
		svc, _ := newTestService()

		dto := validSubmit()
		dto.CorrectOption = 5
		if _, err := svc.Submit(ctx, owner, dto); apperror.KindOf(err) != apperror.KindValidation {
			t.Errorf("correctOption past the option count must fail validation, got %v", err)
		}
	})

	t.Run("JEEMainRequiresYearAndShift", func(t *testing.T) {
		svc, _ := newTestService()

		dto := validSubmit()
		dto.PYQType = string(PYQJEEMain)
		if _, err := svc.Submit(ctx, owner, dto); apperror.KindOf(err) != apperror.KindValidation {
			t.Errorf("JEE MAIN PYQ without year/shift must fail validation, got %v", err)
		}

		dto.Year = intPtr(2024)
		if _, err := svc.Submit(ctx, owner, dto); apperror.KindOf(err) != apperror.KindValidation {
			t.Errorf("JEE MAIN PYQ without shift must fail validation, got %v", err)
		}

		dto.Shift = string(ShiftSession1)
		if _, err := svc.Submit(ctx, owner, dto); err != nil {
			t.Errorf("JEE MAIN PYQ with year and shift must succeed, got %v", err)
		}
	})

	t.Run("JEEMainRejectsUnknownYear", func(t *testing.T) {
		svc, _ := newTestService()

		dto := validSubmit()
		dto.PYQType = string(PYQJEEMain)
		dto.Shift = string(ShiftSession1)
		dto.Year = intPtr(2010)
		if _, err := svc.Submit(ctx, owner, dto); apperror.KindOf(err) != apperror.KindValidation {
			t.Errorf("year outside the accepted set must fail validation, got %v", err)
		}
	})

	t.Run("ExamDateMustMatchYear", func(t *testing.T) {
		svc, _ := newTestService()

		dto := validSubmit()
		dto.Year = intPtr(2024)
		dto.ExamDate = strPtr("2025-01-22")
		if _, err := svc.Submit(ctx, owner, dto); apperror.KindOf(err) != apperror.KindValidation {
			t.Errorf("examDate in a different year must fail validation, got %v", err)
		}

		dto.ExamDate = strPtr("2024-04-05")
		if _, err := svc.Submit(ctx, owner, dto); err != nil {
			t.Errorf("matching examDate must succeed, got %v", err)
		}
	})
}

func TestOwnershipScoping(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	svc, _ := newTestService()
	created, err := svc.Submit(ctx, owner, validSubmit())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	t.Run("OutOfScopeGetIsNotFound", func(t *testing.T) {
		_, err := svc.Get(ctx, auth.ScopeFor(auth.RoleUser, stranger), created.ID)
		if apperror.KindOf(err) != apperror.KindNotFound {
			t.Errorf("out-of-scope get must be NotFound (never Forbidden), got %v", err)
		}
	})

	t.Run("SuperuserSeesEverything", func(t *testing.T) {
		q, err := svc.Get(ctx, auth.ScopeFor(auth.RoleSuperuser, stranger), created.ID)
		if err != nil {
			t.Fatalf("superuser get failed: %v", err)
		}
		if q.ID != created.ID {
			t.Errorf("wrong record: %s", q.ID)
		}
	})

	t.Run("ListNeverLeaksOtherOwners", func(t *testing.T) {
		if _, err := svc.Submit(ctx, stranger, validSubmit()); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}

		rows, err := svc.List(ctx, auth.ScopeFor(auth.RoleUser, owner), ListOptions{})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		for _, row := range rows {
			if row.CreatedBy != owner {
				t.Errorf("list leaked a question owned by %s", row.CreatedBy)
			}
		}

		all, err := svc.List(ctx, auth.ScopeFor(auth.RoleSuperuser, stranger), ListOptions{})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(all) != 2 {
			t.Errorf("superuser list must see the full collection, got %d rows", len(all))
		}
	})

	t.Run("OutOfScopeDeleteIsNotFound", func(t *testing.T) {
		err := svc.Delete(ctx, auth.ScopeFor(auth.RoleUser, stranger), created.ID)
		if apperror.KindOf(err) != apperror.KindNotFound {
			t.Errorf("out-of-scope delete must be NotFound, got %v", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("RevalidatesPYQInvariant", func(t *testing.T) {
		svc, _ := newTestService()
		created, err := svc.Submit(ctx, owner, validSubmit())
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}

		scope := auth.ScopeFor(auth.RoleUser, owner)
		patch := UpdateQuestionRequest{PYQType: strPtr(string(PYQJEEMain))}
		if _, err := svc.Update(ctx, scope, created.ID, patch); apperror.KindOf(err) != apperror.KindValidation {
			t.Errorf("patching to JEE MAIN without year/shift must fail validation, got %v", err)
		}
	})

	t.Run("ConvertsPatchedCorrectOption", func(t *testing.T) {
		svc, _ := newTestService()
		created, err := svc.Submit(ctx, owner, validSubmit())
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}

		scope := auth.ScopeFor(auth.RoleUser, owner)
		updated, err := svc.Update(ctx, scope, created.ID, UpdateQuestionRequest{CorrectOption: intPtr(3)})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.CorrectOptionIndex != 2 {
			t.Errorf("patched correctOption 3 must store index 2, got %d", updated.CorrectOptionIndex)
		}
	})

	t.Run("BoundsCheckAgainstPatchedOptions", func(t *testing.T) {
		svc, _ := newTestService()
		created, err := svc.Submit(ctx, owner, validSubmit())
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}

		scope := auth.ScopeFor(auth.RoleUser, owner)
		shrunk := []string{"True", "False"}
		patch := UpdateQuestionRequest{Options: &shrunk, CorrectOption: intPtr(3)}
		if _, err := svc.Update(ctx, scope, created.ID, patch); apperror.KindOf(err) != apperror.KindValidation {
			t.Errorf("index past the shrunk option list must fail validation, got %v", err)
		}
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	svc, _ := newTestService()

	scope := auth.ScopeFor(auth.RoleUser, owner)

	stats, err := svc.Stats(ctx, scope)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalQuestions != 0 || len(stats.Subjects) != 0 {
		t.Errorf("empty scope must yield zero stats, got %+v", stats)
	}

	subjects := []string{"Physics", "Physics", "Chemistry"}
	for _, subject := range subjects {
		dto := validSubmit()
		dto.Subject = subject
		if _, err := svc.Submit(ctx, owner, dto); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	stats, err = svc.Stats(ctx, scope)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalQuestions != 3 {
		t.Errorf("total. want 3, got %d", stats.TotalQuestions)
	}
	if stats.Subjects["Physics"] != 2 || stats.Subjects["Chemistry"] != 1 {
		t.Errorf("subjects. got %+v", stats.Subjects)
	}
}
