package question

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mcqbank/backend/internal/apperror"
	"github.com/mcqbank/backend/internal/auth"
	"github.com/mcqbank/backend/internal/config"
)

var validate = validator.New()

// YearSource exposes the merged year set used to validate PYQ records at
// write time. Satisfied by the refdata service.
type YearSource interface {
	AvailableYears() ([]int, error)
}

type Service interface {
	Submit(ctx context.Context, createdBy uuid.UUID, dto SubmitQuestionRequest) (*Question, error)
	List(ctx context.Context, scope auth.Scope, opts ListOptions) ([]QuestionWithAuthor, error)
	Get(ctx context.Context, scope auth.Scope, id uuid.UUID) (*Question, error)
	Update(ctx context.Context, scope auth.Scope, id uuid.UUID, dto UpdateQuestionRequest) (*Question, error)
	Delete(ctx context.Context, scope auth.Scope, id uuid.UUID) error
	Stats(ctx context.Context, scope auth.Scope) (*Stats, error)
}

type service struct {
	repo  Repository
	years YearSource
}

func NewService(repo Repository, years YearSource) Service {
	return &service{repo: repo, years: years}
}

func (s *service) Submit(ctx context.Context, createdBy uuid.UUID, dto SubmitQuestionRequest) (*Question, error) {
	log := config.WithContext(ctx)

	if err := validate.Struct(dto); err != nil {
		return nil, apperror.Validation("invalid question payload: " + err.Error())
	}

	q, err := dto.entity(createdBy)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := s.validateQuestion(q); err != nil {
		return nil, err
	}

	if err := s.repo.Create(q); err != nil {
		log.WithError(err).Error("Failed to create question")
		return nil, apperror.Internal(err)
	}

	log.WithField("question_id", q.ID.String()).Info("Question created")
	return q, nil
}

func (s *service) List(ctx context.Context, scope auth.Scope, opts ListOptions) ([]QuestionWithAuthor, error) {
	rows, err := s.repo.List(scope, opts)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list questions")
		return nil, apperror.Internal(err)
	}
	return rows, nil
}

// Get returns NotFound for out-of-scope records, never Forbidden, so an
// unauthorized caller cannot learn whether the ID exists.
func (s *service) Get(ctx context.Context, scope auth.Scope, id uuid.UUID) (*Question, error) {
	q, err := s.repo.FindByID(scope, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if q == nil {
		return nil, apperror.NotFound("question not found")
	}
	return q, nil
}

func (s *service) Update(ctx context.Context, scope auth.Scope, id uuid.UUID, dto UpdateQuestionRequest) (*Question, error) {
	log := config.WithContext(ctx)

	q, err := s.repo.FindByID(scope, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if q == nil {
		return nil, apperror.NotFound("question not found")
	}

	if err := dto.apply(q); err != nil {
		return nil, apperror.Validation("invalid question payload")
	}

	// The PYQ-year invariant is re-checked on the merged record.
	if err := s.validateQuestion(q); err != nil {
		return nil, err
	}

	if err := s.repo.Update(q); err != nil {
		log.WithError(err).Error("Failed to update question")
		return nil, apperror.Internal(err)
	}

	log.WithField("question_id", q.ID.String()).Info("Question updated")
	return q, nil
}

func (s *service) Delete(ctx context.Context, scope auth.Scope, id uuid.UUID) error {
	log := config.WithContext(ctx)

	deleted, err := s.repo.Delete(scope, id)
	if err != nil {
		log.WithError(err).Error("Failed to delete question")
		return apperror.Internal(err)
	}
	if !deleted {
		return apperror.NotFound("question not found")
	}

	log.WithField("question_id", id.String()).Info("Question deleted")
	return nil
}

func (s *service) Stats(ctx context.Context, scope auth.Scope) (*Stats, error) {
	acc := NewStatsAccumulator()
	err := s.repo.ForEachInScope(scope, func(q *Question) error {
		acc.Add(q)
		return nil
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to aggregate question stats")
		return nil, apperror.Internal(err)
	}
	return acc.Result(), nil
}

// validateQuestion enforces the invariants the store does not: the answer
// index must point into the options, a JEE MAIN PYQ must carry shift and an
// accepted year, and an exam date must fall in the declared year.
func (s *service) validateQuestion(q *Question) error {
	opts, err := q.OptionList()
	if err != nil {
		return apperror.Validation("options must be a list of strings")
	}
	if len(opts) < 2 {
		return apperror.Validation("a question needs at least two options")
	}
	if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= len(opts) {
		return apperror.Validationf("correctOption must be between 1 and %d", len(opts))
	}

	if !PYQType(q.PYQType).IsValid() {
		return apperror.Validationf("invalid pyqType %q", q.PYQType)
	}
	if q.Shift != "" && !Shift(q.Shift).IsValid() {
		return apperror.Validationf("invalid shift %q", q.Shift)
	}

	if q.PYQType == string(PYQJEEMain) {
		if q.Shift == "" || q.Year == nil {
			return apperror.Validation("JEE MAIN PYQ questions require both year and shift")
		}
		years, err := s.years.AvailableYears()
		if err != nil {
			return apperror.Internal(err)
		}
		accepted := false
		for _, y := range years {
			if y == *q.Year {
				accepted = true
				break
			}
		}
		if !accepted {
			return apperror.Validationf("year %d is not an accepted exam year", *q.Year)
		}
	}

	if q.Year != nil && *q.Year < 2000 {
		return apperror.Validation("year must be 2000 or later")
	}

	if q.ExamDate != nil && *q.ExamDate != "" {
		date, err := time.Parse("2006-01-02", *q.ExamDate)
		if err != nil {
			return apperror.Validation("examDate must be in YYYY-MM-DD format")
		}
		if q.Year == nil {
			return apperror.Validation("examDate requires a year")
		}
		if date.Year() != *q.Year {
			return apperror.Validationf("examDate %s does not fall in year %d", *q.ExamDate, *q.Year)
		}
	}

	return nil
}
