package refdata

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mcqbank/backend/internal/apperror"
	"github.com/mcqbank/backend/internal/config"
)

// QuestionCounter reports how many questions reference a year or exam date.
// Satisfied by the question repository.
type QuestionCounter interface {
	CountByYear(year int) (int64, error)
	CountByExamDate(date string) (int64, error)
}

// YearInfo is the admin view of a year: built-in entries cannot be deleted.
type YearInfo struct {
	Year    int  `json:"year"`
	Builtin bool `json:"builtin"`
}

type Service interface {
	AvailableYears() ([]int, error)
	ListYears() ([]YearInfo, error)
	AddYear(ctx context.Context, year int) (*Year, error)
	DeleteYear(ctx context.Context, year int) error

	AvailableExamDates(year int) ([]DateEntry, error)
	AddExamDate(ctx context.Context, dto CreateExamDateRequest) (*ExamDate, error)
	DeleteExamDate(ctx context.Context, id uuid.UUID) error
}

// The reference-usage checks below run before the delete with no surrounding
// transaction. A question referencing the year can be created between check
// and delete; acceptable for an admin tool with a handful of operators.
type service struct {
	repo      Repository
	questions QuestionCounter
}

func NewService(repo Repository, questions QuestionCounter) Service {
	return &service{repo: repo, questions: questions}
}

// AvailableYears merges stored years over the built-in set, descending and
// deduplicated.
func (s *service) AvailableYears() ([]int, error) {
	stored, err := s.repo.ListYears()
	if err != nil {
		return nil, apperror.Internal(err)
	}

	seen := make(map[int]bool)
	var years []int
	for _, y := range defaultYears {
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	for _, y := range stored {
		if !seen[y.Year] {
			seen[y.Year] = true
			years = append(years, y.Year)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

func (s *service) ListYears() ([]YearInfo, error) {
	years, err := s.AvailableYears()
	if err != nil {
		return nil, err
	}

	infos := make([]YearInfo, 0, len(years))
	for _, y := range years {
		infos = append(infos, YearInfo{Year: y, Builtin: IsDefaultYear(y)})
	}
	return infos, nil
}

func (s *service) AddYear(ctx context.Context, year int) (*Year, error) {
	log := config.WithContext(ctx)

	if year < 1000 {
		return nil, apperror.Validation("year must be a 4-digit number")
	}
	if IsDefaultYear(year) {
		return nil, apperror.Conflictf("year %d is built in", year)
	}

	existing, err := s.repo.FindYear(year)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflictf("year %d already exists", year)
	}

	y := Year{Year: year}
	if err := s.repo.CreateYear(&y); err != nil {
		log.WithError(err).Error("Failed to create year")
		return nil, apperror.Internal(err)
	}

	log.WithField("year", year).Info("Year added")
	return &y, nil
}

func (s *service) DeleteYear(ctx context.Context, year int) error {
	log := config.WithContext(ctx)

	if IsDefaultYear(year) {
		return apperror.Conflictf("year %d is built in and cannot be deleted", year)
	}

	existing, err := s.repo.FindYear(year)
	if err != nil {
		return apperror.Internal(err)
	}
	if existing == nil {
		return apperror.NotFound("year not found")
	}

	count, err := s.questions.CountByYear(year)
	if err != nil {
		return apperror.Internal(err)
	}
	if count > 0 {
		return apperror.Conflictf("cannot delete year %d: %d questions reference it", year, count)
	}

	if err := s.repo.DeleteYear(year); err != nil {
		log.WithError(err).Error("Failed to delete year")
		return apperror.Internal(err)
	}

	log.WithField("year", year).Info("Year deleted")
	return nil
}

// AvailableExamDates merges stored dates over the built-in table for the
// year, ascending and deduplicated by date. A stored record sharing a
// built-in date replaces its label.
func (s *service) AvailableExamDates(year int) ([]DateEntry, error) {
	stored, err := s.repo.ListExamDates(year)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	byDate := make(map[string]string)
	for _, entry := range builtinExamDates[year] {
		byDate[entry.Date] = entry.Label
	}
	for _, d := range stored {
		byDate[d.Date] = d.Label
	}

	entries := make([]DateEntry, 0, len(byDate))
	for date, label := range byDate {
		entries = append(entries, DateEntry{Date: date, Label: label})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries, nil
}

func (s *service) AddExamDate(ctx context.Context, dto CreateExamDateRequest) (*ExamDate, error) {
	log := config.WithContext(ctx)

	if dto.Year < 1000 {
		return nil, apperror.Validation("year must be a 4-digit number")
	}
	parsed, err := time.Parse("2006-01-02", dto.Date)
	if err != nil {
		return nil, apperror.Validation("date must be in YYYY-MM-DD format")
	}
	if parsed.Year() != dto.Year {
		return nil, apperror.Validationf("date %s does not fall in year %d", dto.Date, dto.Year)
	}
	if dto.Label == "" {
		return nil, apperror.Validation("label is required")
	}

	if isBuiltinDate(dto.Year, dto.Date) {
		return nil, apperror.Conflictf("exam date %s is built in", dto.Date)
	}

	existing, err := s.repo.FindExamDate(dto.Year, dto.Date)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflictf("exam date %s already exists for %d", dto.Date, dto.Year)
	}

	d := ExamDate{
		ID:    uuid.New(),
		Year:  dto.Year,
		Date:  dto.Date,
		Label: dto.Label,
	}
	if err := s.repo.CreateExamDate(&d); err != nil {
		log.WithError(err).Error("Failed to create exam date")
		return nil, apperror.Internal(err)
	}

	log.WithField("date", dto.Date).Info("Exam date added")
	return &d, nil
}

func (s *service) DeleteExamDate(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindExamDateByID(id)
	if err != nil {
		return apperror.Internal(err)
	}
	if existing == nil {
		return apperror.NotFound("exam date not found")
	}

	// Built-in dates are never stored, but guard anyway in case one was
	// seeded directly into the table.
	if isBuiltinDate(existing.Year, existing.Date) {
		return apperror.Conflictf("exam date %s is built in and cannot be deleted", existing.Date)
	}

	count, err := s.questions.CountByExamDate(existing.Date)
	if err != nil {
		return apperror.Internal(err)
	}
	if count > 0 {
		return apperror.Conflictf("cannot delete exam date %s: %d questions reference it", existing.Date, count)
	}

	if err := s.repo.DeleteExamDate(id); err != nil {
		log.WithError(err).Error("Failed to delete exam date")
		return apperror.Internal(err)
	}

	log.WithField("date", existing.Date).Info("Exam date deleted")
	return nil
}
