package question

import (
	"errors"

	"github.com/google/uuid"
	"github.com/mcqbank/backend/internal/auth"
	"gorm.io/gorm"
)

type Repository interface {
	Create(q *Question) error
	FindByID(scope auth.Scope, id uuid.UUID) (*Question, error)
	List(scope auth.Scope, opts ListOptions) ([]QuestionWithAuthor, error)
	Update(q *Question) error
	Delete(scope auth.Scope, id uuid.UUID) (bool, error)
	ForEachInScope(scope auth.Scope, fn func(*Question) error) error
	CountByYear(year int) (int64, error)
	CountByExamDate(date string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(q *Question) error {
	return r.db.Create(q).Error
}

// FindByID intersects the lookup with the scope, so an out-of-scope record is
// indistinguishable from an absent one.
func (r *repository) FindByID(scope auth.Scope, id uuid.UUID) (*Question, error) {
	var q Question
	if err := scope.Apply(r.db).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) List(scope auth.Scope, opts ListOptions) ([]QuestionWithAuthor, error) {
	tx := scope.Apply(r.db.Model(&Question{}))

	if opts.Subject != "" {
		tx = tx.Where("subject = ?", opts.Subject)
	}
	if opts.PYQType != "" {
		tx = tx.Where("pyq_type = ?", opts.PYQType)
	}
	if opts.Shift != "" {
		tx = tx.Where("shift = ?", opts.Shift)
	}
	if opts.Year != nil {
		tx = tx.Where("year = ?", *opts.Year)
	}

	var rows []QuestionWithAuthor
	if scope.All {
		// Superuser listings resolve the owner's display name.
		tx = tx.
			Select("questions.*, users.username AS created_by_username").
			Joins("LEFT JOIN users ON users.id = questions.created_by")
	} else {
		tx = tx.Select("questions.*")
	}

	if err := tx.Order(opts.OrderClause()).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Update(q *Question) error {
	return r.db.Save(q).Error
}

func (r *repository) Delete(scope auth.Scope, id uuid.UUID) (bool, error) {
	res := scope.Apply(r.db).Delete(&Question{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ForEachInScope streams the scoped set one row at a time so aggregation
// never loads the whole collection into memory.
func (r *repository) ForEachInScope(scope auth.Scope, fn func(*Question) error) error {
	rows, err := scope.Apply(r.db.Model(&Question{})).Order("seq ASC").Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var q Question
		if err := r.db.ScanRows(rows, &q); err != nil {
			return err
		}
		if err := fn(&q); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *repository) CountByYear(year int) (int64, error) {
	var count int64
	err := r.db.Model(&Question{}).Where("year = ?", year).Count(&count).Error
	return count, err
}

func (r *repository) CountByExamDate(date string) (int64, error) {
	var count int64
	err := r.db.Model(&Question{}).Where("exam_date = ?", date).Count(&count).Error
	return count, err
}
