package refdata

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	ListYears() ([]Year, error)
	FindYear(year int) (*Year, error)
	CreateYear(y *Year) error
	DeleteYear(year int) error

	ListExamDates(year int) ([]ExamDate, error)
	FindExamDate(year int, date string) (*ExamDate, error)
	FindExamDateByID(id uuid.UUID) (*ExamDate, error)
	CreateExamDate(d *ExamDate) error
	DeleteExamDate(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListYears() ([]Year, error) {
	var years []Year
	if err := r.db.Order("year DESC").Find(&years).Error; err != nil {
		return nil, err
	}
	return years, nil
}

func (r *repository) FindYear(year int) (*Year, error) {
	var y Year
	if err := r.db.First(&y, "year = ?", year).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &y, nil
}

func (r *repository) CreateYear(y *Year) error {
	return r.db.Create(y).Error
}

func (r *repository) DeleteYear(year int) error {
	return r.db.Delete(&Year{}, "year = ?", year).Error
}

func (r *repository) ListExamDates(year int) ([]ExamDate, error) {
	var dates []ExamDate
	if err := r.db.Where("year = ?", year).Order("date ASC").Find(&dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *repository) FindExamDate(year int, date string) (*ExamDate, error) {
	var d ExamDate
	if err := r.db.First(&d, "year = ? AND date = ?", year, date).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *repository) FindExamDateByID(id uuid.UUID) (*ExamDate, error) {
	var d ExamDate
	if err := r.db.First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *repository) CreateExamDate(d *ExamDate) error {
	return r.db.Create(d).Error
}

func (r *repository) DeleteExamDate(id uuid.UUID) error {
	return r.db.Delete(&ExamDate{}, "id = ?", id).Error
}
