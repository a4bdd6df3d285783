package refdata

import (
	"time"

	"github.com/google/uuid"
)

// Year is an admin-curated addition to the built-in year set.
type Year struct {
	Year      int       `gorm:"primaryKey" json:"year"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ExamDate is an admin-curated exam sitting; (year, date) is unique.
type ExamDate struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Year      int       `gorm:"not null;uniqueIndex:idx_exam_dates_year_date" json:"year"`
	Date      string    `gorm:"size:10;not null;uniqueIndex:idx_exam_dates_year_date" json:"date"`
	Label     string    `gorm:"not null" json:"label"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
