package question

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Question struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Seq                int64          `gorm:"autoIncrement;uniqueIndex" json:"-"`
	QuestionNo         string         `gorm:"column:question_no" json:"questionNo"`
	QuestionText       string         `gorm:"type:text;not null" json:"question"`
	Options            datatypes.JSON `gorm:"type:jsonb;not null" json:"options"`
	CorrectOptionIndex int            `gorm:"not null" json:"correctOptionIndex"`
	Subject            string         `gorm:"not null;index" json:"subject"`
	Topic              string         `gorm:"not null" json:"topic"`
	Difficulty         string         `gorm:"not null" json:"difficulty"`
	PYQType            string         `gorm:"column:pyq_type;not null;default:'Not PYQ'" json:"pyqType"`
	Shift              string         `json:"shift,omitempty"`
	Year               *int           `gorm:"index" json:"year,omitempty"`
	ExamDate           *string        `gorm:"size:10" json:"examDate,omitempty"`
	CreatedBy          uuid.UUID      `gorm:"type:uuid;not null;index" json:"createdBy"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}

// OptionList decodes the jsonb options column.
func (q *Question) OptionList() ([]string, error) {
	var opts []string
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// QuestionWithAuthor carries the owner's display username, resolved only for
// superuser listings.
type QuestionWithAuthor struct {
	Question
	CreatedByUsername string `gorm:"column:created_by_username" json:"createdByUsername,omitempty"`
}
