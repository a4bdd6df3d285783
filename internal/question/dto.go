package question

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SubmitQuestionRequest carries the editor form payload. correctOption is
// 1-based on the wire; the stored index is 0-based and the conversion happens
// here, before the record reaches the service operation.
type SubmitQuestionRequest struct {
	QuestionNo    string   `json:"questionNo"`
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectOption int      `json:"correctOption" validate:"required,min=1"`
	Subject       string   `json:"subject" validate:"required"`
	Topic         string   `json:"topic" validate:"required"`
	Difficulty    string   `json:"difficulty" validate:"required"`
	PYQType       string   `json:"pyqType"`
	Shift         string   `json:"shift"`
	Year          *int     `json:"year"`
	ExamDate      *string  `json:"examDate"`
}

func (r SubmitQuestionRequest) entity(createdBy uuid.UUID) (*Question, error) {
	opts, err := json.Marshal(r.Options)
	if err != nil {
		return nil, err
	}

	pyqType := r.PYQType
	if pyqType == "" {
		pyqType = string(PYQNone)
	}

	return &Question{
		ID:                 uuid.New(),
		QuestionNo:         r.QuestionNo,
		QuestionText:       r.Question,
		Options:            datatypes.JSON(opts),
		CorrectOptionIndex: r.CorrectOption - 1,
		Subject:            r.Subject,
		Topic:              r.Topic,
		Difficulty:         r.Difficulty,
		PYQType:            pyqType,
		Shift:              r.Shift,
		Year:               r.Year,
		ExamDate:           r.ExamDate,
		CreatedBy:          createdBy,
	}, nil
}

// UpdateQuestionRequest is a partial patch; nil fields are left unchanged.
type UpdateQuestionRequest struct {
	QuestionNo    *string   `json:"questionNo"`
	Question      *string   `json:"question"`
	Options       *[]string `json:"options"`
	CorrectOption *int      `json:"correctOption"`
	Subject       *string   `json:"subject"`
	Topic         *string   `json:"topic"`
	Difficulty    *string   `json:"difficulty"`
	PYQType       *string   `json:"pyqType"`
	Shift         *string   `json:"shift"`
	Year          *int      `json:"year"`
	ExamDate      *string   `json:"examDate"`
}

// apply merges the patch onto an existing record. The 1-based correctOption
// conversion happens here, at the boundary.
func (r UpdateQuestionRequest) apply(q *Question) error {
	if r.QuestionNo != nil {
		q.QuestionNo = *r.QuestionNo
	}
	if r.Question != nil {
		q.QuestionText = *r.Question
	}
	if r.Options != nil {
		opts, err := json.Marshal(*r.Options)
		if err != nil {
			return err
		}
		q.Options = datatypes.JSON(opts)
	}
	if r.CorrectOption != nil {
		q.CorrectOptionIndex = *r.CorrectOption - 1
	}
	if r.Subject != nil {
		q.Subject = *r.Subject
	}
	if r.Topic != nil {
		q.Topic = *r.Topic
	}
	if r.Difficulty != nil {
		q.Difficulty = *r.Difficulty
	}
	if r.PYQType != nil {
		q.PYQType = *r.PYQType
	}
	if r.Shift != nil {
		q.Shift = *r.Shift
	}
	if r.Year != nil {
		q.Year = r.Year
	}
	if r.ExamDate != nil {
		q.ExamDate = r.ExamDate
	}
	return nil
}
