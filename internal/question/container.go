package question

import "gorm.io/gorm"

type QuestionContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewQuestionContainer(db *gorm.DB, years YearSource) *QuestionContainer {
	repo := NewRepository(db)
	service := NewService(repo, years)
	handler := NewHandler(service)

	return &QuestionContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
