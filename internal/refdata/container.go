package refdata

import "gorm.io/gorm"

type RefdataContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewRefdataContainer(db *gorm.DB, questions QuestionCounter) *RefdataContainer {
	repo := NewRepository(db)
	service := NewService(repo, questions)
	handler := NewHandler(service)

	return &RefdataContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
