package user

import (
	"github.com/mcqbank/backend/internal/auth"
	"gorm.io/gorm"
)

type UserContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewUserContainer(db *gorm.DB, sessions auth.SessionRepository) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service, sessions)

	return &UserContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
