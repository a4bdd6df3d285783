package container

import (
	"context"
	"log"

	"github.com/mcqbank/backend/internal/auth"
	"github.com/mcqbank/backend/internal/config"
	"github.com/mcqbank/backend/internal/question"
	"github.com/mcqbank/backend/internal/refdata"
	"github.com/mcqbank/backend/internal/user"
)

type Container struct {
	AuthContainer     *auth.AuthContainer
	UserContainer     *user.UserContainer
	QuestionContainer *question.QuestionContainer
	RefdataContainer  *refdata.RefdataContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := config.MustGetenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&auth.Session{},
		&question.Question{},
		&refdata.Year{},
		&refdata.ExamDate{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	authContainer := auth.NewAuthContainer(config.DB)
	userContainer := user.NewUserContainer(config.DB, authContainer.Sessions)

	questionRepo := question.NewRepository(config.DB)
	refdataContainer := refdata.NewRefdataContainer(config.DB, questionRepo)
	questionContainer := question.NewQuestionContainer(config.DB, refdataContainer.Service)

	return &Container{
		AuthContainer:     authContainer,
		UserContainer:     userContainer,
		QuestionContainer: questionContainer,
		RefdataContainer:  refdataContainer,
	}
}
