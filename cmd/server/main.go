package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/mcqbank/backend/internal/config"
	"github.com/mcqbank/backend/internal/container"
	"github.com/mcqbank/backend/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		AuthHandler:     c.AuthContainer.Handler,
		AuthMiddleware:  c.AuthContainer.Middleware,
		UserHandler:     c.UserContainer.Handler,
		QuestionHandler: c.QuestionContainer.Handler,
		RefdataHandler:  c.RefdataContainer.Handler,
	})

	port := config.GetenvDefault("PORT", "8080")
	logrus.Infof("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
