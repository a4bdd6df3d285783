package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mcqbank/backend/internal/auth"
	"github.com/mcqbank/backend/internal/middlewares"
	"github.com/mcqbank/backend/internal/question"
	"github.com/mcqbank/backend/internal/refdata"
	"github.com/mcqbank/backend/internal/user"
)

type RouterConfig struct {
	AuthHandler     *auth.Handler
	AuthMiddleware  func(http.Handler) http.Handler
	UserHandler     *user.Handler
	QuestionHandler *question.Handler
	RefdataHandler  *refdata.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Post("/register", cfg.UserHandler.Register)
	r.Post("/login", cfg.UserHandler.Login)
	r.Post("/logout", cfg.AuthHandler.Logout)
	r.Get("/auth/status", cfg.AuthHandler.Status)

	// Unauthenticated mirror for dropdown population.
	r.Get("/public/years", cfg.RefdataHandler.PublicYears)
	r.Get("/public/exam-dates/{year}", cfg.RefdataHandler.PublicExamDates)
	r.Get("/api/years", cfg.RefdataHandler.PublicYears)

	r.Group(func(r chi.Router) {
		r.Use(cfg.AuthMiddleware)

		r.Post("/submit", cfg.QuestionHandler.Submit)
		r.Get("/stats", cfg.QuestionHandler.Stats)
		r.Mount("/questions", question.Routes(cfg.QuestionHandler))

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireSuperuser)

			r.Get("/users", cfg.UserHandler.List)
			r.Mount("/admin", refdata.AdminRoutes(cfg.RefdataHandler))
		})
	})

	return r
}
