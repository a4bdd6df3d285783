package refdata

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AdminRoutes is mounted behind the superuser middleware.
func AdminRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/years", h.ListYears)
	r.Post("/years", h.AddYear)
	r.Delete("/years/{year}", h.DeleteYear)

	r.Get("/exam-dates/{year}", h.ListExamDates)
	r.Post("/exam-dates", h.AddExamDate)
	r.Delete("/exam-dates/{id}", h.DeleteExamDate)

	return r
}
