package refdata

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mcqbank/backend/internal/apperror"
	"github.com/mcqbank/backend/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// PublicYears backs the unauthenticated dropdowns.
func (h *Handler) PublicYears(w http.ResponseWriter, r *http.Request) {
	years, err := h.service.AvailableYears()
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to list years")
		config.Error(w, err)
		return
	}
	config.JSON(w, http.StatusOK, years)
}

func (h *Handler) PublicExamDates(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		config.Error(w, apperror.Validation("invalid year"))
		return
	}

	dates, err := h.service.AvailableExamDates(year)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to list exam dates")
		config.Error(w, err)
		return
	}
	config.JSON(w, http.StatusOK, dates)
}

func (h *Handler) ListYears(w http.ResponseWriter, r *http.Request) {
	years, err := h.service.ListYears()
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to list years")
		config.Error(w, err)
		return
	}
	config.JSON(w, http.StatusOK, years)
}

func (h *Handler) AddYear(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateYearRequest
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, apperror.Validation("invalid request body"))
		return
	}

	y, err := h.service.AddYear(r.Context(), dto.Year)
	if err != nil {
		log.WithError(err).Warn("Add year rejected")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, y)
}

func (h *Handler) DeleteYear(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		config.Error(w, apperror.Validation("invalid year"))
		return
	}

	if err := h.service.DeleteYear(r.Context(), year); err != nil {
		log.WithError(err).Warn("Delete year rejected")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "year deleted",
	})
}

func (h *Handler) ListExamDates(w http.ResponseWriter, r *http.Request) {
	h.PublicExamDates(w, r)
}

func (h *Handler) AddExamDate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateExamDateRequest
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, apperror.Validation("invalid request body"))
		return
	}

	d, err := h.service.AddExamDate(r.Context(), dto)
	if err != nil {
		log.WithError(err).Warn("Add exam date rejected")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, d)
}

func (h *Handler) DeleteExamDate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, apperror.Validation("invalid exam date id"))
		return
	}

	if err := h.service.DeleteExamDate(r.Context(), id); err != nil {
		log.WithError(err).Warn("Delete exam date rejected")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "exam date deleted",
	})
}
