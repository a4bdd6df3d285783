package question

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mcqbank/backend/internal/apperror"
	"github.com/mcqbank/backend/internal/auth"
	"github.com/mcqbank/backend/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	principal, err := auth.FromContext(r.Context())
	if err != nil {
		config.Error(w, apperror.Unauthenticated("authentication required"))
		return
	}

	var dto SubmitQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, apperror.Validation("invalid request body"))
		return
	}

	q, err := h.service.Submit(r.Context(), principal.UserID, dto)
	if err != nil {
		log.WithError(err).Warn("Question submission rejected")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"message":    "question saved",
		"questionId": q.ID,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	principal, err := auth.FromContext(r.Context())
	if err != nil {
		config.Error(w, apperror.Unauthenticated("authentication required"))
		return
	}

	scope := auth.ScopeFor(principal.Role, principal.UserID)
	opts := ParseListOptions(r.URL.Query())

	rows, err := h.service.List(r.Context(), scope, opts)
	if err != nil {
		log.WithError(err).Error("Failed to list questions")
		config.Error(w, err)
		return
	}
	if rows == nil {
		rows = []QuestionWithAuthor{}
	}

	config.JSON(w, http.StatusOK, rows)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.FromContext(r.Context())
	if err != nil {
		config.Error(w, apperror.Unauthenticated("authentication required"))
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, apperror.Validation("invalid question id"))
		return
	}

	scope := auth.ScopeFor(principal.Role, principal.UserID)
	q, err := h.service.Get(r.Context(), scope, id)
	if err != nil {
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	principal, err := auth.FromContext(r.Context())
	if err != nil {
		config.Error(w, apperror.Unauthenticated("authentication required"))
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, apperror.Validation("invalid question id"))
		return
	}

	var dto UpdateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, apperror.Validation("invalid request body"))
		return
	}

	scope := auth.ScopeFor(principal.Role, principal.UserID)
	q, err := h.service.Update(r.Context(), scope, id, dto)
	if err != nil {
		log.WithError(err).Warn("Question update rejected")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.FromContext(r.Context())
	if err != nil {
		config.Error(w, apperror.Unauthenticated("authentication required"))
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, apperror.Validation("invalid question id"))
		return
	}

	scope := auth.ScopeFor(principal.Role, principal.UserID)
	if err := h.service.Delete(r.Context(), scope, id); err != nil {
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "question deleted",
	})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	principal, err := auth.FromContext(r.Context())
	if err != nil {
		config.Error(w, apperror.Unauthenticated("authentication required"))
		return
	}

	scope := auth.ScopeFor(principal.Role, principal.UserID)
	stats, err := h.service.Stats(r.Context(), scope)
	if err != nil {
		log.WithError(err).Error("Failed to compute stats")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, stats)
}
