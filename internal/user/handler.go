package user

import (
	"encoding/json"
	"net/http"

	"github.com/mcqbank/backend/internal/apperror"
	"github.com/mcqbank/backend/internal/auth"
	"github.com/mcqbank/backend/internal/config"
)

type Handler struct {
	service  Service
	sessions auth.SessionRepository
}

func NewHandler(service Service, sessions auth.SessionRepository) *Handler {
	return &Handler{service: service, sessions: sessions}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, apperror.Validation("invalid request body"))
		return
	}

	resp, err := h.service.Register(r.Context(), dto)
	if err != nil {
		log.WithError(err).Warn("Registration failed")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "registration successful",
		"user":    resp,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, apperror.Validation("invalid request body"))
		return
	}

	u, err := h.service.Authenticate(r.Context(), dto)
	if err != nil {
		config.Error(w, err)
		return
	}

	principal := auth.Principal{UserID: u.ID, Username: u.Username, Role: u.Role}

	session := auth.NewSession(principal)
	if err := h.sessions.Create(session); err != nil {
		log.WithError(err).Error("Failed to create session")
		config.Error(w, apperror.Internal(err))
		return
	}

	token, err := auth.GenerateJWT(principal, session.ID, auth.SessionTTL)
	if err != nil {
		log.WithError(err).Error("Failed to sign session token")
		config.Error(w, apperror.Internal(err))
		return
	}

	auth.SetSessionCookie(w, token)
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"user": map[string]string{
			"id":       u.ID.String(),
			"username": u.Username,
			"role":     u.Role,
		},
	})
}

// List is superuser-only, enforced by the router.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	users, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list users")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, users)
}
