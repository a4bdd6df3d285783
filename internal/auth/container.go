package auth

import (
	"net/http"

	"gorm.io/gorm"
)

type AuthContainer struct {
	Sessions   SessionRepository
	Handler    *Handler
	Middleware func(http.Handler) http.Handler
}

func NewAuthContainer(db *gorm.DB) *AuthContainer {
	sessions := NewSessionRepository(db)

	return &AuthContainer{
		Sessions:   sessions,
		Handler:    NewHandler(sessions),
		Middleware: Middleware(sessions),
	}
}
