package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/mcqbank/backend/internal/config"
)

type Handler struct {
	sessions SessionRepository
}

func NewHandler(sessions SessionRepository) *Handler {
	return &Handler{sessions: sessions}
}

// SetSessionCookie writes the login cookie. Shared with the user handler.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if cookie, err := r.Cookie(CookieName); err == nil {
		if claims, err := ValidateJWT(cookie.Value); err == nil {
			if sessionID, err := uuid.Parse(claims.ID); err == nil {
				if err := h.sessions.Delete(sessionID); err != nil {
					log.WithError(err).Error("Failed to delete session")
				}
			}
		}
	}

	clearSessionCookie(w)
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}

// Status reports whether the request carries a live session. It never
// returns 401; an anonymous caller just sees authenticated=false.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	principal, err := ResolvePrincipal(r, h.sessions)
	if err != nil {
		config.JSON(w, http.StatusOK, map[string]interface{}{
			"authenticated": false,
		})
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user": map[string]string{
			"id":       principal.UserID.String(),
			"username": principal.Username,
			"role":     principal.Role,
		},
	})
}
