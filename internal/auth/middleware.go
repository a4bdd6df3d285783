package auth

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mcqbank/backend/internal/apperror"
	"github.com/mcqbank/backend/internal/config"
)

// ResolvePrincipal authenticates a request from its session cookie. It
// requires both a valid token signature and a live session row.
func ResolvePrincipal(r *http.Request, sessions SessionRepository) (*Principal, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, apperror.Unauthenticated("authentication required")
	}

	claims, err := ValidateJWT(cookie.Value)
	if err != nil {
		return nil, apperror.Unauthenticated("invalid session")
	}

	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, apperror.Unauthenticated("invalid session")
	}

	session, err := sessions.FindByID(sessionID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if session == nil || time.Now().After(session.ExpiresAt) {
		return nil, apperror.Unauthenticated("session expired")
	}

	return &Principal{
		UserID:   session.UserID,
		Username: session.Username,
		Role:     session.Role,
	}, nil
}

// Middleware rejects unauthenticated requests and places the resolved
// principal in the request context.
func Middleware(sessions SessionRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := ResolvePrincipal(r, sessions)
			if err != nil {
				config.Error(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), *principal)))
		})
	}
}

// RequireSuperuser guards reference-data and user administration. It must run
// after Middleware.
func RequireSuperuser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := FromContext(r.Context())
		if err != nil {
			config.Error(w, apperror.Unauthenticated("authentication required"))
			return
		}
		if !CanManageReferenceData(principal.Role) {
			config.Error(w, apperror.Forbidden("superuser access required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
