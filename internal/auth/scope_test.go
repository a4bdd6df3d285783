package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/mcqbank/backend/internal/auth"
)

func TestScopeFor(t *testing.T) {
	userID := uuid.New()

	t.Run("RegularUser", func(t *testing.T) {
		scope := auth.ScopeFor(auth.RoleUser, userID)
		if scope.All {
			t.Error("regular user scope must not cover all records")
		}
		if scope.OwnerID != userID {
			t.Errorf("scope owner. want %s, got %s", userID, scope.OwnerID)
		}
		if !scope.Contains(userID) {
			t.Error("scope should contain the actor's own records")
		}
		if scope.Contains(uuid.New()) {
			t.Error("scope should not contain another user's records")
		}
	})

	t.Run("Superuser", func(t *testing.T) {
		scope := auth.ScopeFor(auth.RoleSuperuser, userID)
		if !scope.All {
			t.Error("superuser scope must cover all records")
		}
		if !scope.Contains(uuid.New()) {
			t.Error("superuser scope should contain any record")
		}
	})
}

func TestCanManageReferenceData(t *testing.T) {
	if auth.CanManageReferenceData(auth.RoleUser) {
		t.Error("regular users must not manage reference data")
	}
	if !auth.CanManageReferenceData(auth.RoleSuperuser) {
		t.Error("superusers must manage reference data")
	}
}

func TestRequireSuperuser(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := auth.RequireSuperuser(next)

	t.Run("NoPrincipal", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status. want %d, got %d", http.StatusUnauthorized, rec.Code)
		}
	})

	t.Run("RegularUser", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		ctx := auth.WithPrincipal(req.Context(), auth.Principal{
			UserID: uuid.New(), Username: "editor", Role: auth.RoleUser,
		})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))
		if rec.Code != http.StatusForbidden {
			t.Errorf("status. want %d, got %d", http.StatusForbidden, rec.Code)
		}
	})

	t.Run("Superuser", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		ctx := auth.WithPrincipal(req.Context(), auth.Principal{
			UserID: uuid.New(), Username: "admin", Role: auth.RoleSuperuser,
		})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))
		if rec.Code != http.StatusOK {
			t.Errorf("status. want %d, got %d", http.StatusOK, rec.Code)
		}
	})
}
