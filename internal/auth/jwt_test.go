package auth_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mcqbank/backend/internal/auth"
)

const testSecret = "a-long-and-secure-secret-key-for-tests"

func testPrincipal() auth.Principal {
	return auth.Principal{
		UserID:   uuid.New(),
		Username: "editor",
		Role:     auth.RoleUser,
	}
}

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() should panic when JWT_SECRET is empty, but did not.")
			}
		}()

		auth.Init()
	})

	t.Run("ValidSecret", func(t *testing.T) {
		os.Setenv("JWT_SECRET", testSecret)
		auth.Init()
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		principal := testPrincipal()
		sessionID := uuid.New()

		tokenStr, err := auth.GenerateJWT(principal, sessionID, time.Minute*5)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed unexpectedly: %v", err)
		}

		if claims.UserID != principal.UserID.String() {
			t.Errorf("wrong UserID. want %s, got %s", principal.UserID, claims.UserID)
		}
		if claims.Username != principal.Username {
			t.Errorf("wrong Username. want %s, got %s", principal.Username, claims.Username)
		}
		if claims.Role != principal.Role {
			t.Errorf("wrong Role. want %s, got %s", principal.Role, claims.Role)
		}
		if claims.ID != sessionID.String() {
			t.Errorf("wrong session ID (jti). want %s, got %s", sessionID, claims.ID)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testPrincipal(), uuid.New(), -time.Second)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if err == nil {
			t.Fatal("ValidateJWT should have failed for an expired token, but passed.")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("wrong error for expired token. want %v, got %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("TamperedToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testPrincipal(), uuid.New(), time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		if _, err := auth.ValidateJWT(tokenStr + "x"); err == nil {
			t.Fatal("ValidateJWT should have failed for a tampered token, but passed.")
		}
	})
}
