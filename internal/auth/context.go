package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleSuperuser = "superuser"
)

// Principal is the acting identity resolved from a session.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     string
}

type contextKey struct{}

var principalKey = contextKey{}

var ErrNoPrincipal = errors.New("no authenticated principal in context")

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func FromContext(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey).(Principal)
	if !ok {
		return Principal{}, ErrNoPrincipal
	}
	return p, nil
}
