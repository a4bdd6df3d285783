package auth

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scope is the set of question records an actor may operate on: everything
// for a superuser, otherwise only rows they created. It is ANDed with any
// user-supplied filter, never skipped.
type Scope struct {
	All     bool
	OwnerID uuid.UUID
}

func ScopeFor(role string, userID uuid.UUID) Scope {
	if role == RoleSuperuser {
		return Scope{All: true}
	}
	return Scope{OwnerID: userID}
}

// Apply narrows a question query to the scope.
func (s Scope) Apply(tx *gorm.DB) *gorm.DB {
	if s.All {
		return tx
	}
	return tx.Where("created_by = ?", s.OwnerID)
}

// Contains reports whether a record owned by ownerID falls inside the scope.
func (s Scope) Contains(ownerID uuid.UUID) bool {
	return s.All || s.OwnerID == ownerID
}

func CanManageReferenceData(role string) bool {
	return role == RoleSuperuser
}
