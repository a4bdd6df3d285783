package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is the server-side record behind a login cookie. The cookie JWT's
// jti points at this row; deleting the row logs the user out everywhere.
type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Username  string    `gorm:"not null" json:"username"`
	Role      string    `gorm:"not null" json:"role"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// NewSession builds a fresh session row for a principal with the standard
// TTL applied.
func NewSession(p Principal) *Session {
	return &Session{
		ID:        uuid.New(),
		UserID:    p.UserID,
		Username:  p.Username,
		Role:      p.Role,
		ExpiresAt: time.Now().Add(SessionTTL),
	}
}

type SessionRepository interface {
	Create(s *Session) error
	FindByID(id uuid.UUID) (*Session, error)
	Delete(id uuid.UUID) error
	DeleteExpired() error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(s *Session) error {
	return r.db.Create(s).Error
}

func (r *sessionRepository) FindByID(id uuid.UUID) (*Session, error) {
	var session Session
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Session{}, "id = ?", id).Error
}

func (r *sessionRepository) DeleteExpired() error {
	return r.db.Delete(&Session{}, "expires_at < ?", time.Now()).Error
}
