package user

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mcqbank/backend/internal/apperror"
	"github.com/mcqbank/backend/internal/auth"
	"github.com/mcqbank/backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

type Service interface {
	Register(ctx context.Context, dto RegisterRequest) (*UserResponse, error)
	Authenticate(ctx context.Context, dto LoginRequest) (*User, error)
	List(ctx context.Context) ([]UserResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, dto RegisterRequest) (*UserResponse, error) {
	log := config.WithContext(ctx)

	if err := validate.Struct(dto); err != nil {
		return nil, apperror.Validation("invalid registration payload: " + err.Error())
	}

	existing, err := s.repo.FindByUsername(dto.Username)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("username already exists")
	}

	existing, err = s.repo.FindByEmail(dto.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	role := dto.Role
	if role == "" {
		role = auth.RoleUser
	}

	u := User{
		ID:           uuid.New(),
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.repo.Create(&u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, apperror.Internal(err)
	}

	log.WithField("user_id", u.ID.String()).Info("User registered")
	resp := toResponse(&u)
	return &resp, nil
}

// Authenticate returns the same generic error for an unknown identifier and
// a wrong password, so callers cannot probe which accounts exist.
func (s *service) Authenticate(ctx context.Context, dto LoginRequest) (*User, error) {
	invalid := apperror.Validation("invalid credentials")

	if dto.Identifier() == "" || dto.Password == "" {
		return nil, invalid
	}

	u, err := s.repo.FindByUsernameOrEmail(dto.Identifier())
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if u == nil {
		return nil, invalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, invalid
	}

	return u, nil
}

func (s *service) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.List()
	if err != nil {
		return nil, apperror.Internal(err)
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toResponse(&users[i]))
	}
	return responses, nil
}
