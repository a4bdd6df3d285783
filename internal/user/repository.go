package user

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(u *User) error
	FindByUsername(username string) (*User, error)
	FindByEmail(email string) (*User, error)
	FindByUsernameOrEmail(identifier string) (*User, error)
	List() ([]User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(u *User) error {
	return r.db.Create(u).Error
}

func (r *repository) findOne(query string, args ...interface{}) (*User, error) {
	var u User
	if err := r.db.First(&u, append([]interface{}{query}, args...)...).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByUsername(username string) (*User, error) {
	return r.findOne("username = ?", username)
}

func (r *repository) FindByEmail(email string) (*User, error) {
	return r.findOne("email = ?", email)
}

func (r *repository) FindByUsernameOrEmail(identifier string) (*User, error) {
	return r.findOne("username = ? OR email = ?", identifier, identifier)
}

func (r *repository) List() ([]User, error) {
	var users []User
	if err := r.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
