package store

import (
	"errors"

	"github.com/fjod/go_shop/internal/user/domain"
)

var ErrUserNotFound = errors.New("user not found")

// UserStore is the in-memory user registry.
type UserStore interface {
	Append(user *domain.User)
	GetByID(id string) (*domain.User, error)
	List() []*domain.User
	Update(id string, mutate func(*domain.User)) (*domain.User, error)
	Delete(id string) error
}
