package repo

import (
	"errors"

	"github.com/lucas-barreto/foodcheck/internal/models"
)

type UserRepository interface {
	CreateUser(u models.User) (models.User, error)
	GetByEmail(email string) (models.User, error)
	GetByID(id int) (models.User, error)
}

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)
