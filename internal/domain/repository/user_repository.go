package repository

import "github.com/jawharapos/pos-api/internal/domain/entity"

// UserRepository is the persistence port for operator accounts.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
