package repository

import "github.com/tml-logistik/invoice-api/internal/domain/entity"

// UserRepository persists staff accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
