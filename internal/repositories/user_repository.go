package repositories

import (
	"samurai-nutrition/internal/models"
	"samurai-nutrition/pkg/pagination"
)

// UserFilter narrows admin user listings.
type UserFilter struct {
	Search string
	Role   models.Role
}

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	List(p pagination.Params, filter UserFilter) ([]models.User, int64, error)
}
