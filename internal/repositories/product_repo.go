package repositories

import (
	"samurai-nutrition/internal/models"
	"samurai-nutrition/pkg/pagination"
)

// ProductFilter narrows admin product listings.
type ProductFilter struct {
	Search   string
	Category string
	IsActive *bool
	LowStock bool
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	ListActive() ([]models.Product, error)
	ListActiveByCategory(category string) ([]models.Product, error)
	Categories() ([]string, error)
	GetByID(id string) (*models.Product, error)
	List(p pagination.Params, filter ProductFilter) ([]models.Product, int64, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// Reserve atomically decrements stock, succeeding only when the
	// product is active and holds at least quantity units. On failure the
	// stock is left untouched and models.ErrInsufficientStock is returned.
	Reserve(id string, quantity int) error
	// AdjustStock applies a relative stock change and returns the
	// updated product.
	AdjustStock(id string, delta int) (*models.Product, error)
}
