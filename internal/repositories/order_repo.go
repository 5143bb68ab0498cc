package repositories

import (
	"samurai-nutrition/internal/models"
	"samurai-nutrition/pkg/pagination"
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	UserID string
	Status models.OrderStatus
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// CreateWithReservation persists the order, its item snapshots, the
	// initial status-history row, and the stock decrements for every
	// line in a single transaction. Any line with insufficient stock
	// rolls back the whole order with models.ErrInsufficientStock.
	CreateWithReservation(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	List(p pagination.Params, filter OrderFilter) ([]models.Order, int64, error)
	// UpdateStatus transitions the order and appends the matching
	// history row atomically. It reports changed=false when the target
	// equals the current status, in which case nothing is written.
	UpdateStatus(id string, status models.OrderStatus, comment string, actorID *string) (order *models.Order, changed bool, err error)
}
