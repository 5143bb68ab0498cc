package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"samurai-nutrition/internal/models"
	"samurai-nutrition/pkg/pagination"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// When wired to a MockProductRepository it mimics the transactional
// stock reservation of the GORM implementation, releasing already
// reserved lines when a later line fails.
type MockOrderRepository struct {
	orders   map[string]models.Order
	products *MockProductRepository
	mu       sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
// products may be nil, in which case no stock is reserved.
func NewMockOrderRepository(products *MockProductRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders:   make(map[string]models.Order),
		products: products,
	}
}

// CreateWithReservation adds a new order, reserving stock for every line.
func (r *MockOrderRepository) CreateWithReservation(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.products != nil {
		r.products.mu.Lock()
		var reserved []models.OrderItem
		for _, item := range order.Items {
			if err := r.products.reserveLocked(item.ProductID, item.Quantity); err != nil {
				for _, done := range reserved {
					r.products.releaseLocked(done.ProductID, done.Quantity)
				}
				r.products.mu.Unlock()
				return err
			}
			reserved = append(reserved, item)
		}
		r.products.mu.Unlock()
	}

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	for i := range order.StatusHistory {
		if order.StatusHistory[i].ID == "" {
			order.StatusHistory[i].ID = uuid.New().String()
		}
		order.StatusHistory[i].OrderID = order.ID
		order.StatusHistory[i].CreatedAt = now
	}
	r.orders[order.ID] = *order
	return nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s: %w", id, models.ErrNotFound)
	}
	return &order, nil
}

// List returns a filtered page of orders, newest first.
func (r *MockOrderRepository) List(p pagination.Params, filter OrderFilter) ([]models.Order, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Order
	for _, order := range r.orders {
		if filter.UserID != "" && order.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		matched = append(matched, order)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := p.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + p.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// UpdateStatus transitions an order and appends the history row.
func (r *MockOrderRepository) UpdateStatus(id string, status models.OrderStatus, comment string, actorID *string) (*models.Order, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, false, fmt.Errorf("order with ID %s: %w", id, models.ErrNotFound)
	}
	if order.Status == status {
		return &order, false, nil
	}

	order.Status = status
	order.UpdatedAt = time.Now()
	order.StatusHistory = append(order.StatusHistory, models.OrderStatusHistory{
		ID:        uuid.New().String(),
		OrderID:   order.ID,
		Status:    status,
		Comment:   comment,
		CreatedBy: actorID,
		CreatedAt: time.Now(),
	})
	r.orders[id] = order
	return &order, true, nil
}
