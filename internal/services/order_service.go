package services

import (
	"fmt"

	"go.uber.org/zap"

	"samurai-nutrition/internal/models"
	"samurai-nutrition/internal/repositories"
	"samurai-nutrition/pkg/log"
	"samurai-nutrition/pkg/ordernum"
	"samurai-nutrition/pkg/pagination"
	"samurai-nutrition/pkg/rabbitmq"
)

// OrderService handles order placement, reads, and the status lifecycle.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	statsRepo   repositories.StatsRepository
	adminLogs   repositories.AdminLogRepository
	mqClient    *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil, in
// which case no events are published.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	statsRepo repositories.StatsRepository,
	adminLogs repositories.AdminLogRepository,
	mqClient *rabbitmq.Client,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		statsRepo:   statsRepo,
		adminLogs:   adminLogs,
		mqClient:    mqClient,
	}
}

// OrderLineInput is one requested line of a new order.
type OrderLineInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderInput carries everything needed to place an order.
type CreateOrderInput struct {
	Items           []OrderLineInput `json:"items" validate:"required,min=1,dive"`
	ShippingAddress string           `json:"shipping_address" validate:"required"`
	BillingAddress  string           `json:"billing_address" validate:"required"`
	PaymentMethod   string           `json:"payment_method" validate:"required"`
	ShippingMethod  string           `json:"shipping_method"`
	ShippingCost    float64          `json:"shipping_cost" validate:"gte=0"`
	TaxAmount       float64          `json:"tax_amount" validate:"gte=0"`
	DiscountAmount  float64          `json:"discount_amount" validate:"gte=0"`
	Notes           string           `json:"notes"`
}

// CreateOrder places a new order for the user. Every line snapshots the
// product's name, SKU, and price at order time; the stock decrement,
// order row, item rows, and initial pending history row all commit in
// one transaction inside the repository.
func (s *OrderService) CreateOrder(userID string, in CreateOrderInput) (*models.Order, error) {
	var items []models.OrderItem
	var itemsTotal float64

	for _, line := range in.Items {
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.InStock(line.Quantity) {
			return nil, fmt.Errorf("product %s (requested %d, available %d): %w",
				product.Name, line.Quantity, product.StockQuantity, models.ErrInsufficientStock)
		}
		lineTotal := product.Price * float64(line.Quantity)
		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			ProductSKU:  product.SKU,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
			TotalPrice:  lineTotal,
		})
		itemsTotal += lineTotal
	}

	order := &models.Order{
		UserID:          userID,
		OrderNumber:     ordernum.Generate(),
		TotalAmount:     itemsTotal + in.ShippingCost + in.TaxAmount - in.DiscountAmount,
		Status:          models.StatusPending,
		ShippingAddress: in.ShippingAddress,
		BillingAddress:  in.BillingAddress,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   "pending",
		ShippingMethod:  in.ShippingMethod,
		ShippingCost:    in.ShippingCost,
		TaxAmount:       in.TaxAmount,
		DiscountAmount:  in.DiscountAmount,
		Notes:           in.Notes,
		Items:           items,
		// Birth record: CreatedBy nil marks it system-generated.
		StatusHistory: []models.OrderStatusHistory{{Status: models.StatusPending}},
	}

	if err := s.orderRepo.CreateWithReservation(order); err != nil {
		return nil, err
	}

	s.publish("order.created", map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"user_id":      order.UserID,
		"status":       order.Status,
		"total":        order.TotalAmount,
	})
	return order, nil
}

// ListUserOrders returns a page of the user's own orders.
func (s *OrderService) ListUserOrders(userID string, p pagination.Params, status models.OrderStatus) ([]models.Order, pagination.Meta, error) {
	if status != "" && !status.Valid() {
		return nil, pagination.Meta{}, fmt.Errorf("status %q: %w", status, models.ErrInvalidStatus)
	}
	orders, total, err := s.orderRepo.List(p, repositories.OrderFilter{UserID: userID, Status: status})
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return orders, pagination.NewMeta(p, total), nil
}

// ListAllOrders returns a page over every order (admin view).
func (s *OrderService) ListAllOrders(p pagination.Params, status models.OrderStatus) ([]models.Order, pagination.Meta, error) {
	if status != "" && !status.Valid() {
		return nil, pagination.Meta{}, fmt.Errorf("status %q: %w", status, models.ErrInvalidStatus)
	}
	orders, total, err := s.orderRepo.List(p, repositories.OrderFilter{Status: status})
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return orders, pagination.NewMeta(p, total), nil
}

// GetOrderFor returns an order with full detail if the requester owns it
// or holds the view-all-orders capability; otherwise models.ErrForbidden.
func (s *OrderService) GetOrderFor(requester *models.User, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if !requester.CanViewOrder(order) {
		return nil, fmt.Errorf("order %s: %w", orderID, models.ErrForbidden)
	}
	return order, nil
}

// UpdateStatus transitions an order on behalf of an admin. An unknown
// target status is rejected without touching the order; a target equal
// to the current status is a no-op with no history row. On a real
// transition the status update and history row commit atomically, then
// the audit entry and status event follow.
func (s *OrderService) UpdateStatus(actor *models.User, orderID string, status models.OrderStatus, comment, ip string) (*models.Order, bool, error) {
	if !status.Valid() {
		return nil, false, fmt.Errorf("status %q: %w", status, models.ErrInvalidStatus)
	}

	order, changed, err := s.orderRepo.UpdateStatus(orderID, status, comment, &actor.ID)
	if err != nil {
		return nil, false, err
	}
	if !changed {
		return order, false, nil
	}

	if s.adminLogs != nil {
		entry := &models.AdminLog{
			AdminID:   actor.ID,
			Action:    "update_order_status",
			Details:   fmt.Sprintf("order %s -> %s", order.OrderNumber, status),
			IPAddress: ip,
		}
		if err := s.adminLogs.Create(entry); err != nil {
			log.L.Warn("failed to write admin log", zap.String("order_id", orderID), zap.Error(err))
		}
	}

	s.publish("order.status_updated", map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"user_id":      order.UserID,
		"status":       status,
		"comment":      comment,
	})
	return order, true, nil
}

// UserStats summarizes the requesting user's order history.
func (s *OrderService) UserStats(userID string) (*repositories.UserOrderStats, error) {
	return s.statsRepo.UserOrderStats(userID)
}

// publish sends an order lifecycle event; delivery is fire-and-forget.
func (s *OrderService) publish(event string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishEvent(event, payload); err != nil {
		log.L.Warn("failed to publish order event", zap.String("event", event), zap.Error(err))
	}
}
