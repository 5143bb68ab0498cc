package models

import "time"

// OrderStatus is the closed set of order lifecycle states.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
	StatusRefunded   OrderStatus = "refunded"
)

// OrderStatuses lists every valid status in lifecycle order.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
	StatusRefunded,
}

// Valid reports whether s is one of the six known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped,
		StatusDelivered, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// Terminal reports whether no further transition leaves s.
func (s OrderStatus) Terminal() bool {
	switch s {
	case StatusDelivered, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// Order represents a placed customer order. It owns its items and status
// history; both are removed with the order (cascade).
type Order struct {
	ID              string               `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string               `json:"user_id" gorm:"index;type:varchar(36)"`
	OrderNumber     string               `json:"order_number" gorm:"uniqueIndex;type:varchar(50)"`
	TotalAmount     float64              `json:"total_amount"`
	Status          OrderStatus          `json:"status" gorm:"type:varchar(50);default:pending"`
	ShippingAddress string               `json:"shipping_address" validate:"required"`
	BillingAddress  string               `json:"billing_address" validate:"required"`
	PaymentMethod   string               `json:"payment_method" gorm:"type:varchar(50)" validate:"required"`
	PaymentStatus   string               `json:"payment_status" gorm:"type:varchar(50);default:pending"`
	ShippingMethod  string               `json:"shipping_method" gorm:"type:varchar(50)"`
	ShippingCost    float64              `json:"shipping_cost"`
	TaxAmount       float64              `json:"tax_amount"`
	DiscountAmount  float64              `json:"discount_amount"`
	Notes           string               `json:"notes"`
	Items           []OrderItem          `json:"items" gorm:"constraint:OnDelete:CASCADE"`
	StatusHistory   []OrderStatusHistory `json:"status_history" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// OrderItem is one line of an order. Product name and SKU are snapshots
// taken at order time so historical orders stay accurate if the product
// is later renamed or removed.
type OrderItem struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID     string  `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID   string  `json:"product_id" gorm:"type:varchar(36)"`
	ProductName string  `json:"product_name" gorm:"type:varchar(255)"`
	ProductSKU  string  `json:"product_sku" gorm:"type:varchar(100)"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// OrderStatusHistory is an append-only audit record of every status an
// order has held, including its initial one. CreatedBy is nil for
// system-generated entries.
type OrderStatusHistory struct {
	ID        string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string      `json:"order_id" gorm:"index;type:varchar(36)"`
	Status    OrderStatus `json:"status" gorm:"type:varchar(50)"`
	Comment   string      `json:"comment"`
	CreatedBy *string     `json:"created_by" gorm:"type:varchar(36)"`
	CreatedAt time.Time   `json:"created_at"`
}
