package repositories

import (
	"time"

	"samurai-nutrition/internal/models"
)

// StatusCount is one row of a group-by-status aggregate.
type StatusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

// DashboardStats aggregates storefront totals for the admin dashboard.
type DashboardStats struct {
	TotalUsers    int64         `json:"total_users"`
	TotalProducts int64         `json:"total_products"`
	TotalOrders   int64         `json:"total_orders"`
	NewUsers      int64         `json:"new_users"`
	RecentOrders  int64         `json:"recent_orders"`
	TotalRevenue  float64       `json:"total_revenue"`
	StatusStats   []StatusCount `json:"status_stats"`
}

// DailySales is one day of the sales chart.
type DailySales struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

// TopProduct ranks products by units sold over a window.
type TopProduct struct {
	Name      string `json:"name"`
	TotalSold int64  `json:"total_sold"`
}

// RecentOrder is a dashboard order row joined with its owner's summary.
type RecentOrder struct {
	ID          string             `json:"id"`
	OrderNumber string             `json:"order_number"`
	UserID      string             `json:"user_id"`
	Status      models.OrderStatus `json:"status"`
	TotalAmount float64            `json:"total_amount"`
	CreatedAt   time.Time          `json:"created_at"`
	Email       string             `json:"email"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
}

// UserOrderStats summarizes one user's order history.
type UserOrderStats struct {
	TotalOrders     int64                        `json:"total_orders"`
	TotalSpent      float64                      `json:"total_spent"`
	StatusCounts    map[models.OrderStatus]int64 `json:"status_counts"`
	RecentOrderDate *time.Time                   `json:"recent_order_date"`
}

// StatsRepository runs the read-only aggregate queries behind the admin
// dashboard and the per-user order statistics. No method has write side
// effects.
type StatsRepository interface {
	Dashboard(since time.Time) (*DashboardStats, error)
	RecentOrders(limit int) ([]RecentOrder, error)
	DailySales(since time.Time) ([]DailySales, error)
	TopProducts(since time.Time, limit int) ([]TopProduct, error)
	UserOrderStats(userID string) (*UserOrderStats, error)
}
