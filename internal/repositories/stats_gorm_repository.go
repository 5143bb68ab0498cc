package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"samurai-nutrition/internal/models"
)

// revenueStatuses are the order statuses that count toward revenue.
var revenueStatuses = []models.OrderStatus{
	models.StatusDelivered,
	models.StatusShipped,
	models.StatusProcessing,
}

// GORMStatsRepository is a GORM implementation of StatsRepository.
type GORMStatsRepository struct {
	db *gorm.DB
}

// NewGORMStatsRepository creates a new instance of GORMStatsRepository.
func NewGORMStatsRepository(db *gorm.DB) *GORMStatsRepository {
	return &GORMStatsRepository{db: db}
}

// Dashboard aggregates storefront totals over the window starting at since.
func (r *GORMStatsRepository) Dashboard(since time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := r.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := r.db.Model(&models.Product{}).Where("is_active = ?", true).Count(&stats.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if err := r.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	if err := r.db.Model(&models.User{}).Where("created_at >= ?", since).Count(&stats.NewUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count new users: %w", err)
	}
	if err := r.db.Model(&models.Order{}).Where("created_at >= ?", since).Count(&stats.RecentOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count recent orders: %w", err)
	}

	var revenue *float64
	err := r.db.Model(&models.Order{}).
		Where("created_at >= ? AND status IN ?", since, revenueStatuses).
		Select("SUM(total_amount)").
		Scan(&revenue).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	if revenue != nil {
		stats.TotalRevenue = *revenue
	}

	err = r.db.Model(&models.Order{}).
		Select("status, COUNT(id) AS count").
		Group("status").
		Scan(&stats.StatusStats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}
	return stats, nil
}

// RecentOrders returns the latest orders joined with their owner's summary.
func (r *GORMStatsRepository) RecentOrders(limit int) ([]RecentOrder, error) {
	var rows []RecentOrder
	err := r.db.Table("orders").
		Select("orders.id, orders.order_number, orders.user_id, orders.status, orders.total_amount, orders.created_at, users.email, users.first_name, users.last_name").
		Joins("LEFT JOIN users ON users.id = orders.user_id").
		Order("orders.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent orders: %w", err)
	}
	return rows, nil
}

// DailySales groups revenue and order counts by day, excluding cancelled
// orders.
func (r *GORMStatsRepository) DailySales(since time.Time) ([]DailySales, error) {
	var rows []DailySales
	err := r.db.Model(&models.Order{}).
		Select("DATE(created_at) AS date, SUM(total_amount) AS revenue, COUNT(id) AS orders").
		Where("created_at >= ? AND status <> ?", since, models.StatusCancelled).
		Group("DATE(created_at)").
		Order("DATE(created_at)").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily sales: %w", err)
	}
	return rows, nil
}

// TopProducts ranks products by units sold since the given time. The
// order-item snapshot name is used so removed products still rank.
func (r *GORMStatsRepository) TopProducts(since time.Time, limit int) ([]TopProduct, error) {
	var rows []TopProduct
	err := r.db.Table("order_items").
		Select("order_items.product_name AS name, SUM(order_items.quantity) AS total_sold").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ?", since).
		Group("order_items.product_name").
		Order("total_sold DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank top products: %w", err)
	}
	return rows, nil
}

// UserOrderStats summarizes one user's order history.
func (r *GORMStatsRepository) UserOrderStats(userID string) (*UserOrderStats, error) {
	stats := &UserOrderStats{StatusCounts: make(map[models.OrderStatus]int64)}

	if err := r.db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count user orders: %w", err)
	}

	var spent *float64
	err := r.db.Model(&models.Order{}).
		Where("user_id = ?", userID).
		Select("SUM(total_amount)").
		Scan(&spent).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum user spending: %w", err)
	}
	if spent != nil {
		stats.TotalSpent = *spent
	}

	var counts []StatusCount
	err = r.db.Model(&models.Order{}).
		Select("status, COUNT(id) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count user orders by status: %w", err)
	}
	for _, c := range counts {
		stats.StatusCounts[c.Status] = c.Count
	}

	var latest models.Order
	err = r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&latest).Error
	if err == nil {
		t := latest.CreatedAt
		stats.RecentOrderDate = &t
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get latest user order: %w", err)
	}
	return stats, nil
}
