package services

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"samurai-nutrition/internal/models"
	"samurai-nutrition/internal/repositories"
	"samurai-nutrition/pkg/log"
	"samurai-nutrition/pkg/pagination"
)

// AdminService backs the admin dashboard and user management. Aggregate
// reads degrade to zero/empty values on failure so the dashboard always
// renders; mutations never degrade.
type AdminService struct {
	userRepo  repositories.UserRepository
	statsRepo repositories.StatsRepository
	adminLogs repositories.AdminLogRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	userRepo repositories.UserRepository,
	statsRepo repositories.StatsRepository,
	adminLogs repositories.AdminLogRepository,
) *AdminService {
	return &AdminService{userRepo: userRepo, statsRepo: statsRepo, adminLogs: adminLogs}
}

// DashboardStats aggregates storefront totals over the last days days.
func (s *AdminService) DashboardStats(days int) *repositories.DashboardStats {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	stats, err := s.statsRepo.Dashboard(since)
	if err != nil {
		log.L.Warn("dashboard stats query failed", zap.Error(err))
		return &repositories.DashboardStats{StatusStats: []repositories.StatusCount{}}
	}
	if stats.StatusStats == nil {
		stats.StatusStats = []repositories.StatusCount{}
	}
	return stats
}

// RecentOrders returns the latest orders for the dashboard.
func (s *AdminService) RecentOrders(limit int) []repositories.RecentOrder {
	if limit <= 0 {
		limit = 5
	}
	rows, err := s.statsRepo.RecentOrders(limit)
	if err != nil {
		log.L.Warn("recent orders query failed", zap.Error(err))
		return []repositories.RecentOrder{}
	}
	if rows == nil {
		rows = []repositories.RecentOrder{}
	}
	return rows
}

// SalesChart returns per-day sales and the top products over the window.
func (s *AdminService) SalesChart(days int) ([]repositories.DailySales, []repositories.TopProduct) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	daily, err := s.statsRepo.DailySales(since)
	if err != nil {
		log.L.Warn("daily sales query failed", zap.Error(err))
		daily = nil
	}
	top, err := s.statsRepo.TopProducts(since, 5)
	if err != nil {
		log.L.Warn("top products query failed", zap.Error(err))
		top = nil
	}
	if daily == nil {
		daily = []repositories.DailySales{}
	}
	if top == nil {
		top = []repositories.TopProduct{}
	}
	return daily, top
}

// ListUsers returns a filtered page of users.
func (s *AdminService) ListUsers(p pagination.Params, filter repositories.UserFilter) ([]models.User, pagination.Meta, error) {
	users, total, err := s.userRepo.List(p, filter)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return users, pagination.NewMeta(p, total), nil
}

// GetUser returns one user with their order statistics. The statistics
// degrade to zeroes if the aggregate query fails.
func (s *AdminService) GetUser(id string) (*models.User, *repositories.UserOrderStats, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	stats, err := s.statsRepo.UserOrderStats(id)
	if err != nil {
		log.L.Warn("user order stats query failed", zap.String("user_id", id), zap.Error(err))
		stats = &repositories.UserOrderStats{StatusCounts: map[models.OrderStatus]int64{}}
	}
	return user, stats, nil
}

// UserUpdate carries the fields an admin may change on a user.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Role      *models.Role
}

// UpdateUser applies a partial user update and records it in the audit
// trail. Unknown roles are rejected.
func (s *AdminService) UpdateUser(actor *models.User, ip, id string, update UserUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Role != nil {
		if !update.Role.Valid() {
			return nil, fmt.Errorf("unknown role %q", *update.Role)
		}
		user.Role = *update.Role
	}
	if update.Email != nil && *update.Email != user.Email {
		existing, err := s.userRepo.GetByEmail(*update.Email)
		if err == nil && existing != nil && existing.ID != user.ID {
			return nil, fmt.Errorf("email '%s' already registered: %w", *update.Email, models.ErrDuplicate)
		}
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		user.Email = *update.Email
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	entry := &models.AdminLog{
		AdminID:   actor.ID,
		Action:    "update_user",
		Details:   fmt.Sprintf("user updated: %s", user.Email),
		IPAddress: ip,
	}
	if err := s.adminLogs.Create(entry); err != nil {
		log.L.Warn("failed to write admin log", zap.String("user_id", id), zap.Error(err))
	}
	return user, nil
}

// ListLogs returns a page of the admin audit trail.
func (s *AdminService) ListLogs(p pagination.Params, filter repositories.AdminLogFilter) ([]models.AdminLog, pagination.Meta, error) {
	logs, total, err := s.adminLogs.List(p, filter)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return logs, pagination.NewMeta(p, total), nil
}
