package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"samurai-nutrition/internal/models"
	"samurai-nutrition/pkg/pagination"
)

// UserHistoryFilter narrows activity listings.
type UserHistoryFilter struct {
	ActionType string
}

// ActionCount is one row of the per-action-type activity breakdown.
type ActionCount struct {
	ActionType string `json:"action_type"`
	Count      int64  `json:"count"`
}

// UserHistoryStats summarizes a user's activity trail.
type UserHistoryStats struct {
	ActionStats   []ActionCount `json:"action_stats"`
	RecentActions int64         `json:"recent_actions"`
	TotalActions  int64         `json:"total_actions"`
}

// UserHistoryRepository defines the interface for the per-user activity
// trail.
type UserHistoryRepository interface {
	Create(entry *models.UserHistory) error
	List(userID string, p pagination.Params, filter UserHistoryFilter) ([]models.UserHistory, int64, error)
	Stats(userID string, recentSince time.Time) (*UserHistoryStats, error)
	Clear(userID string) error
}

// GORMUserHistoryRepository is a GORM implementation of UserHistoryRepository.
type GORMUserHistoryRepository struct {
	db *gorm.DB
}

// NewGORMUserHistoryRepository creates a new instance of GORMUserHistoryRepository.
func NewGORMUserHistoryRepository(db *gorm.DB) *GORMUserHistoryRepository {
	return &GORMUserHistoryRepository{db: db}
}

// Create appends an activity entry.
func (r *GORMUserHistoryRepository) Create(entry *models.UserHistory) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create user history entry: %w", err)
	}
	return nil
}

// List returns a page of the user's activity, newest first.
func (r *GORMUserHistoryRepository) List(userID string, p pagination.Params, filter UserHistoryFilter) ([]models.UserHistory, int64, error) {
	query := r.db.Model(&models.UserHistory{}).Where("user_id = ?", userID)
	if filter.ActionType != "" {
		query = query.Where("action_type = ?", filter.ActionType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count user history: %w", err)
	}

	var entries []models.UserHistory
	err := query.Order("created_at DESC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list user history: %w", err)
	}
	return entries, total, nil
}

// Stats aggregates the user's activity: per-action counts, the total,
// and how much happened since recentSince.
func (r *GORMUserHistoryRepository) Stats(userID string, recentSince time.Time) (*UserHistoryStats, error) {
	stats := &UserHistoryStats{ActionStats: []ActionCount{}}

	err := r.db.Model(&models.UserHistory{}).
		Select("action_type, COUNT(id) AS count").
		Where("user_id = ?", userID).
		Group("action_type").
		Scan(&stats.ActionStats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count user history by action: %w", err)
	}

	err = r.db.Model(&models.UserHistory{}).
		Where("user_id = ? AND created_at >= ?", userID, recentSince).
		Count(&stats.RecentActions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count recent user history: %w", err)
	}

	err = r.db.Model(&models.UserHistory{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalActions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count user history: %w", err)
	}
	return stats, nil
}

// Clear deletes the user's whole activity trail.
func (r *GORMUserHistoryRepository) Clear(userID string) error {
	if err := r.db.Delete(&models.UserHistory{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to clear user history: %w", err)
	}
	return nil
}
