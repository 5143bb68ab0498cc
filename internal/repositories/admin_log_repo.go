package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"samurai-nutrition/internal/models"
	"samurai-nutrition/pkg/pagination"
)

// AdminLogFilter narrows admin-log listings.
type AdminLogFilter struct {
	Action  string
	AdminID string
}

// AdminLogRepository defines the interface for the admin audit trail.
type AdminLogRepository interface {
	Create(entry *models.AdminLog) error
	List(p pagination.Params, filter AdminLogFilter) ([]models.AdminLog, int64, error)
}

// GORMAdminLogRepository is a GORM implementation of AdminLogRepository.
type GORMAdminLogRepository struct {
	db *gorm.DB
}

// NewGORMAdminLogRepository creates a new instance of GORMAdminLogRepository.
func NewGORMAdminLogRepository(db *gorm.DB) *GORMAdminLogRepository {
	return &GORMAdminLogRepository{db: db}
}

// Create appends an audit entry.
func (r *GORMAdminLogRepository) Create(entry *models.AdminLog) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create admin log: %w", err)
	}
	return nil
}

// List returns a page of audit entries, newest first.
func (r *GORMAdminLogRepository) List(p pagination.Params, filter AdminLogFilter) ([]models.AdminLog, int64, error) {
	query := r.db.Model(&models.AdminLog{})
	if filter.Action != "" {
		query = query.Where("action LIKE ?", "%"+filter.Action+"%")
	}
	if filter.AdminID != "" {
		query = query.Where("admin_id = ?", filter.AdminID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count admin logs: %w", err)
	}

	var logs []models.AdminLog
	err := query.Order("created_at DESC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&logs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list admin logs: %w", err)
	}
	return logs, total, nil
}
