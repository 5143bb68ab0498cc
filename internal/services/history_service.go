package services

import (
	"time"

	"go.uber.org/zap"

	"samurai-nutrition/internal/models"
	"samurai-nutrition/internal/repositories"
	"samurai-nutrition/pkg/log"
	"samurai-nutrition/pkg/pagination"
)

// HistoryService records and serves the per-user activity trail (logins,
// purchases). Recording is best effort: a failed write never fails the
// action it describes.
type HistoryService struct {
	repo repositories.UserHistoryRepository
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(repo repositories.UserHistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// Record appends an activity entry. productID and orderID may be nil.
func (s *HistoryService) Record(userID, actionType, description string, productID, orderID *string, ip, userAgent string) {
	entry := &models.UserHistory{
		UserID:      userID,
		ActionType:  actionType,
		Description: description,
		ProductID:   productID,
		OrderID:     orderID,
		IPAddress:   ip,
		UserAgent:   userAgent,
	}
	if err := s.repo.Create(entry); err != nil {
		log.L.Warn("failed to record user history",
			zap.String("user_id", userID),
			zap.String("action", actionType),
			zap.Error(err),
		)
	}
}

// List returns a page of the user's activity, optionally filtered by
// action type.
func (s *HistoryService) List(userID string, p pagination.Params, filter repositories.UserHistoryFilter) ([]models.UserHistory, pagination.Meta, error) {
	entries, total, err := s.repo.List(userID, p, filter)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return entries, pagination.NewMeta(p, total), nil
}

// Stats summarizes the user's activity; "recent" covers the last week.
func (s *HistoryService) Stats(userID string) (*repositories.UserHistoryStats, error) {
	return s.repo.Stats(userID, time.Now().AddDate(0, 0, -7))
}

// Clear wipes the user's activity trail.
func (s *HistoryService) Clear(userID string) error {
	return s.repo.Clear(userID)
}
