package handlers

import (
	"github.com/gofiber/fiber/v2"

	"samurai-nutrition/internal/middleware"
	"samurai-nutrition/internal/repositories"
	"samurai-nutrition/internal/services"
)

// UserHistoryHandler exposes the caller's own browsing and purchase history.
type UserHistoryHandler struct {
	service *services.HistoryService
}

// NewUserHistoryHandler creates a new UserHistoryHandler.
func NewUserHistoryHandler(service *services.HistoryService) *UserHistoryHandler {
	return &UserHistoryHandler{service: service}
}

// RegisterRoutes registers the history routes on an authenticated router.
func (h *UserHistoryHandler) RegisterRoutes(router fiber.Router) {
	history := router.Group("/user/history")
	history.Get("/", h.HandleListHistory)
	history.Get("/stats", h.HandleHistoryStats)
	history.Delete("/clear", h.HandleClearHistory)
}

// HandleListHistory lists the caller's history newest first, optionally
// narrowed by ?action_type=.
func (h *UserHistoryHandler) HandleListHistory(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	p := pageParams(c, 20)
	filter := repositories.UserHistoryFilter{ActionType: c.Query("action_type")}

	entries, meta, err := h.service.List(user.ID, p, filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(paged("history", entries, meta))
}

// HandleHistoryStats summarizes the caller's activity per action type.
func (h *UserHistoryHandler) HandleHistoryStats(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	stats, err := h.service.Stats(user.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stats)
}

// HandleClearHistory deletes all of the caller's history entries.
func (h *UserHistoryHandler) HandleClearHistory(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := h.service.Clear(user.ID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "history cleared"})
}
