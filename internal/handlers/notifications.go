package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creatorlabs/creator-platform/internal/models"
	"github.com/creatorlabs/creator-platform/internal/store"
)

func (h *Handler) CreateNotification(c *fiber.Ctx) error {
	return createEntity[models.Notification](h, c, models.CollectionNotification)
}

func (h *Handler) ListNotifications(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return missingParam(c, "user_id")
	}
	return h.list(c, models.CollectionNotification, store.Eq("user_id", userID), notificationsCap)
}
