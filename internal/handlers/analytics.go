package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creatorlabs/creator-platform/internal/models"
)

func (h *Handler) TrackEvent(c *fiber.Ctx) error {
	return createEntity[models.AnalyticsEvent](h, c, models.CollectionAnalyticsEvent)
}
