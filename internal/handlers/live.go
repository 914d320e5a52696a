package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creatorlabs/creator-platform/internal/models"
)

func (h *Handler) CreateStream(c *fiber.Ctx) error {
	return createEntity[models.Stream](h, c, models.CollectionStream)
}

func (h *Handler) CreateAudioRoom(c *fiber.Ctx) error {
	return createEntity[models.AudioRoom](h, c, models.CollectionAudioRoom)
}
