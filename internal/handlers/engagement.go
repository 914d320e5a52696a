package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creatorlabs/creator-platform/internal/models"
)

func (h *Handler) CreateComment(c *fiber.Ctx) error {
	return createEntity[models.Comment](h, c, models.CollectionComment)
}

func (h *Handler) CreateLike(c *fiber.Ctx) error {
	return createEntity[models.Like](h, c, models.CollectionLike)
}
