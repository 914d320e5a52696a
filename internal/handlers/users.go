package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creatorlabs/creator-platform/internal/models"
	"github.com/creatorlabs/creator-platform/internal/store"
)

func (h *Handler) CreateUser(c *fiber.Ctx) error {
	return createEntity[models.User](h, c, models.CollectionUser)
}

func (h *Handler) ListUsers(c *fiber.Ctx) error {
	return h.list(c, models.CollectionUser, store.All(), usersCap)
}
