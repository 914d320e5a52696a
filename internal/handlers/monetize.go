package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creatorlabs/creator-platform/internal/models"
)

func (h *Handler) CreatePlan(c *fiber.Ctx) error {
	return createEntity[models.SubscriptionPlan](h, c, models.CollectionPlan)
}

// CreateSubscription records the subscription as-is; provider webhook
// verification belongs to the (out of scope) payment integration.
func (h *Handler) CreateSubscription(c *fiber.Ctx) error {
	return createEntity[models.Subscription](h, c, models.CollectionSubscription)
}

func (h *Handler) CreatePayment(c *fiber.Ctx) error {
	return createEntity[models.Payment](h, c, models.CollectionPayment)
}
