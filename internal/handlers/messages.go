package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creatorlabs/creator-platform/internal/models"
	"github.com/creatorlabs/creator-platform/internal/store"
)

func (h *Handler) CreateMessage(c *fiber.Ctx) error {
	return createEntity[models.Message](h, c, models.CollectionMessage)
}

// ListMessages returns the participant's messages. With with_user set, only
// messages exactly between the pair (either direction) match; otherwise any
// message where the user is sender or recipient.
func (h *Handler) ListMessages(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return missingParam(c, "user_id")
	}

	f := store.Or(
		store.Eq("sender_id", userID),
		store.Eq("recipient_id", userID),
	)
	if with := c.Query("with_user"); with != "" {
		f = store.Or(
			store.And(store.Eq("sender_id", userID), store.Eq("recipient_id", with)),
			store.And(store.Eq("sender_id", with), store.Eq("recipient_id", userID)),
		)
	}
	return h.list(c, models.CollectionMessage, f, messagesCap)
}
