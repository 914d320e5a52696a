package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creatorlabs/creator-platform/internal/models"
	"github.com/creatorlabs/creator-platform/internal/store"
)

func (h *Handler) CreatePost(c *fiber.Ctx) error {
	return createEntity[models.Post](h, c, models.CollectionPost)
}

// ListPosts filters by tag membership and/or author equality; both given
// means both must hold.
func (h *Handler) ListPosts(c *fiber.Ctx) error {
	var parts []store.Filter
	if tag := c.Query("tag"); tag != "" {
		parts = append(parts, store.Contains("tags", tag))
	}
	if author := c.Query("author_id"); author != "" {
		parts = append(parts, store.Eq("author_id", author))
	}
	f := store.All()
	if len(parts) > 0 {
		f = store.And(parts...)
	}
	return h.list(c, models.CollectionPost, f, postsCap)
}
