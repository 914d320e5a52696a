package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creatorlabs/creator-platform/internal/models"
	"github.com/creatorlabs/creator-platform/internal/store"
)

type searchQuery struct {
	Q string `json:"q"`
}

// Search is the placeholder post search: case-insensitive substring on text,
// or exact tag membership.
func (h *Handler) Search(c *fiber.Ctx) error {
	var body searchQuery
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	if body.Q == "" {
		return missingParam(c, "q")
	}
	f := store.Or(
		store.SubstringCI("text", body.Q),
		store.Contains("tags", body.Q),
	)
	return h.list(c, models.CollectionPost, f, searchCap)
}

// Recommendations is a static feed stub: non-gated posts, no personalization.
// user_id is accepted for interface stability and ignored.
func (h *Handler) Recommendations(c *fiber.Ctx) error {
	if docs, ok := h.cache.GetFeed(c.Context(), recommendCacheKey); ok {
		return c.JSON(docs)
	}
	f := store.In("visibility", "public", "followers")
	docs, err := h.store.Find(c.Context(), models.CollectionPost, f, recommendCap)
	if err != nil {
		return h.storeError(c, "find "+models.CollectionPost, err)
	}
	h.cache.SetFeed(c.Context(), recommendCacheKey, docs)
	return c.JSON(docs)
}
