package handlers

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"service": "creator-platform", "status": "ok"})
}

// TestStore reports store connectivity as a descriptive body. It always
// returns 200; a broken store is this endpoint's payload, not its failure.
func (h *Handler) TestStore(c *fiber.Ctx) error {
	resp := fiber.Map{
		"backend":           "running",
		"database":          "not available",
		"database_name":     "not set",
		"connection_status": "not connected",
		"collections":       []string{},
	}
	if h.store == nil {
		return c.JSON(resp)
	}

	resp["database"] = "available"
	if h.dbName != "" {
		resp["database_name"] = h.dbName
	}
	resp["connection_status"] = "connected"

	names, err := h.store.Collections(c.Context())
	if err != nil {
		resp["database"] = "connected but error: " + truncate(err.Error(), 80)
		return c.JSON(resp)
	}
	if len(names) > collectionsCap {
		names = names[:collectionsCap]
	}
	resp["database"] = "connected and working"
	resp["collections"] = names
	return c.JSON(resp)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
