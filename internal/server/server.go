package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/creatorlabs/creator-platform/internal/handlers"
	"github.com/creatorlabs/creator-platform/internal/routes"
)

// New builds the fiber app: recover, request log, open CORS, then the route
// table. No auth; every endpoint is public.
func New(h *handlers.Handler) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "creator-platform"})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New()) // defaults: any origin, method, header

	routes.Register(app, h)
	return app
}
