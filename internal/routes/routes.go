package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creatorlabs/creator-platform/internal/handlers"
)

func Register(app *fiber.App, h *handlers.Handler) {
	app.Get("/", h.Root)
	app.Get("/test", h.TestStore)

	app.Post("/users", h.CreateUser)
	app.Get("/users", h.ListUsers)

	app.Post("/posts", h.CreatePost)
	app.Get("/posts", h.ListPosts)

	app.Post("/comments", h.CreateComment)
	app.Post("/likes", h.CreateLike)

	app.Post("/messages", h.CreateMessage)
	app.Get("/messages", h.ListMessages)

	app.Post("/plans", h.CreatePlan)
	app.Post("/subscriptions", h.CreateSubscription)
	app.Post("/payments", h.CreatePayment)

	app.Post("/notifications", h.CreateNotification)
	app.Get("/notifications", h.ListNotifications)

	app.Post("/streams", h.CreateStream)
	app.Post("/audio-rooms", h.CreateAudioRoom)

	app.Post("/search", h.Search)
	app.Get("/recommendations", h.Recommendations)

	app.Post("/analytics", h.TrackEvent)
}
