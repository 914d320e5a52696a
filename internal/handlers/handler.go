package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/creatorlabs/creator-platform/internal/cache"
	"github.com/creatorlabs/creator-platform/internal/events"
	"github.com/creatorlabs/creator-platform/internal/store"
	"github.com/creatorlabs/creator-platform/internal/validate"
)

// Per-endpoint result caps; there is no pagination cursor.
const (
	usersCap          = 50
	postsCap          = 100
	messagesCap       = 200
	notificationsCap  = 100
	searchCap         = 50
	recommendCap      = 20
	collectionsCap    = 20
	publishTimeout    = 5 * time.Second
	recommendCacheKey = "feed:recommendations"
)

type Handler struct {
	store  store.Store
	cache  *cache.Client
	events *events.Publisher
	dbName string
	log    *zap.SugaredLogger
}

// New wires the handler family. cache and pub may be nil when those backends
// are not configured; st may be nil only for the diagnostics endpoint.
func New(st store.Store, c *cache.Client, pub *events.Publisher, dbName string, log *zap.SugaredLogger) *Handler {
	return &Handler{store: st, cache: c, events: pub, dbName: dbName, log: log}
}

// createEntity is the shared create path: parse, default, validate, insert,
// respond {id}. P constrains T to models with an ApplyDefaults method.
func createEntity[T any, P interface {
	*T
	ApplyDefaults()
}](h *Handler, c *fiber.Ctx, collection string) error {
	var v T
	if err := c.BodyParser(&v); err != nil {
		return invalidBody(c)
	}
	P(&v).ApplyDefaults()
	if errs := validate.Struct(v); errs != nil {
		return validationFailed(c, errs)
	}
	id, err := h.store.Insert(c.Context(), collection, v)
	if err != nil {
		return h.storeError(c, "insert "+collection, err)
	}
	h.publishCreated(collection, id)
	return c.JSON(fiber.Map{"id": id})
}

func (h *Handler) list(c *fiber.Ctx, collection string, f store.Filter, limit int64) error {
	docs, err := h.store.Find(c.Context(), collection, f, limit)
	if err != nil {
		return h.storeError(c, "find "+collection, err)
	}
	return c.JSON(docs)
}

// publishCreated hands off to Kafka in the background so the response never
// waits on the broker.
func (h *Handler) publishCreated(collection, id string) {
	if h.events == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		h.events.EntityCreated(ctx, collection, id)
	}()
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
}

func missingParam(c *fiber.Ctx, name string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": name + " is required"})
}

func validationFailed(c *fiber.Ctx, errs []validate.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "validation failed",
		"fields": errs,
	})
}

func (h *Handler) storeError(c *fiber.Ctx, op string, err error) error {
	h.log.Errorw("store operation failed", "op", op, "err", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage error"})
}
