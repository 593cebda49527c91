package handler

import (
	"context"
	"time"

	"portfolio/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type loadTracker interface {
	LoadedAt() (time.Time, bool)
}

type HealthHandler struct {
	db       pinger
	snapshot loadTracker
}

func NewHealthHandler(db pinger, snapshot loadTracker) *HealthHandler {
	return &HealthHandler{db: db, snapshot: snapshot}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	data := fiber.Map{"database": "up", "loaded": false}

	status := fiber.StatusOK
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			data["database"] = "down"
			status = fiber.StatusServiceUnavailable
		}
	}
	if h.snapshot != nil {
		if at, ok := h.snapshot.LoadedAt(); ok {
			data["loaded"] = true
			data["loaded_at"] = at.Format(time.RFC3339)
		}
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, "", data)
	}
	return response.Success(c, status, response.MessageOK, data)
}
