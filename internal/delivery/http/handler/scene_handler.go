package handler

import (
	"portfolio/internal/scene"

	"github.com/gofiber/fiber/v3"
)

type sceneGeometry interface {
	Geometry() scene.Geometry
}

type SceneHandler struct {
	scene sceneGeometry
	ws    fiber.Handler
}

// NewSceneHandler serves the static geometry and, when ws is non-nil, the
// frame stream.
func NewSceneHandler(s sceneGeometry, ws fiber.Handler) *SceneHandler {
	return &SceneHandler{scene: s, ws: ws}
}

func (h *SceneHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/api/scene", h.HandleGeometry)
	if h.ws != nil {
		r.Get("/ws/scene", h.ws)
	}
}

func (h *SceneHandler) HandleGeometry(c fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.JSON(h.scene.Geometry())
}
