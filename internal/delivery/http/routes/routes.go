package routes

import (
	"io/fs"

	"portfolio/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"
)

type Registry struct {
	health    *handler.HealthHandler
	portfolio *handler.PortfolioHandler
	cv        *handler.CVHandler
	scene     *handler.SceneHandler
	assets    fs.FS
}

func NewRegistry(
	health *handler.HealthHandler,
	portfolio *handler.PortfolioHandler,
	cv *handler.CVHandler,
	scene *handler.SceneHandler,
	assets fs.FS,
) *Registry {
	return &Registry{health: health, portfolio: portfolio, cv: cv, scene: scene, assets: assets}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.portfolio.RegisterRoutes(app)
	r.cv.RegisterRoutes(app)
	if r.scene != nil {
		r.scene.RegisterRoutes(app)
	}
	if r.assets != nil {
		app.Get("/static*", static.New("", static.Config{FS: r.assets}))
	}
}
