package app

import (
	"fmt"
	"strings"

	"portfolio/internal/delivery/http/handler"
	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/delivery/http/routes"
	"portfolio/internal/ws"
	"portfolio/web"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	var wsHandler fiber.Handler
	if c.Hub != nil {
		wsHandler = ws.NewHandler(c.Hub, c.Logger).HandleSceneWS
	}

	var sceneHandler *handler.SceneHandler
	if c.Scene != nil {
		sceneHandler = handler.NewSceneHandler(c.Scene, wsHandler)
	}

	routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Snapshot),
		handler.NewPortfolioHandler(c.Portfolio),
		handler.NewCVHandler(c.CV),
		sceneHandler,
		web.Static(),
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
