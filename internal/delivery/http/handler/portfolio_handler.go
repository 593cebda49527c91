package handler

import (
	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PortfolioHandler struct {
	uc usecase.PortfolioUsecase
}

func NewPortfolioHandler(uc usecase.PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

func (h *PortfolioHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandlePage)
	r.Get("/api/data", h.HandleData)
}

// HandlePage serves the rendered page. A failed fetch still gives 200 with
// only the fallback name filled in.
func (h *PortfolioHandler) HandlePage(c fiber.Ctx) error {
	b, err := h.uc.Page(c.Context())
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(b)
}

// HandleData returns the combined record. Failures carry the cause in a flat
// {"error": ...} body.
func (h *PortfolioHandler) HandleData(c fiber.Ctx) error {
	rec, err := h.uc.Load(c.Context())
	if err != nil {
		return middleware.NewBareError(fiber.StatusInternalServerError, err.Error(), err)
	}
	return c.Status(fiber.StatusOK).JSON(rec)
}
