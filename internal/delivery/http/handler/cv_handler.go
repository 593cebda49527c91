package handler

import (
	"bytes"
	"errors"

	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/pkg/response"
	"portfolio/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CVHandler struct {
	uc usecase.CVUsecase
}

func NewCVHandler(uc usecase.CVUsecase) *CVHandler {
	return &CVHandler{uc: uc}
}

func (h *CVHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/api/cv", h.HandleDownload)
}

func (h *CVHandler) HandleDownload(c fiber.Ctx) error {
	var buf bytes.Buffer
	name, err := h.uc.Export(c.Context(), &buf)
	if err != nil {
		return mapCVUsecaseError(err)
	}

	c.Attachment(name)
	c.Type("pdf")
	return c.Send(buf.Bytes())
}

func mapCVUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNotLoaded):
		return middleware.NewBareError(fiber.StatusConflict, response.MessageNotLoaded, err)
	case errors.Is(err, usecase.ErrNoProfile):
		return middleware.NewBareError(fiber.StatusNotFound, "No profile to export.", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
