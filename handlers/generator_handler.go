package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/padraicob/lotto-backend/services"
)

type GeneratorHandler struct {
	GeneratorService *services.GeneratorService
}

func NewGeneratorHandler(generator *services.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{GeneratorService: generator}
}

// GenerateLine serves a random line for the number generator page. The
// line id lets the client keep a local history of generated lines.
func (h *GeneratorHandler) GenerateLine(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":      uuid.New().String(),
			"numbers": h.GeneratorService.RandomLine(),
		},
	})
}
