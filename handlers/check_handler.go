package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/padraicob/lotto-backend/models"
	"github.com/padraicob/lotto-backend/services"
)

type CheckHandler struct {
	ResultService *services.ResultService
	PrizeMatcher  *services.PrizeMatcherService
}

func NewCheckHandler(results *services.ResultService, matcher *services.PrizeMatcherService) *CheckHandler {
	return &CheckHandler{
		ResultService: results,
		PrizeMatcher:  matcher,
	}
}

// CheckNumbers runs the number checker against a stored draw. The line
// is validated here; the matcher itself assumes valid input.
func (h *CheckHandler) CheckNumbers(c *fiber.Ctx) error {
	var req models.CheckRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	lookup, err := h.ResultService.GetByDate(c.Context(), req.Date)
	if err != nil {
		return errorResponse(c, err)
	}

	switch lookup.State {
	case models.StateAvailable:
		game := lookup.Result.GameResultFor(req.Game)
		result := h.PrizeMatcher.Match(req.Numbers, game)
		return c.JSON(fiber.Map{
			"success": true,
			"data":    result,
			"game":    game.Label,
			"date":    lookup.Result.ID,
		})
	case models.StatePending:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"error":   "results for this draw are not available yet",
			"data":    lookup.Pending,
		})
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "no draw results for this date"})
	}
}
