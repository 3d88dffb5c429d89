package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/padraicob/lotto-backend/models"
	"github.com/padraicob/lotto-backend/services"
	"github.com/padraicob/lotto-backend/shared"
)

type ResultsHandler struct {
	ResultService    *services.ResultService
	CountdownService *services.CountdownService
}

func NewResultsHandler(results *services.ResultService, countdown *services.CountdownService) *ResultsHandler {
	return &ResultsHandler{
		ResultService:    results,
		CountdownService: countdown,
	}
}

// statusForError maps service error categories onto HTTP statuses.
// Store connectivity problems become 503 "data unavailable" rather than
// a hard not-found, so a flaky store never reads as an empty archive.
func statusForError(err error) (int, string) {
	var svcErr *shared.ServiceError
	if errors.As(err, &svcErr) {
		switch svcErr.Category {
		case shared.ErrorCategoryValidation:
			return fiber.StatusBadRequest, svcErr.Message
		case shared.ErrorCategoryNotFound:
			return fiber.StatusNotFound, svcErr.Message
		case shared.ErrorCategoryDatabase:
			svcErr.LogError()
			return fiber.StatusServiceUnavailable, "draw data is temporarily unavailable"
		}
	}
	return fiber.StatusInternalServerError, "internal error"
}

func errorResponse(c *fiber.Ctx, err error) error {
	status, message := statusForError(err)
	return c.Status(status).JSON(fiber.Map{"success": false, "error": message})
}

// GetResultByDate serves one draw date. Available draws return the full
// document; pending dates return the countdown payload; everything else
// is a 404.
func (h *ResultsHandler) GetResultByDate(c *fiber.Ctx) error {
	lookup, err := h.ResultService.GetByDate(c.Context(), c.Params("date"))
	if err != nil {
		return errorResponse(c, err)
	}

	switch lookup.State {
	case models.StateAvailable:
		return c.JSON(fiber.Map{"success": true, "state": lookup.State.String(), "data": lookup.Result})
	case models.StatePending:
		timer := h.CountdownService.Timer(lookup.Pending.TargetInstant, false)
		return c.JSON(fiber.Map{
			"success": true,
			"state":   lookup.State.String(),
			"data":    lookup.Pending,
			"timer":   timer,
		})
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "no draw results for this date"})
	}
}

// GetLatest serves the newest draw in the archive.
func (h *ResultsHandler) GetLatest(c *fiber.Ctx) error {
	latest, err := h.ResultService.GetLatest(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": latest})
}

// GetPastResults serves up to ?limit= draws preceding the given date.
func (h *ResultsHandler) GetPastResults(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	results, err := h.ResultService.GetPast(c.Context(), c.Params("date"), limit)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": results})
}

// GetArchive serves one page of the historical archive.
func (h *ResultsHandler) GetArchive(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	size := c.QueryInt("size", 10)

	archive, err := h.ResultService.GetArchivePage(c.Context(), page, size)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": archive})
}
