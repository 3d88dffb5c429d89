package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/padraicob/lotto-backend/services"
)

type TimerHandler struct {
	CountdownService *services.CountdownService
	ScheduleService  *services.ScheduleService
	ClockService     *services.ClockService
	ResyncPeriod     time.Duration
}

func NewTimerHandler(countdown *services.CountdownService, schedule *services.ScheduleService, clock *services.ClockService, resyncPeriod time.Duration) *TimerHandler {
	return &TimerHandler{
		CountdownService: countdown,
		ScheduleService:  schedule,
		ClockService:     clock,
		ResyncPeriod:     resyncPeriod,
	}
}

// GetTimer serves the countdown query surface. Without a ?target= the
// countdown runs to the next scheduled draw. The response carries the
// authoritative server instant so clients can cache a clock offset and
// correct local drift between resyncs.
func (h *TimerHandler) GetTimer(c *fiber.Ctx) error {
	forceShow := c.QueryBool("forceShow", false)

	var target time.Time
	if raw := c.Query("target"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "target must be an RFC 3339 timestamp",
			})
		}
		target = parsed
	} else {
		target = h.ScheduleService.NextDrawInstant(h.ClockService.Now())
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"data":           h.CountdownService.Timer(target, forceShow),
		"resync_seconds": int(h.ResyncPeriod.Seconds()),
	})
}
