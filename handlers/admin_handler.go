package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/padraicob/lotto-backend/services"
	"github.com/padraicob/lotto-backend/shared"
	"github.com/sirupsen/logrus"
)

type AdminHandler struct {
	AdminToken    string
	CacheService  *services.CacheService
	RateLimiter   *shared.FixedWindowRateLimiter
	ResultService *services.ResultService
}

func NewAdminHandler(adminToken string, cache *services.CacheService, limiter *shared.FixedWindowRateLimiter, results *services.ResultService) *AdminHandler {
	return &AdminHandler{
		AdminToken:    adminToken,
		CacheService:  cache,
		RateLimiter:   limiter,
		ResultService: results,
	}
}

// RequireToken guards the admin surface with the X-Admin-Token header.
// An empty configured token disables the surface entirely.
func (h *AdminHandler) RequireToken(c *fiber.Ctx) error {
	if h.AdminToken == "" || c.Get("X-Admin-Token") != h.AdminToken {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}
	return c.Next()
}

// GetStats reports cache occupancy, limiter counters and request metrics.
func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"cache":        h.CacheService.Stats(),
			"rate_limiter": h.RateLimiter.Stats(),
			"results":      h.ResultService.Metrics().GetSnapshot(),
		},
	})
}

// FlushCache drops every cached entry, forcing fresh store reads.
func (h *AdminHandler) FlushCache(c *fiber.Ctx) error {
	removed := h.CacheService.Clear()

	logrus.WithField("removed", removed).Info("Cache flushed via admin endpoint")

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"removed": removed},
	})
}
