package handlers

import (
	"context"
	"time"

	"chargili/internal/repositories/cache"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	cache   *cache.CacheService
	version string
}

func NewHealthHandler(c *cache.CacheService, version string) *HealthHandler {
	return &HealthHandler{cache: c, version: version}
}

// Check reports the console and its session store.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	redisStatus := "connected"
	status := fiber.StatusOK
	if h.cache == nil {
		redisStatus = "disabled"
	} else if err := h.cache.HealthCheck(ctx); err != nil {
		redisStatus = "unavailable"
		status = fiber.StatusServiceUnavailable
	}

	overall := "ok"
	if status != fiber.StatusOK {
		overall = "degraded"
	}
	return c.Status(status).JSON(fiber.Map{
		"status":  overall,
		"version": h.version,
		"services": fiber.Map{
			"redis": redisStatus,
		},
	})
}
