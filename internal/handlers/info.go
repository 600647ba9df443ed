package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/nickstore/internal/config"
	"github.com/localnerve/nickstore/internal/services"
	"gorm.io/gorm"
)

// APIVersion is reported by the root endpoint
const APIVersion = "1.0.0"

const readyTimeout = 3 * time.Second

// InfoHandler serves the service banner and health probes
type InfoHandler struct {
	Config *config.Config
	DB     *gorm.DB
}

// Root handles GET /
// @Summary Service banner
// @Tags Info
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *InfoHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Game Nick Store API",
		"version": APIVersion,
		"docs":    "/swagger/index.html",
	})
}

// Health handles GET /health. It does not touch the database.
// @Summary Liveness probe
// @Tags Info
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *InfoHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

// Ready handles GET /health/ready
// @Summary Readiness probe
// @Description Pings the catalog database
// @Tags Info
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health/ready [get]
func (h *InfoHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
	defer cancel()

	result := services.HealthCheck(ctx, h.Config, h.DB)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
