package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/decideforme/internal/ai"
	"github.com/localnerve/decideforme/internal/config"
	"github.com/localnerve/decideforme/internal/kvstore"
	"github.com/localnerve/decideforme/internal/services"
)

// HealthHandler reports the reachability of the store and the model endpoint
type HealthHandler struct {
	Config  *config.Config
	Store   kvstore.Store
	Gateway ai.Gateway
}

// Check handles GET /api/health
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	result := services.HealthCheck(c.UserContext(), h.Config, h.Store, h.Gateway)
	if result.Status != "healthy" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(result)
	}
	return c.JSON(result)
}
