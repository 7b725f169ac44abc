package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/toolkithub/accounts/internal/config"
	"github.com/toolkithub/accounts/internal/services"
	"gorm.io/gorm"
)

// HealthHandler handles the service health route
type HealthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// Get handles GET /health
// @Summary Service health
// @Description Database and auth backend reachability
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Get(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.DB)

	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
