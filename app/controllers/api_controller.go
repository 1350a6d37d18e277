package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/datafox-web/datafox/internal/pkg/analytics"
)

// HandleGetChartData returns the sample dataset consumed by the dashboard
// chart. The timestamp is generated fresh per call.
func HandleGetChartData(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(analytics.Sample(time.Now()))
}
