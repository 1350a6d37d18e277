package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/datafox-web/datafox/app/controllers"
	"github.com/datafox-web/datafox/internal/pkg/constants"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	api.Get(constants.APIDataRoute, controllers.HandleGetChartData)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
