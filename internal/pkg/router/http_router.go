package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/datafox-web/datafox/app/controllers"
	"github.com/datafox-web/datafox/internal/pkg/constants"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	app.Get(constants.HomeRoute, controllers.HandleHome)
	app.Get(constants.AboutRoute, controllers.HandleAbout)
	app.Get(constants.DashboardRoute, controllers.HandleDashboard)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
