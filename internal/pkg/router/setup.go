package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/datafox-web/datafox/app/controllers"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

func InstallRouter(app *fiber.App) {
	setup(app, NewHttpRouter(), NewApiRouter())

	// Fallback for everything no route claimed. Must come last so it never
	// shadows a registered route.
	app.Use(controllers.HandleNotFound)
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
