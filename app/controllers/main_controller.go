package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/datafox-web/datafox/internal/pkg/env"
	"github.com/datafox-web/datafox/internal/pkg/viewmodel"
)

const mainLayout = "layouts/main"

func layoutFor(title string) viewmodel.Layout {
	return viewmodel.Layout{
		Title: title,
		Year:  time.Now().Year(),
		Dev:   env.IsDev(),
	}
}

func HandleHome(c *fiber.Ctx) error {
	return c.Render("index", layoutFor("Home"), mainLayout)
}

func HandleAbout(c *fiber.Ctx) error {
	page := viewmodel.AboutPage{
		Layout: layoutFor("About Us"),
		Team:   viewmodel.Team(),
	}

	return c.Render("about", page, mainLayout)
}

func HandleDashboard(c *fiber.Ctx) error {
	return c.Render("dashboard", layoutFor("Data Dashboard"), mainLayout)
}

// HandleNotFound renders the 404 page. Installed as the last handler in the
// chain, so it only runs when no route matched.
func HandleNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("404", layoutFor("Page Not Found"), mainLayout)
}
