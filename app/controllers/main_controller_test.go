package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViewsApp(t *testing.T) *fiber.App {
	t.Helper()

	return fiber.New(fiber.Config{
		Views: html.New("../../views", ".html"),
	})
}

func getBody(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestHandleHomeShowsCurrentYear(t *testing.T) {
	app := newViewsApp(t)
	app.Get("/", HandleHome)

	status, body := getBody(t, app, "/")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, strconv.Itoa(time.Now().Year()))
	assert.Contains(t, body, "Welcome to DataFox")
}

func TestHandleAboutListsTeamMembers(t *testing.T) {
	app := newViewsApp(t)
	app.Get("/about", HandleAbout)

	status, body := getBody(t, app, "/about")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Alice")
	assert.Contains(t, body, "Bob")
	assert.Contains(t, body, "Carol")
	assert.Contains(t, body, "Data Engineer")
	assert.Contains(t, body, "ML Engineer")
	assert.Contains(t, body, "Analytics Lead")
	assert.Equal(t, 3, strings.Count(body, "<li>"))
}

func TestHandleDashboard(t *testing.T) {
	app := newViewsApp(t)
	app.Get("/dashboard", HandleDashboard)

	status, body := getBody(t, app, "/dashboard")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Data Dashboard")
	assert.Contains(t, body, "/js/dashboard.js")
}

func TestHandleNotFound(t *testing.T) {
	app := newViewsApp(t)
	app.Use(HandleNotFound)

	status, body := getBody(t, app, "/nonexistent-path")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body, "404")
}
