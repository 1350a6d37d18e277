package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"

	"github.com/datafox-web/datafox/internal/pkg/env"
	"github.com/datafox-web/datafox/internal/pkg/router"
)

func main() {
	app := NewApplication()

	addr := listenAddr()
	if env.IsDev() {
		printStartupBanner(addr)
	} else if env.IsDefaultSecretKey() {
		log.Println("[WARN] APP_SECRET is not set, production mode is running with the development secret")
	}

	log.Fatal(app.Listen(addr))
}

func listenAddr() string {
	return fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "0.0.0.0"), env.GetEnv("APP_PORT", "5000"))
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()

	basePath := findBasePath()

	// init fiber app
	app := fiber.New(fiber.Config{
		Views: html.New(basePath+"views", ".html"),
	})

	// ignore favicon requests
	app.Use(favicon.New())

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// request ids for log correlation
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// fiber metrics
	app.Get("/metrics", monitor.New())

	// static files
	app.Static("/", basePath+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	return app
}

// findBasePath locates the project root so views and assets resolve no
// matter which directory the binary or the tests start from.
func findBasePath() string {
	basePaths := []string{
		"./",     // Current directory
		"../",    // From a subdirectory to project root
		"../../", // Fallback
	}

	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			return path
		}
	}

	panic("Could not find project root directory")
}

func printStartupBanner(addr string) {
	log.Println("Starting DataFox in development mode")
	log.Printf("  Home:      http://%s/", addr)
	log.Printf("  About:     http://%s/about", addr)
	log.Printf("  Dashboard: http://%s/dashboard", addr)
	log.Printf("  API Data:  http://%s/api/data", addr)
}
