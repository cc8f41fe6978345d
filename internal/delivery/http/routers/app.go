package routers

import (
	"strings"

	"reels-service/internal/delivery/http/handlers"
	"reels-service/internal/delivery/http/middleware"
	"reels-service/internal/pkg/config"
	"reels-service/internal/pkg/metrics"
	"reels-service/internal/usecases"
	"reels-service/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// multipart headers and the JSON parts ride on top of the file itself
const bodyOverhead = 1 << 20

type Services struct {
	Reels  usecases.ReelService
	Videos usecases.VideoService
	Ingest usecases.IngestService
}

// NewApp builds the fiber application with every route mounted.
func NewApp(cfg *config.Config, services Services, counter *metrics.RequestCounter) *fiber.App {
	fiberCfg := fiber.Config{
		AppName:      "reels-service",
		ErrorHandler: errors.HandleError,
	}
	if cfg.Upload.MaxFileSize > 0 {
		fiberCfg.BodyLimit = int(cfg.Upload.MaxFileSize) + bodyOverhead
	}
	app := fiber.New(fiberCfg)

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	if counter != nil {
		app.Use(middleware.CountRequests(counter))
	}

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", handlers.Health)
	SetupReelRoutes(app, handlers.NewReelHandler(services.Reels, services.Ingest))
	SetupVideoRoutes(app, handlers.NewVideoHandler(services.Videos, services.Ingest))

	// Stored videos are served as plain files.
	app.Static("/"+strings.Trim(cfg.Upload.PublicPrefix, "/"), cfg.Upload.UploadsDir, fiber.Static{
		Browse: false,
	})

	return app
}
