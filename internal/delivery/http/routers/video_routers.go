package routers

import (
	"reels-service/internal/delivery/http/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupVideoRoutes(app *fiber.App, videoHandler *handlers.VideoHandler) {
	app.Post("/video", videoHandler.UploadVideo)
	app.Get("/video/reel/:id", videoHandler.GetVideoByReel)
	app.Get("/video/:id", videoHandler.GetVideo)
	app.Put("/video/:id", videoHandler.UpdateVideo)
	app.Delete("/video/:id", videoHandler.DeleteVideo)
}
