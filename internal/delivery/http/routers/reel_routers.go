package routers

import (
	"reels-service/internal/delivery/http/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupReelRoutes(app *fiber.App, reelHandler *handlers.ReelHandler) {
	app.Get("/reel", reelHandler.ListReels)
	app.Post("/reel", reelHandler.CreateReel)
	app.Get("/reel/:id", reelHandler.GetReel)
	app.Delete("/reel/:id", reelHandler.DeleteReel)
	app.Get("/reel-videos", reelHandler.ListReelsWithVideos)
	app.Post("/reel-video", reelHandler.UploadReelWithVideo)
	app.Get("/user/reels", reelHandler.ListUserReels)
}
