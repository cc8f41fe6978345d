package handlers

import (
	"reels-service/internal/domain/dto"
	"reels-service/internal/usecases"
	consts "reels-service/pkg/constants"
	"reels-service/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type ReelHandler struct {
	reelService   usecases.ReelService
	ingestService usecases.IngestService
}

func NewReelHandler(reelService usecases.ReelService, ingestService usecases.IngestService) *ReelHandler {
	return &ReelHandler{
		reelService:   reelService,
		ingestService: ingestService,
	}
}

// GetReel
//
// @Summary      Get Reel
// @Description  Returns a single reel by id
// @Tags         Reel
// @Produce      json
// @Param        id   path      string  true  "Reel ID (UUID)"
// @Success      200  {object}  dto.ReelResponse
// @Failure      400  {object}  dto.ErrorResponse "Malformed id"
// @Failure      404  {object}  dto.ErrorResponse "Reel not found"
// @Router       /reel/{id} [get]
func (h *ReelHandler) GetReel(c *fiber.Ctx) error {
	reel, err := h.reelService.GetReel(c.UserContext(), c.Params("id"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(reel)
}

// ListReels
//
// @Summary      List Reels
// @Description  Returns reels newest first, one page at a time
// @Tags         Reel
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10, max 100)"
// @Success      200    {array}   dto.ReelResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /reel [get]
func (h *ReelHandler) ListReels(c *fiber.Ctx) error {
	reels, err := h.reelService.ListReels(c.UserContext(), c.Query("page"), c.Query("limit"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(reels)
}

// ListReelsWithVideos
//
// @Summary      List Reels With Videos
// @Description  Returns a page of reels together with the videos they own
// @Tags         Reel
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10, max 100)"
// @Success      200    {object}  dto.ReelWithVideosResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /reel-videos [get]
func (h *ReelHandler) ListReelsWithVideos(c *fiber.Ctx) error {
	resp, err := h.reelService.ListReelsWithVideos(c.UserContext(), c.Query("page"), c.Query("limit"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(resp)
}

// ListUserReels
//
// @Summary      List User Reels
// @Description  Returns the reels posted by the caller
// @Tags         Reel
// @Produce      json
// @Param        x-uuid  header    string  true   "Caller user id"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 10, max 100)"
// @Success      200     {array}   dto.ReelResponse
// @Failure      400     {object}  dto.ErrorResponse "Missing or malformed x-uuid"
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /user/reels [get]
func (h *ReelHandler) ListUserReels(c *fiber.Ctx) error {
	reels, err := h.reelService.ListUserReels(c.UserContext(), c.Get(consts.UserIDHeader), c.Query("page"), c.Query("limit"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(reels)
}

// CreateReel
//
// @Summary      Create Reel
// @Description  Creates a reel for an already uploaded video
// @Tags         Reel
// @Accept       json
// @Produce      json
// @Param        reel  body      dto.CreateReelRequest  true  "Reel"
// @Success      201   {object}  dto.CreateReelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse "Video not found"
// @Failure      409   {object}  dto.ErrorResponse "Video already has a reel"
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /reel [post]
func (h *ReelHandler) CreateReel(c *fiber.Ctx) error {
	var req dto.CreateReelRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrBadRequest("invalid reel body: %v", err))
	}

	resp, err := h.reelService.CreateReel(c.UserContext(), req)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UploadReelWithVideo
//
// @Summary      Upload Reel With Video
// @Description  Stores the video file and creates the video and reel in one step
// @Tags         Reel
// @Accept       multipart/form-data
// @Produce      json
// @Param        x-uuid  header    string  false  "Caller user id (falls back to reel.posting_user_id)"
// @Param        file    formData  file    true   "Video file"
// @Param        video   formData  string  true   "Video metadata JSON"
// @Param        reel    formData  string  true   "Reel metadata JSON"
// @Success      200     {object}  dto.ReelVideoResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /reel-video [post]
func (h *ReelHandler) UploadReelWithVideo(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return errors.HandleError(c, errors.ErrBadRequest("invalid multipart form: %v", err))
	}

	resp, err := h.ingestService.UploadReelWithVideo(c.UserContext(), c.Get(consts.UserIDHeader), form)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(resp)
}

// DeleteReel
//
// @Summary      Delete Reel
// @Description  Deletes the reel, its video and the stored file
// @Tags         Reel
// @Produce      json
// @Param        id   path      string  true  "Reel ID (UUID)"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      400  {object}  dto.ErrorResponse "Malformed id"
// @Failure      404  {object}  dto.ErrorResponse "Reel not found"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /reel/{id} [delete]
func (h *ReelHandler) DeleteReel(c *fiber.Ctx) error {
	resp, err := h.reelService.DeleteReel(c.UserContext(), c.Params("id"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(resp)
}
