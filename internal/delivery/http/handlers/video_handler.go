package handlers

import (
	"reels-service/internal/domain/dto"
	"reels-service/internal/usecases"
	consts "reels-service/pkg/constants"
	"reels-service/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type VideoHandler struct {
	videoService  usecases.VideoService
	ingestService usecases.IngestService
}

func NewVideoHandler(videoService usecases.VideoService, ingestService usecases.IngestService) *VideoHandler {
	return &VideoHandler{
		videoService:  videoService,
		ingestService: ingestService,
	}
}

// GetVideo
//
// @Summary      Get Video
// @Description  Returns a single video by id
// @Tags         Video
// @Produce      json
// @Param        id   path      string  true  "Video ID (UUID)"
// @Success      200  {object}  dto.VideoResponse
// @Failure      400  {object}  dto.ErrorResponse "Malformed id"
// @Failure      404  {object}  dto.ErrorResponse "Video not found"
// @Router       /video/{id} [get]
func (h *VideoHandler) GetVideo(c *fiber.Ctx) error {
	video, err := h.videoService.GetVideo(c.UserContext(), c.Params("id"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(video)
}

// GetVideoByReel
//
// @Summary      Get Video By Reel
// @Description  Returns the video owned by a reel
// @Tags         Video
// @Produce      json
// @Param        id   path      string  true  "Reel ID (UUID)"
// @Success      200  {object}  dto.VideoResponse
// @Failure      400  {object}  dto.ErrorResponse "Malformed id"
// @Failure      404  {object}  dto.ErrorResponse "Reel or video not found"
// @Router       /video/reel/{id} [get]
func (h *VideoHandler) GetVideoByReel(c *fiber.Ctx) error {
	video, err := h.videoService.GetVideoByReel(c.UserContext(), c.Params("id"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(video)
}

// UploadVideo
//
// @Summary      Upload Video
// @Description  Stores a video file with its metadata
// @Tags         Video
// @Accept       multipart/form-data
// @Produce      json
// @Param        x-uuid  header    string  true  "Caller user id"
// @Param        file    formData  file    true  "Video file"
// @Param        video   formData  string  true  "Video metadata JSON"
// @Success      200     {object}  dto.VideoResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /video [post]
func (h *VideoHandler) UploadVideo(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return errors.HandleError(c, errors.ErrBadRequest("invalid multipart form: %v", err))
	}

	video, err := h.ingestService.UploadVideo(c.UserContext(), c.Get(consts.UserIDHeader), form)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(video)
}

// UpdateVideo
//
// @Summary      Update Video
// @Description  Updates title, description or length; absent fields are kept
// @Tags         Video
// @Accept       json
// @Produce      json
// @Param        x-uuid  header    string                  true  "Caller user id"
// @Param        id      path      string                  true  "Video ID (UUID)"
// @Param        video   body      dto.UpdateVideoRequest  true  "Fields to change"
// @Success      200     {object}  dto.VideoResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse "Video not found"
// @Router       /video/{id} [put]
func (h *VideoHandler) UpdateVideo(c *fiber.Ctx) error {
	var req dto.UpdateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrBadRequest("invalid video body: %v", err))
	}

	video, err := h.videoService.UpdateVideo(c.UserContext(), c.Params("id"), c.Get(consts.UserIDHeader), req)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(video)
}

// DeleteVideo
//
// @Summary      Delete Video
// @Description  Deletes a video that no reel references, and its file
// @Tags         Video
// @Produce      json
// @Param        id   path      string  true  "Video ID (UUID)"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      400  {object}  dto.ErrorResponse "Malformed id"
// @Failure      404  {object}  dto.ErrorResponse "Video not found"
// @Failure      409  {object}  dto.ErrorResponse "Video belongs to a reel"
// @Router       /video/{id} [delete]
func (h *VideoHandler) DeleteVideo(c *fiber.Ctx) error {
	resp, err := h.videoService.DeleteVideo(c.UserContext(), c.Params("id"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(resp)
}
