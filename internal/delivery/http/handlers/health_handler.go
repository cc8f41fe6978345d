package handlers

import (
	"reels-service/internal/domain/dto"
	consts "reels-service/pkg/constants"

	"github.com/gofiber/fiber/v2"
)

// Health
//
// @Summary      Health Check
// @Description  Liveness probe
// @Tags         Health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: consts.StatusOK})
}
