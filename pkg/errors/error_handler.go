package errors

import (
	stderrors "errors"

	"reels-service/pkg/errors/i18n"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatusFor maps an error code to its HTTP status.
func StatusFor(code string) int {
	switch code {
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeBadRequest:
		return fiber.StatusBadRequest
	case CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleError writes err as a JSON error body. It is used directly by the
// handlers and installed as the fiber ErrorHandler.
func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var ae *AppError
	if stderrors.As(err, &ae) {
		if ae.Err != nil {
			zap.L().Warn("request failed",
				zap.String("code", ae.Code),
				zap.String("path", c.Path()),
				zap.Error(ae.Err),
			)
		}
		message := ae.Message
		if message == "" {
			message = i18n.T(ae.Code)
		}
		return c.Status(StatusFor(ae.Code)).JSON(fiber.Map{
			"error":   ae.Code,
			"message": message,
		})
	}

	var fe *fiber.Error
	if stderrors.As(err, &fe) {
		code := CodeInternal
		switch {
		case fe.Code == fiber.StatusNotFound:
			code = CodeNotFound
		case fe.Code >= 400 && fe.Code < 500:
			code = CodeBadRequest
		}
		return c.Status(fe.Code).JSON(fiber.Map{
			"error":   code,
			"message": fe.Message,
		})
	}

	zap.L().Error("unexpected error", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   CodeInternal,
		"message": i18n.T(CodeInternal),
	})
}
