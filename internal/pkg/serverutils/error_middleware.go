package serverutils

import (
	"errors"

	"ouderschapsplan-api/internal/pkg/apperror"
	"ouderschapsplan-api/internal/pkg/logger"

	"ouderschapsplan-api/pkg/database"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns handler errors into the error envelope.
// Unexpected errors are logged and answered with a generic 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code, message := classify(err)
		if code >= fiber.StatusInternalServerError {
			log.Error("HTTP", "request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"status": code,
				"error":  err.Error(),
			})
		}
		return ctx.Status(code).JSON(ErrorResponse(message))
	}
}

func classify(err error) (int, string) {
	if appErr, ok := apperror.As(err); ok {
		return appErr.Code, appErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	if database.IsUniqueViolation(err) {
		return fiber.StatusConflict, "Resource already exists"
	}

	return fiber.StatusInternalServerError, "Internal server error"
}
