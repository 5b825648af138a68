package controller

import (
	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// dossierScope returns the caller and the :dossierId of the request.
func dossierScope(ctx *fiber.Ctx) (uint, uint, error) {
	userId, err := serverutils.UserId(ctx)
	if err != nil {
		return 0, 0, err
	}
	var params dto.DossierParams
	if err := serverutils.ParseParams(ctx, &params); err != nil {
		return 0, 0, err
	}
	return userId, params.DossierId, nil
}

// scoped parses the path parameters of a dossier child resource into params.
func scoped(ctx *fiber.Ctx, params interface{}) (uint, error) {
	userId, err := serverutils.UserId(ctx)
	if err != nil {
		return 0, err
	}
	if err := serverutils.ParseParams(ctx, params); err != nil {
		return 0, err
	}
	return userId, nil
}

func respondCreated[T any](ctx *fiber.Ctx, data T) error {
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse(data))
}

func respondOK[T any](ctx *fiber.Ctx, data T) error {
	return ctx.JSON(serverutils.SuccessResponse(data))
}

func respondMessage(ctx *fiber.Ctx, text string) error {
	return ctx.JSON(serverutils.SuccessResponse(serverutils.MessageData{Message: text}))
}
