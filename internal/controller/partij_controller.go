package controller

import (
	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/pkg/serverutils"
	"ouderschapsplan-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPartijController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type partijController struct {
	service service.IPartijService
}

func NewPartijController(service service.IPartijService) IPartijController {
	return &partijController{service: service}
}

func (c *partijController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/:dossierId/partijen")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put("/:partijId", c.Update)
	h.Delete("/:partijId", c.Delete)
}

func (c *partijController) List(ctx *fiber.Ctx) error {
	userId, dossierId, err := dossierScope(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), userId, dossierId)
	if err != nil {
		return err
	}
	return respondOK(ctx, res)
}

func (c *partijController) Create(ctx *fiber.Ctx) error {
	userId, dossierId, err := dossierScope(ctx)
	if err != nil {
		return err
	}

	var req dto.CreatePartijRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), userId, dossierId, &req)
	if err != nil {
		return err
	}
	return respondCreated(ctx, res)
}

func (c *partijController) Update(ctx *fiber.Ctx) error {
	var params dto.PartijParams
	userId, err := scoped(ctx, &params)
	if err != nil {
		return err
	}

	var req dto.UpdatePartijRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), userId, params, &req)
	if err != nil {
		return err
	}
	return respondOK(ctx, res)
}

func (c *partijController) Delete(ctx *fiber.Ctx) error {
	var params dto.PartijParams
	userId, err := scoped(ctx, &params)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), userId, params); err != nil {
		return err
	}
	return respondMessage(ctx, "Partij deleted successfully")
}
