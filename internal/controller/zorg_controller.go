package controller

import (
	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/pkg/serverutils"
	"ouderschapsplan-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IZorgController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type zorgController struct {
	service service.IZorgService
}

func NewZorgController(service service.IZorgService) IZorgController {
	return &zorgController{service: service}
}

func (c *zorgController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/:dossierId/zorg")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put("/:zorgId", c.Update)
	h.Delete("/:zorgId", c.Delete)
}

func (c *zorgController) List(ctx *fiber.Ctx) error {
	userId, dossierId, err := dossierScope(ctx)
	if err != nil {
		return err
	}

	var query dto.ZorgQuery
	if err := serverutils.ParseQuery(ctx, &query); err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), userId, dossierId, query)
	if err != nil {
		return err
	}
	return respondOK(ctx, res)
}

func (c *zorgController) Create(ctx *fiber.Ctx) error {
	userId, dossierId, err := dossierScope(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateZorgRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), userId, dossierId, &req)
	if err != nil {
		return err
	}
	return respondCreated(ctx, res)
}

func (c *zorgController) Update(ctx *fiber.Ctx) error {
	var params dto.ZorgParams
	userId, err := scoped(ctx, &params)
	if err != nil {
		return err
	}

	var req dto.UpdateZorgRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), userId, params, &req)
	if err != nil {
		return err
	}
	return respondOK(ctx, res)
}

func (c *zorgController) Delete(ctx *fiber.Ctx) error {
	var params dto.ZorgParams
	userId, err := scoped(ctx, &params)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), userId, params); err != nil {
		return err
	}
	return respondMessage(ctx, "Zorg deleted successfully")
}
