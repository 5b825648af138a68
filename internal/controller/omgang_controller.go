package controller

import (
	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/pkg/serverutils"
	"ouderschapsplan-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOmgangController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ReplaceWeek(ctx *fiber.Ctx) error
}

type omgangController struct {
	service service.IOmgangService
}

func NewOmgangController(service service.IOmgangService) IOmgangController {
	return &omgangController{service: service}
}

func (c *omgangController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/:dossierId/omgang")
	h.Get("", c.List)
	h.Post("", c.Create)
	// before /:omgangId so "week" is not read as an id
	h.Put("/week", c.ReplaceWeek)
	h.Put("/:omgangId", c.Update)
	h.Delete("/:omgangId", c.Delete)
}

func (c *omgangController) List(ctx *fiber.Ctx) error {
	userId, dossierId, err := dossierScope(ctx)
	if err != nil {
		return err
	}

	var query dto.OmgangQuery
	if err := serverutils.ParseQuery(ctx, &query); err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), userId, dossierId, query)
	if err != nil {
		return err
	}
	return respondOK(ctx, res)
}

func (c *omgangController) Create(ctx *fiber.Ctx) error {
	userId, dossierId, err := dossierScope(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateOmgangRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), userId, dossierId, &req)
	if err != nil {
		return err
	}
	return respondCreated(ctx, res)
}

func (c *omgangController) Update(ctx *fiber.Ctx) error {
	var params dto.OmgangParams
	userId, err := scoped(ctx, &params)
	if err != nil {
		return err
	}

	var req dto.UpdateOmgangRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), userId, params, &req)
	if err != nil {
		return err
	}
	return respondOK(ctx, res)
}

func (c *omgangController) Delete(ctx *fiber.Ctx) error {
	var params dto.OmgangParams
	userId, err := scoped(ctx, &params)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), userId, params); err != nil {
		return err
	}
	return respondMessage(ctx, "Omgang deleted successfully")
}

func (c *omgangController) ReplaceWeek(ctx *fiber.Ctx) error {
	userId, dossierId, err := dossierScope(ctx)
	if err != nil {
		return err
	}

	var req dto.ReplaceWeekRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.ReplaceWeek(ctx.UserContext(), userId, dossierId, &req)
	if err != nil {
		return err
	}
	return respondOK(ctx, res)
}
