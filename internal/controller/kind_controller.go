package controller

import (
	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/pkg/serverutils"
	"ouderschapsplan-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IKindController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	AddOuder(ctx *fiber.Ctx) error
	RemoveOuder(ctx *fiber.Ctx) error
}

type kindController struct {
	service service.IKindService
}

func NewKindController(service service.IKindService) IKindController {
	return &kindController{service: service}
}

func (c *kindController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/:dossierId/kinderen")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put("/:dossierKindId", c.Update)
	h.Delete("/:dossierKindId", c.Delete)
	h.Post("/:kindId/ouders", c.AddOuder)
	h.Delete("/:kindId/ouders/:ouderId", c.RemoveOuder)
}

func (c *kindController) List(ctx *fiber.Ctx) error {
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

func (c *kindController) Create(ctx *fiber.Ctx) error {
	userId, dossierId, err := dossierScope(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateKindRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), userId, dossierId, &req)
	if err != nil {
		return err
	}
	return respondCreated(ctx, res)
}

func (c *kindController) Update(ctx *fiber.Ctx) error {
	var params dto.DossierKindParams
	userId, err := scoped(ctx, &params)
	if err != nil {
		return err
	}

	var req dto.UpdateKindRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), userId, params, &req)
	if err != nil {
		return err
	}
	return respondOK(ctx, res)
}

func (c *kindController) Delete(ctx *fiber.Ctx) error {
	var params dto.DossierKindParams
	userId, err := scoped(ctx, &params)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), userId, params); err != nil {
		return err
	}
	return respondMessage(ctx, "Kind removed from dossier")
}

func (c *kindController) AddOuder(ctx *fiber.Ctx) error {
	var params dto.KindParams
	userId, err := scoped(ctx, &params)
	if err != nil {
		return err
	}

	var req dto.AddOuderRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.AddOuder(ctx.UserContext(), userId, params, &req)
	if err != nil {
		return err
	}
	return respondCreated(ctx, res)
}

func (c *kindController) RemoveOuder(ctx *fiber.Ctx) error {
	var params dto.KindOuderParams
	userId, err := scoped(ctx, &params)
	if err != nil {
		return err
	}

	if err := c.service.RemoveOuder(ctx.UserContext(), userId, params); err != nil {
		return err
	}
	return respondMessage(ctx, "Ouder relation removed")
}
