package controller

import (
	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/pkg/serverutils"
	"ouderschapsplan-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOuderschapsplanController interface {
	RegisterRoutes(r fiber.Router)
	GetInfo(ctx *fiber.Ctx) error
	UpsertInfo(ctx *fiber.Ctx) error
	GetAlimentatie(ctx *fiber.Ctx) error
	UpsertAlimentatie(ctx *fiber.Ctx) error
	ReplaceBijdragen(ctx *fiber.Ctx) error
	ReplaceFinancieleAfspraken(ctx *fiber.Ctx) error
}

type ouderschapsplanController struct {
	service service.IOuderschapsplanService
}

func NewOuderschapsplanController(service service.IOuderschapsplanService) IOuderschapsplanController {
	return &ouderschapsplanController{service: service}
}

func (c *ouderschapsplanController) RegisterRoutes(r fiber.Router) {
	r.Get("/:dossierId/ouderschapsplan", c.GetInfo)
	r.Put("/:dossierId/ouderschapsplan", c.UpsertInfo)

	a := r.Group("/:dossierId/alimentatie")
	a.Get("", c.GetAlimentatie)
	a.Put("", c.UpsertAlimentatie)
	a.Put("/bijdragen-kosten-kinderen", c.ReplaceBijdragen)
	a.Put("/financiele-afspraken", c.ReplaceFinancieleAfspraken)
}

// upserted answers 201 when the row was inserted and 200 when it was updated.
func upserted[T any](ctx *fiber.Ctx, data T, inserted bool) error {
	if inserted {
		return respondCreated(ctx, data)
	}
	return respondOK(ctx, data)
}

func (c *ouderschapsplanController) GetInfo(ctx *fiber.Ctx) error {
	userId, dossierId, err := dossierScope(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetInfo(ctx.UserContext(), userId, dossierId)
	if err != nil {
		return err
	}
	return respondOK(ctx, res)
}

func (c *ouderschapsplanController) UpsertInfo(ctx *fiber.Ctx) error {
	userId, dossierId, err := dossierScope(ctx)
	if err != nil {
		return err
	}

	var req dto.OuderschapsplanRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, inserted, err := c.service.UpsertInfo(ctx.UserContext(), userId, dossierId, &req)
	if err != nil {
		return err
	}
	return upserted(ctx, res, inserted)
}

func (c *ouderschapsplanController) GetAlimentatie(ctx *fiber.Ctx) error {
	userId, dossierId, err := dossierScope(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetAlimentatie(ctx.UserContext(), userId, dossierId)
	if err != nil {
		return err
	}
	return respondOK(ctx, res)
}

func (c *ouderschapsplanController) UpsertAlimentatie(ctx *fiber.Ctx) error {
	userId, dossierId, err := dossierScope(ctx)
	if err != nil {
		return err
	}

	var req dto.AlimentatieRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, inserted, err := c.service.UpsertAlimentatie(ctx.UserContext(), userId, dossierId, &req)
	if err != nil {
		return err
	}
	return upserted(ctx, res, inserted)
}

func (c *ouderschapsplanController) ReplaceBijdragen(ctx *fiber.Ctx) error {
	userId, dossierId, err := dossierScope(ctx)
	if err != nil {
		return err
	}

	var req dto.BijdragenRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.ReplaceBijdragen(ctx.UserContext(), userId, dossierId, &req)
	if err != nil {
		return err
	}
	return respondOK(ctx, res)
}

func (c *ouderschapsplanController) ReplaceFinancieleAfspraken(ctx *fiber.Ctx) error {
	userId, dossierId, err := dossierScope(ctx)
	if err != nil {
		return err
	}

	var req dto.FinancieleAfsprakenRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.ReplaceFinancieleAfspraken(ctx.UserContext(), userId, dossierId, &req)
	if err != nil {
		return err
	}
	return respondOK(ctx, res)
}
