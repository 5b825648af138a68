package controller

import (
	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/pkg/serverutils"
	"ouderschapsplan-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDossierController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type dossierController struct {
	service service.IDossierService
}

func NewDossierController(service service.IDossierService) IDossierController {
	return &dossierController{service: service}
}

// RegisterRoutes expects r to be the authenticated /dossiers group.
func (c *dossierController) RegisterRoutes(r fiber.Router) {
	r.Get("", c.List)
	r.Post("", c.Create)
	r.Get("/:dossierId", c.Show)
	r.Put("/:dossierId", c.Update)
	r.Delete("/:dossierId", c.Delete)
}

func (c *dossierController) List(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return respondOK(ctx, res)
}

func (c *dossierController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateDossierRequest
	if len(ctx.Body()) > 0 {
		if err := serverutils.ParseBody(ctx, &req); err != nil {
			return err
		}
	}

	res, err := c.service.Create(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return respondCreated(ctx, res)
}

func (c *dossierController) Show(ctx *fiber.Ctx) error {
	userId, dossierId, err := dossierScope(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), userId, dossierId)
	if err != nil {
		return err
	}
	return respondOK(ctx, res)
}

func (c *dossierController) Update(ctx *fiber.Ctx) error {
	userId, dossierId, err := dossierScope(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateDossierRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), userId, dossierId, &req)
	if err != nil {
		return err
	}
	return respondOK(ctx, res)
}

func (c *dossierController) Delete(ctx *fiber.Ctx) error {
	userId, dossierId, err := dossierScope(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), userId, dossierId); err != nil {
		return err
	}
	return respondMessage(ctx, "Dossier deleted successfully")
}
