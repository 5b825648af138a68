package controller

import (
	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/pkg/serverutils"
	"ouderschapsplan-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILookupController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
}

type lookupController struct {
	service service.ILookupService
}

func NewLookupController(service service.ILookupService) ILookupController {
	return &lookupController{service: service}
}

// RegisterRoutes mounts the public lookup endpoints.
func (c *lookupController) RegisterRoutes(r fiber.Router) {
	r.Get("/lookups/:kind", c.Get)
}

func (c *lookupController) Get(ctx *fiber.Ctx) error {
	var query dto.LookupQuery
	if err := serverutils.ParseQuery(ctx, &query); err != nil {
		return err
	}

	res, err := c.service.Get(ctx.UserContext(), ctx.Params("kind"), query)
	if err != nil {
		return err
	}
	return respondOK(ctx, res)
}
