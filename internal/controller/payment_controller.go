package controller

import (
	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/pkg/logger"
	"ouderschapsplan-api/internal/pkg/serverutils"
	"ouderschapsplan-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	Checkout(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
}

type paymentController struct {
	service service.IPaymentService
	auth    fiber.Handler
	logger  logger.ILogger
}

func NewPaymentController(service service.IPaymentService, auth fiber.Handler, log logger.ILogger) IPaymentController {
	return &paymentController{service: service, auth: auth, logger: log}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/abonnement")
	h.Post("/webhook", c.Webhook)

	// Protected Routes
	h.Post("/checkout", c.auth, c.Checkout)
	h.Get("/status", c.auth, c.Status)
	h.Post("/cancel", c.auth, c.Cancel)
}

func (c *paymentController) Checkout(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Checkout(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return respondCreated(ctx, res)
}

func (c *paymentController) Status(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Status(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return respondOK(ctx, res)
}

func (c *paymentController) Cancel(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Cancel(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return respondOK(ctx, res)
}

// Webhook always answers 200 so Mollie does not retry; failures are logged.
func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	var req dto.MollieWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		c.logger.Warn("PAYMENT", "Unreadable webhook body", map[string]interface{}{"error": err.Error()})
		return ctx.SendStatus(fiber.StatusOK)
	}

	if err := c.service.HandleWebhook(ctx.UserContext(), req.Id); err != nil {
		c.logger.Error("PAYMENT", "Webhook processing failed", map[string]interface{}{
			"payment_id": req.Id,
			"error":      err.Error(),
		})
	}
	return ctx.SendStatus(fiber.StatusOK)
}
