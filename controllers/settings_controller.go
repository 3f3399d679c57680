package controllers

import (
	"storefront/services"

	"github.com/gofiber/fiber/v2"
)

// SettingsController handles HTTP requests for payment-instruction settings.
type SettingsController struct {
	settingsService services.ISettingsService
}

// NewSettingsController creates a new SettingsController instance.
func NewSettingsController(svc services.ISettingsService) *SettingsController {
	return &SettingsController{settingsService: svc}
}

// GetPaymentInfo handles GET /payment-info.
func (c *SettingsController) GetPaymentInfo(ctx *fiber.Ctx) error {
	methods, err := c.settingsService.Get(services.SettingPaymentMethods, services.DefaultPaymentMethods)
	if err != nil {
		return respondError(ctx, err)
	}
	text, err := c.settingsService.Get(services.SettingPaymentText, services.DefaultPaymentText)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"payment_methods": methods,
		"payment_text":    text,
	})
}

// SetPaymentInfo handles PUT /admin/payment-info.
func (c *SettingsController) SetPaymentInfo(ctx *fiber.Ctx) error {
	actorID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	var request struct {
		PaymentMethods string `json:"payment_methods"`
		PaymentText    string `json:"payment_text"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	if request.PaymentMethods != "" {
		if err := c.settingsService.Set(actorID, services.SettingPaymentMethods, request.PaymentMethods); err != nil {
			return respondError(ctx, err)
		}
	}
	if request.PaymentText != "" {
		if err := c.settingsService.Set(actorID, services.SettingPaymentText, request.PaymentText); err != nil {
			return respondError(ctx, err)
		}
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
