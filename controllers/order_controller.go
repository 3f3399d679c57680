package controllers

import (
	"storefront/models"
	"storefront/services"

	"github.com/gofiber/fiber/v2"
)

// OrderController handles HTTP requests related to orders: checkout,
// listings, payment evidence, and operator status transitions.
type OrderController struct {
	orderService    services.IOrderService
	paymentService  services.IPaymentService
	statusService   services.IStatusService
	settingsService services.ISettingsService
}

// NewOrderController creates a new OrderController instance.
func NewOrderController(orderSvc services.IOrderService, paymentSvc services.IPaymentService, statusSvc services.IStatusService, settingsSvc services.ISettingsService) *OrderController {
	return &OrderController{
		orderService:    orderSvc,
		paymentService:  paymentSvc,
		statusService:   statusSvc,
		settingsService: settingsSvc,
	}
}

// Checkout handles POST /orders. The response carries the payment
// instructions so the transport can show them right after the order lands.
func (c *OrderController) Checkout(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	var request struct {
		CustomerName string `json:"customer_name"`
		Phone        string `json:"phone"`
		Address      string `json:"address"`
		Note         string `json:"note"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	order, err := c.orderService.Checkout(userID, request.CustomerName, request.Phone, request.Address, request.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	methods, err := c.settingsService.Get(services.SettingPaymentMethods, services.DefaultPaymentMethods)
	if err != nil {
		return respondError(ctx, err)
	}
	instructions, err := c.settingsService.Get(services.SettingPaymentText, services.DefaultPaymentText)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order":           order,
		"payment_methods": methods,
		"payment_text":    instructions,
	})
}

// MyOrders handles GET /orders.
func (c *OrderController) MyOrders(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	orders, err := c.orderService.MyOrders(userID)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(orders)
}

// GetOrder handles GET /orders/:id.
func (c *OrderController) GetOrder(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}
	order, err := c.orderService.GetOrder(orderID, userID)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(order)
}

// AllOrders handles GET /admin/orders.
func (c *OrderController) AllOrders(ctx *fiber.Ctx) error {
	actorID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	orders, err := c.orderService.AllOrders(actorID)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(orders)
}

// SubmitPayment handles POST /orders/:id/payment.
func (c *OrderController) SubmitPayment(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var request struct {
		Method    string `json:"method"`
		Reference string `json:"reference"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}
	if request.Method == "" || request.Reference == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "method and reference are required"})
	}

	order, err := c.paymentService.SubmitPayment(orderID, userID, request.Method, request.Reference)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(order)
}

// SubmitProof handles POST /orders/:id/proof.
func (c *OrderController) SubmitProof(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var request struct {
		ProofReference string `json:"proof_reference"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}
	if request.ProofReference == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "proof_reference is required"})
	}

	order, err := c.paymentService.SubmitProof(orderID, userID, request.ProofReference)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(order)
}

// SetStatus handles PUT /admin/orders/:id/status. Unknown status strings
// are rejected here, before the core sees them.
func (c *OrderController) SetStatus(ctx *fiber.Ctx) error {
	actorID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var request struct {
		Status string `json:"status"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	next, err := models.ParseOrderStatus(request.Status)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	order, err := c.statusService.SetStatus(orderID, next, actorID)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(order)
}
