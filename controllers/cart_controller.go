package controllers

import (
	"storefront/services"

	"github.com/gofiber/fiber/v2"
)

// CartController handles HTTP requests for the cart.
type CartController struct {
	cartService services.ICartService
}

// NewCartController creates a new CartController instance.
func NewCartController(svc services.ICartService) *CartController {
	return &CartController{cartService: svc}
}

// GetCart handles GET /cart. Returns the joined lines and the running total
// at current catalog prices.
func (c *CartController) GetCart(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	entries, err := c.cartService.List(userID)
	if err != nil {
		return respondError(ctx, err)
	}
	total, err := c.cartService.Total(userID)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"items": entries,
		"total": total,
	})
}

// AddItem handles POST /cart/items.
func (c *CartController) AddItem(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	var request struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}
	if request.Quantity == 0 {
		request.Quantity = 1
	}

	if err := c.cartService.Add(userID, request.ProductID, request.Quantity); err != nil {
		return respondError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// ClearCart handles DELETE /cart.
func (c *CartController) ClearCart(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	if err := c.cartService.Clear(userID); err != nil {
		return respondError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// RemoveItem handles DELETE /cart/items/:product_id.
func (c *CartController) RemoveItem(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	productID, err := parseIDParam(ctx, "product_id")
	if err != nil {
		return err
	}

	if err := c.cartService.Remove(userID, productID); err != nil {
		return respondError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
