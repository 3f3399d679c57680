package controllers

import (
	"storefront/services"

	"github.com/gofiber/fiber/v2"
)

// ProductController handles HTTP requests for the catalog.
type ProductController struct {
	catalogService services.ICatalogService
}

// NewProductController creates a new ProductController instance.
func NewProductController(svc services.ICatalogService) *ProductController {
	return &ProductController{catalogService: svc}
}

// ListProducts handles GET /products.
func (c *ProductController) ListProducts(ctx *fiber.Ctx) error {
	products, err := c.catalogService.ActiveProducts()
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(products)
}

// GetProduct handles GET /products/:id.
func (c *ProductController) GetProduct(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}
	product, err := c.catalogService.GetProduct(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(product)
}

// CreateProduct handles POST /admin/products.
func (c *ProductController) CreateProduct(ctx *fiber.Ctx) error {
	actorID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	var request struct {
		Name           string `json:"name"`
		Price          int64  `json:"price"`
		Description    string `json:"description"`
		PhotoReference string `json:"photo_reference"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	product, err := c.catalogService.AddProduct(actorID, request.Name, request.Price, request.Description, request.PhotoReference)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct handles PUT /admin/products/:id.
func (c *ProductController) UpdateProduct(ctx *fiber.Ctx) error {
	actorID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var request struct {
		Name           *string `json:"name"`
		Price          *int64  `json:"price"`
		Description    *string `json:"description"`
		PhotoReference *string `json:"photo_reference"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	product, err := c.catalogService.UpdateProduct(actorID, id, services.ProductUpdate{
		Name:           request.Name,
		Price:          request.Price,
		Description:    request.Description,
		PhotoReference: request.PhotoReference,
	})
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(product)
}

// DeactivateProduct handles DELETE /admin/products/:id. Soft delete only.
func (c *ProductController) DeactivateProduct(ctx *fiber.Ctx) error {
	actorID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.catalogService.DeactivateProduct(actorID, id); err != nil {
		return respondError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
