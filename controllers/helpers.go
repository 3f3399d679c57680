package controllers

import (
	"errors"
	"strconv"

	"storefront/services"

	"github.com/gofiber/fiber/v2"
)

// currentUserID reads the chat user id the transport layer resolved for
// this request. Requests without it are rejected before touching the core.
func currentUserID(ctx *fiber.Ctx) (int64, error) {
	raw := ctx.Get("X-User-ID")
	if raw == "" {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "missing X-User-ID header")
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid X-User-ID header")
	}
	return userID, nil
}

// respondError maps domain error kinds onto HTTP statuses. Everything the
// core signals is a recoverable condition; only unknown failures become 500.
func respondError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrProductUnavailable), errors.Is(err, services.ErrOrderNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrInvalidCheckoutDetails):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrNotOrderOwner), errors.Is(err, services.ErrUnauthorized):
		status = fiber.StatusForbidden
	case errors.Is(err, services.ErrOrderTerminal), errors.Is(err, services.ErrTransitionNotAllowed):
		status = fiber.StatusConflict
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// parseIDParam reads a positive integer route parameter.
func parseIDParam(ctx *fiber.Ctx, name string) (uint, error) {
	raw := ctx.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
