package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"prompthub/internal/repositories"
	"prompthub/internal/schemas"
	"prompthub/internal/services"
)

// currentUserID reads the authenticated user's ID stored by the JWT
// middleware. JWT numeric claims decode as float64.
func currentUserID(c *fiber.Ctx) uint {
	switch v := c.Locals("user_id").(type) {
	case float64:
		return uint(v)
	case uint:
		return v
	case int:
		return uint(v)
	}
	return 0
}

// errorResponse maps the error taxonomy onto HTTP statuses: validation 400,
// permission 403, not found 404, conflict 409, dangling reference 422.
func errorResponse(c *fiber.Ctx, err error, message string) error {
	var verrs schemas.ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  verrs,
		})
	}

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrPermissionDenied):
		status = fiber.StatusForbidden
	case errors.Is(err, repositories.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, repositories.ErrConflict):
		status = fiber.StatusConflict
	case errors.Is(err, repositories.ErrReference):
		status = fiber.StatusUnprocessableEntity
	}

	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
