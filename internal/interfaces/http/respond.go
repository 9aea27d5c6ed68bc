package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafestock-api/internal/application/dto"
	"github.com/tu-usuario/cafestock-api/internal/domain"
)

// ok responde el envoltorio de éxito {success: true, data: ...}.
func ok(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(dto.OK(data))
}

// fail responde el envoltorio de error {success: false, message: ...}.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Fail(message))
}

// failErr mapea un error de caso de uso al status y mensaje HTTP. Los errores
// de dominio (permanentes, no reintentar) van como 400/404; cualquier otra
// falla de store (conectividad) como 500.
func failErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return fail(c, fiber.StatusBadRequest, "Insufficient stock available")
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "Invalid or missing required fields")
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "Resource not found")
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusBadRequest, "Duplicate resource")
	default:
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
}
