package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/skladpro/internal/application/dto"
	"github.com/jhoicas/skladpro/internal/domain"
)

// Códigos de error de la API JSON.
const (
	CodeValidation = "VALIDATION"
	CodeUnknownTab = "UNKNOWN_TAB"
	CodeNotFound   = "NOT_FOUND"
	CodeForbidden  = "FORBIDDEN"
	CodeNoSession  = "NO_SESSION"
	CodeInternal   = "INTERNAL"
)

// errorStatus traduce un error de dominio a status HTTP y código.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNoSession):
		return fiber.StatusUnauthorized, CodeNoSession
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, CodeForbidden
	case errors.Is(err, domain.ErrUnknownTab):
		return fiber.StatusBadRequest, CodeUnknownTab
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUnknownReport):
		return fiber.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUnknownRole),
		errors.Is(err, domain.ErrUnknownStatus):
		return fiber.StatusBadRequest, CodeValidation
	}
	return fiber.StatusInternalServerError, CodeInternal
}

// writeError responde con dto.ErrorResponse. Los errores internos no exponen el detalle.
func writeError(c *fiber.Ctx, err error) error {
	status, code := errorStatus(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "error interno"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
