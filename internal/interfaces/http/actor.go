package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jmfernandez/fabrica-api/internal/application/dto"
	"github.com/jmfernandez/fabrica-api/internal/domain"
	"github.com/jmfernandez/fabrica-api/internal/domain/security"
)

// Cabeceras con la identidad ya autenticada por la capa externa de seguridad.
// Este servicio no autentica: asume que un gateway previo validó credenciales
// e inyectó usuario y rol.
const (
	HeaderUsuario = "X-Usuario"
	HeaderRol     = "X-Rol"
)

// GetActor extrae el actor de las cabeceras de identidad.
func GetActor(c *fiber.Ctx) security.Actor {
	return security.Actor{
		Usuario: c.Get(HeaderUsuario),
		Rol:     c.Get(HeaderRol),
	}
}

// responderError mapea errores de dominio a códigos HTTP uniformes.
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrMaterialNoEncontrado),
		errors.Is(err, domain.ErrEstacionDesconocida):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrTransicionInvalida):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
	case errors.Is(err, domain.ErrMonedaDistinta):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CURRENCY_MISMATCH", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrRolDesconocido):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
