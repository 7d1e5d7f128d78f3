package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmfernandez/fabrica-api/internal/application/dto"
	"github.com/jmfernandez/fabrica-api/internal/application/ventas"
)

// VentasHandler maneja las órdenes de venta.
type VentasHandler struct {
	uc *ventas.UseCase
}

// NewVentasHandler construye el handler.
func NewVentasHandler(uc *ventas.UseCase) *VentasHandler {
	return &VentasHandler{uc: uc}
}

// Crear da de alta una orden de venta con sus líneas.
func (h *VentasHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearOrdenVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Obtener devuelve el resumen de una orden de venta.
func (h *VentasHandler) Obtener(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Params("numero"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ActualizarEstado cambia el estado comercial de la orden.
func (h *VentasHandler) ActualizarEstado(c *fiber.Ctx) error {
	var in dto.ActualizarEstadoVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ActualizarEstado(c.Params("numero"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
