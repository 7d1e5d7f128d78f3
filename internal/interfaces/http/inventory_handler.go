package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmfernandez/fabrica-api/internal/application/dto"
	"github.com/jmfernandez/fabrica-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP del libro de inventario.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegistrarMovimiento anota un movimiento de stock. Los ajustes exigen que el
// actor tenga permiso ajustar_inventario y quedan auditados.
func (h *InventoryHandler) RegistrarMovimiento(c *fiber.Ctx) error {
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movimiento, err := h.uc.RegistrarMovimiento(GetActor(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movimiento)
}

// Saldos devuelve el saldo actual agrupado por ubicación (por defecto) o por
// tipo de existencia con ?por=tipo_stock.
func (h *InventoryHandler) Saldos(c *fiber.Ctx) error {
	if c.Query("por") == "tipo_stock" {
		return c.JSON(h.uc.SaldosPorTipoStock())
	}
	return c.JSON(h.uc.SaldosPorUbicacion())
}

// Movimientos lista movimientos filtrados por compra_id o produccion_id.
func (h *InventoryHandler) Movimientos(c *fiber.Ctx) error {
	if compraID := c.Query("compra_id"); compraID != "" {
		return c.JSON(h.uc.MovimientosPorCompra(compraID))
	}
	if produccionID := c.Query("produccion_id"); produccionID != "" {
		return c.JSON(h.uc.MovimientosPorProduccion(produccionID))
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "VALIDATION", Message: "se requiere compra_id o produccion_id",
	})
}
