package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmfernandez/fabrica-api/internal/application/dto"
	"github.com/jmfernandez/fabrica-api/internal/application/planning"
)

// MRPHandler maneja las corridas de planificación de materiales.
type MRPHandler struct {
	uc *planning.UseCase
}

// NewMRPHandler construye el handler.
func NewMRPHandler(uc *planning.UseCase) *MRPHandler {
	return &MRPHandler{uc: uc}
}

// Planificar ejecuta una corrida MRP: demanda + stock + BOM opcional de un
// nivel, y devuelve los requerimientos netos por ítem.
func (h *MRPHandler) Planificar(c *fiber.Ctx) error {
	var in dto.PlanificarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Demanda) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "demanda vacía"})
	}
	return c.JSON(h.uc.Planificar(in))
}
