package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmfernandez/fabrica-api/internal/application/costing"
	"github.com/jmfernandez/fabrica-api/internal/application/dto"
)

// EscandalloHandler maneja el desglose de costes de módulos.
type EscandalloHandler struct {
	uc *costing.UseCase
}

// NewEscandalloHandler construye el handler.
func NewEscandalloHandler(uc *costing.UseCase) *EscandalloHandler {
	return &EscandalloHandler{uc: uc}
}

// Crear da de alta el escandallo de un módulo con sus reglas y líneas.
func (h *EscandalloHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearEscandalloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Obtener devuelve el desglose actual de costes y cantidades.
func (h *EscandalloHandler) Obtener(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Params("moduloID"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ActualizarMedidas fusiona medidas y recalcula el escandallo completo.
func (h *EscandalloHandler) ActualizarMedidas(c *fiber.Ctx) error {
	var in dto.ActualizarMedidasRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ActualizarMedidas(c.Params("moduloID"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ActualizarMaterial cambia coste o metadatos de un material y recalcula.
func (h *EscandalloHandler) ActualizarMaterial(c *fiber.Ctx) error {
	var in dto.ActualizarMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ActualizarMaterial(c.Params("moduloID"), c.Params("nombre"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Historial devuelve los snapshots de recálculo del módulo.
func (h *EscandalloHandler) Historial(c *fiber.Ctx) error {
	out, err := h.uc.Historial(c.Params("moduloID"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
