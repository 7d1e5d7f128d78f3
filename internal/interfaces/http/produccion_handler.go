package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmfernandez/fabrica-api/internal/application/dto"
	"github.com/jmfernandez/fabrica-api/internal/application/produccion"
)

// ProduccionHandler maneja pedidos y órdenes de producción.
type ProduccionHandler struct {
	uc *produccion.UseCase
}

// NewProduccionHandler construye el handler.
func NewProduccionHandler(uc *produccion.UseCase) *ProduccionHandler {
	return &ProduccionHandler{uc: uc}
}

// CrearPedido registra un pedido de venta.
func (h *ProduccionHandler) CrearPedido(c *fiber.Ctx) error {
	var in dto.CrearPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.CrearPedido(in); err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "pedido registrado"})
}

// CrearOrden crea una orden de producción sobre un pedido. Acción sensible:
// requiere permiso crear_orden y queda auditada.
func (h *ProduccionHandler) CrearOrden(c *fiber.Ctx) error {
	var in dto.CrearOrdenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearOrden(GetActor(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Obtener devuelve el estado de las estaciones de una orden.
func (h *ProduccionHandler) Obtener(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// RegistrarInicio arranca una estación de la orden.
func (h *ProduccionHandler) RegistrarInicio(c *fiber.Ctx) error {
	return h.transicion(c, true)
}

// RegistrarFin completa una estación de la orden.
func (h *ProduccionHandler) RegistrarFin(c *fiber.Ctx) error {
	return h.transicion(c, false)
}

func (h *ProduccionHandler) transicion(c *fiber.Ctx, inicio bool) error {
	var in dto.MomentoRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	var (
		out *dto.OrdenResponse
		err error
	)
	if inicio {
		out, err = h.uc.RegistrarInicio(c.Params("id"), c.Params("estacion"), in.Momento)
	} else {
		out, err = h.uc.RegistrarFin(c.Params("id"), c.Params("estacion"), in.Momento)
	}
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Tiempos devuelve el informe de tiempos reales por estación.
func (h *ProduccionHandler) Tiempos(c *fiber.Ctx) error {
	out, err := h.uc.Tiempos(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
