package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmfernandez/fabrica-api/internal/domain/security"
)

// AuditHandler expone el registro de auditoría de acciones sensibles.
type AuditHandler struct {
	auditoria *security.RegistroAuditoria
}

// NewAuditHandler construye el handler.
func NewAuditHandler(auditoria *security.RegistroAuditoria) *AuditHandler {
	return &AuditHandler{auditoria: auditoria}
}

// Eventos lista los apuntes de auditoría en orden de llegada.
func (h *AuditHandler) Eventos(c *fiber.Ctx) error {
	return c.JSON(h.auditoria.Eventos())
}
