package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrMaterialNoEncontrado = errors.New("material no encontrado")
	ErrEstacionDesconocida  = errors.New("estación desconocida")
	ErrTransicionInvalida   = errors.New("transición de estado inválida")
	ErrMonedaDistinta       = errors.New("no se pueden operar importes con monedas distintas")
	ErrRolDesconocido       = errors.New("rol desconocido")
)
