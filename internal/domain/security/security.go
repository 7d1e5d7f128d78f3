// Package security implementa la puerta de autorización por rol/módulo/acción
// y el registro de auditoría de acciones sensibles. La autenticación de
// usuario y contraseña pertenece a la capa externa; aquí solo se decide si un
// actor ya identificado puede ejecutar una acción.
package security

import (
	"fmt"

	"github.com/jmfernandez/fabrica-api/internal/domain"
)

// Roles base de la fábrica.
var RolesBase = []string{"administracion", "compras", "produccion", "ventas", "almacen"}

// Acciones que exigen apunte de auditoría cuando se autorizan.
var AccionesSensibles = map[string]bool{
	"crear_orden":         true,
	"aprobar_compra":      true,
	"cancelar_produccion": true,
	"ajustar_inventario":  true,
	"eliminar_factura":    true,
}

// PermisosRol guarda, por rol, las acciones permitidas en cada módulo.
// Se configura al arrancar y después se consulta en modo lectura.
type PermisosRol struct {
	roles map[string]map[string]map[string]bool
}

// NuevosPermisosRol crea la tabla con los roles indicados (o los base).
func NuevosPermisosRol(roles ...string) *PermisosRol {
	if len(roles) == 0 {
		roles = RolesBase
	}
	p := &PermisosRol{roles: make(map[string]map[string]map[string]bool, len(roles))}
	for _, rol := range roles {
		p.roles[rol] = make(map[string]map[string]bool)
	}
	return p
}

// ConfigurarModulo reemplaza las acciones de un rol sobre un módulo.
func (p *PermisosRol) ConfigurarModulo(rol, modulo string, acciones ...string) error {
	mods, err := p.modulosDe(rol)
	if err != nil {
		return err
	}
	set := make(map[string]bool, len(acciones))
	for _, a := range acciones {
		set[a] = true
	}
	mods[modulo] = set
	return nil
}

// ConcederAccion añade una acción a las permitidas de un rol sobre un módulo.
func (p *PermisosRol) ConcederAccion(rol, modulo, accion string) error {
	mods, err := p.modulosDe(rol)
	if err != nil {
		return err
	}
	if mods[modulo] == nil {
		mods[modulo] = make(map[string]bool)
	}
	mods[modulo][accion] = true
	return nil
}

// RevocarAccion retira una acción de un rol sobre un módulo.
func (p *PermisosRol) RevocarAccion(rol, modulo, accion string) error {
	mods, err := p.modulosDe(rol)
	if err != nil {
		return err
	}
	delete(mods[modulo], accion)
	return nil
}

// AccionesPermitidas devuelve las acciones de un rol sobre un módulo.
func (p *PermisosRol) AccionesPermitidas(rol, modulo string) (map[string]bool, error) {
	mods, err := p.modulosDe(rol)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(mods[modulo]))
	for accion := range mods[modulo] {
		out[accion] = true
	}
	return out, nil
}

func (p *PermisosRol) modulosDe(rol string) (map[string]map[string]bool, error) {
	mods, ok := p.roles[rol]
	if !ok {
		return nil, fmt.Errorf("rol %q: %w", rol, domain.ErrRolDesconocido)
	}
	return mods, nil
}

// Actor es la identidad ya autenticada que ejecuta una acción.
type Actor struct {
	Usuario string
	Rol     string
}

// EventoAuditoria es un apunte inmutable del registro de auditoría.
type EventoAuditoria struct {
	Actor    string
	Accion   string
	Modulo   string
	Metadata map[string]string
}

// RegistroAuditoria acumula eventos de acciones sensibles en orden de llegada;
// no existe borrado ni edición.
type RegistroAuditoria struct {
	eventos []EventoAuditoria
}

// NuevoRegistroAuditoria crea un registro vacío.
func NuevoRegistroAuditoria() *RegistroAuditoria {
	return &RegistroAuditoria{}
}

// RegistrarAccionSensible añade un evento al registro.
func (r *RegistroAuditoria) RegistrarAccionSensible(actor Actor, modulo, accion string, metadata map[string]string) EventoAuditoria {
	if metadata == nil {
		metadata = map[string]string{}
	}
	evento := EventoAuditoria{Actor: actor.Usuario, Accion: accion, Modulo: modulo, Metadata: metadata}
	r.eventos = append(r.eventos, evento)
	return evento
}

// Eventos devuelve los apuntes en orden de inserción.
func (r *RegistroAuditoria) Eventos() []EventoAuditoria {
	out := make([]EventoAuditoria, len(r.eventos))
	copy(out, r.eventos)
	return out
}

// Gate combina permisos y auditoría: es la puerta que la capa de aplicación
// consulta antes de cada acción sensible.
type Gate struct {
	permisos  *PermisosRol
	auditoria *RegistroAuditoria
}

// NuevoGate construye la puerta sobre una tabla de permisos y un registro de auditoría.
func NuevoGate(permisos *PermisosRol, auditoria *RegistroAuditoria) *Gate {
	return &Gate{permisos: permisos, auditoria: auditoria}
}

// Autorizar decide si el actor puede ejecutar la acción sobre el módulo y, si
// la acción es sensible y queda permitida, deja el apunte de auditoría.
func (g *Gate) Autorizar(actor Actor, modulo, accion string, metadata map[string]string) (bool, error) {
	permitidas, err := g.permisos.AccionesPermitidas(actor.Rol, modulo)
	if err != nil {
		return false, err
	}
	if !permitidas[accion] {
		return false, nil
	}
	if AccionesSensibles[accion] {
		g.auditoria.RegistrarAccionSensible(actor, modulo, accion, metadata)
	}
	return true, nil
}
