// Package repository declara los contratos de persistencia de los agregados.
// La estrategia de persistencia concreta es responsabilidad de la capa de
// infraestructura; los casos de uso solo conocen estas interfaces.
package repository

import (
	"github.com/jmfernandez/fabrica-api/internal/domain/escandallo"
	"github.com/jmfernandez/fabrica-api/internal/domain/produccion"
	"github.com/jmfernandez/fabrica-api/internal/domain/ventas"
)

// EscandalloRepository guarda escandallos por id de módulo.
type EscandalloRepository interface {
	Save(e *escandallo.Escandallo) error
	GetByModuloID(moduloID string) (*escandallo.Escandallo, error)
}

// OrdenProduccionRepository guarda órdenes de producción por id.
type OrdenProduccionRepository interface {
	Save(o *produccion.OrdenProduccion) error
	GetByID(id string) (*produccion.OrdenProduccion, error)
	List() ([]*produccion.OrdenProduccion, error)
}

// PedidoRepository guarda pedidos de venta por id.
type PedidoRepository interface {
	Save(p *produccion.Pedido) error
	GetByID(id string) (*produccion.Pedido, error)
}

// OrdenVentaRepository guarda órdenes de venta por número.
type OrdenVentaRepository interface {
	Save(o *ventas.OrdenVenta) error
	GetByNumero(numero string) (*ventas.OrdenVenta, error)
}
