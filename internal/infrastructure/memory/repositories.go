// Package memory implementa los repositorios en memoria de proceso. El núcleo
// asume un solo escritor por agregado; el mutex protege únicamente el mapa de
// índice, no serializa mutaciones dentro de un mismo agregado.
package memory

import (
	"fmt"
	"sync"

	"github.com/jmfernandez/fabrica-api/internal/domain"
	"github.com/jmfernandez/fabrica-api/internal/domain/escandallo"
	"github.com/jmfernandez/fabrica-api/internal/domain/produccion"
	"github.com/jmfernandez/fabrica-api/internal/domain/ventas"
)

// EscandalloRepository guarda escandallos indexados por módulo.
type EscandalloRepository struct {
	mu    sync.RWMutex
	items map[string]*escandallo.Escandallo
}

// NewEscandalloRepository crea el repositorio vacío.
func NewEscandalloRepository() *EscandalloRepository {
	return &EscandalloRepository{items: make(map[string]*escandallo.Escandallo)}
}

// Save guarda (o reemplaza) el escandallo de un módulo.
func (r *EscandalloRepository) Save(e *escandallo.Escandallo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[e.ModuloID] = e
	return nil
}

// GetByModuloID devuelve el escandallo de un módulo.
func (r *EscandalloRepository) GetByModuloID(moduloID string) (*escandallo.Escandallo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.items[moduloID]
	if !ok {
		return nil, fmt.Errorf("escandallo de módulo %q: %w", moduloID, domain.ErrNotFound)
	}
	return e, nil
}

// OrdenProduccionRepository guarda órdenes de producción por id.
type OrdenProduccionRepository struct {
	mu    sync.RWMutex
	items map[string]*produccion.OrdenProduccion
	orden []string // ids en orden de inserción para listados estables
}

// NewOrdenProduccionRepository crea el repositorio vacío.
func NewOrdenProduccionRepository() *OrdenProduccionRepository {
	return &OrdenProduccionRepository{items: make(map[string]*produccion.OrdenProduccion)}
}

// Save guarda una orden de producción.
func (r *OrdenProduccionRepository) Save(o *produccion.OrdenProduccion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[o.ID]; !ok {
		r.orden = append(r.orden, o.ID)
	}
	r.items[o.ID] = o
	return nil
}

// GetByID devuelve una orden por id.
func (r *OrdenProduccionRepository) GetByID(id string) (*produccion.OrdenProduccion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("orden %q: %w", id, domain.ErrNotFound)
	}
	return o, nil
}

// List devuelve las órdenes en orden de creación.
func (r *OrdenProduccionRepository) List() ([]*produccion.OrdenProduccion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*produccion.OrdenProduccion, 0, len(r.orden))
	for _, id := range r.orden {
		out = append(out, r.items[id])
	}
	return out, nil
}

// PedidoRepository guarda pedidos de venta por id.
type PedidoRepository struct {
	mu    sync.RWMutex
	items map[string]*produccion.Pedido
}

// NewPedidoRepository crea el repositorio vacío.
func NewPedidoRepository() *PedidoRepository {
	return &PedidoRepository{items: make(map[string]*produccion.Pedido)}
}

// Save guarda un pedido.
func (r *PedidoRepository) Save(p *produccion.Pedido) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = p
	return nil
}

// GetByID devuelve un pedido por id.
func (r *PedidoRepository) GetByID(id string) (*produccion.Pedido, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("pedido %q: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

// OrdenVentaRepository guarda órdenes de venta por número.
type OrdenVentaRepository struct {
	mu    sync.RWMutex
	items map[string]*ventas.OrdenVenta
}

// NewOrdenVentaRepository crea el repositorio vacío.
func NewOrdenVentaRepository() *OrdenVentaRepository {
	return &OrdenVentaRepository{items: make(map[string]*ventas.OrdenVenta)}
}

// Save guarda una orden de venta.
func (r *OrdenVentaRepository) Save(o *ventas.OrdenVenta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[o.Numero] = o
	return nil
}

// GetByNumero devuelve una orden de venta por número.
func (r *OrdenVentaRepository) GetByNumero(numero string) (*ventas.OrdenVenta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.items[numero]
	if !ok {
		return nil, fmt.Errorf("orden de venta %q: %w", numero, domain.ErrNotFound)
	}
	return o, nil
}
