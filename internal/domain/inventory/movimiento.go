package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmfernandez/fabrica-api/internal/domain"
)

// TipoStock clasifica qué clase de existencia mueve un movimiento.
type TipoStock string

const (
	StockMateriaPrima      TipoStock = "MateriaPrima"
	StockModulo            TipoStock = "Modulo"
	StockProductoTerminado TipoStock = "ProductoTerminado"
)

// TipoMovimiento clasifica el sentido del movimiento.
//
// Entrada y Salida llevan cantidad no negativa y el signo lo aporta el tipo.
// Ajuste lleva un delta con signo que se suma tal cual al saldo: un ajuste
// negativo descuenta y uno positivo repone. Las correcciones se expresan
// siempre como nuevos ajustes, nunca editando movimientos previos.
type TipoMovimiento string

const (
	MovimientoEntrada TipoMovimiento = "Entrada"
	MovimientoSalida  TipoMovimiento = "Salida"
	MovimientoAjuste  TipoMovimiento = "Ajuste"
)

// Ubicacion identifica almacén y estantería de un movimiento.
type Ubicacion struct {
	Almacen    string
	Estanteria string
}

// Label devuelve la clave "almacen/estanteria" usada en los informes de saldo.
func (u Ubicacion) Label() string {
	return fmt.Sprintf("%s/%s", u.Almacen, u.Estanteria)
}

// MovimientoStock es un apunte inmutable del libro de inventario. Tras su
// creación solo se permite vincularle una compra o una orden de producción.
type MovimientoStock struct {
	ID           string
	TipoStock    TipoStock
	Tipo         TipoMovimiento
	Cantidad     int
	Ubicacion    Ubicacion
	Fecha        time.Time
	CompraID     string
	ProduccionID string
	Nota         string
}

// NuevoMovimiento construye un movimiento validado con id y fecha asignados.
// Entrada y Salida exigen cantidad no negativa; Ajuste admite cualquier signo.
func NuevoMovimiento(tipoStock TipoStock, tipo TipoMovimiento, cantidad int, ubicacion Ubicacion) (*MovimientoStock, error) {
	switch tipo {
	case MovimientoEntrada, MovimientoSalida:
		if cantidad < 0 {
			return nil, fmt.Errorf("cantidad negativa en %s: %w", tipo, domain.ErrInvalidInput)
		}
	case MovimientoAjuste:
		// delta con signo permitido
	default:
		return nil, fmt.Errorf("tipo de movimiento %q: %w", tipo, domain.ErrInvalidInput)
	}

	return &MovimientoStock{
		ID:        uuid.New().String(),
		TipoStock: tipoStock,
		Tipo:      tipo,
		Cantidad:  cantidad,
		Ubicacion: ubicacion,
		Fecha:     time.Now().UTC(),
	}, nil
}

// VincularCompra asocia el movimiento a una compra. Única mutación permitida
// junto con VincularProduccion.
func (m *MovimientoStock) VincularCompra(compraID string) {
	m.CompraID = compraID
}

// VincularProduccion asocia el movimiento a una orden de producción.
func (m *MovimientoStock) VincularProduccion(produccionID string) {
	m.ProduccionID = produccionID
}

// CantidadFirmada devuelve la contribución del movimiento al saldo:
// Entrada suma, Salida resta y Ajuste aporta su delta con signo.
func (m *MovimientoStock) CantidadFirmada() int {
	if m.Tipo == MovimientoSalida {
		return -m.Cantidad
	}
	return m.Cantidad
}
