// Package ventas modela clientes y órdenes de venta con importes en divisa
// única por orden. Es el módulo de costes/pedidos colindante al núcleo de
// planificación; no implementa impuestos ni conversión de divisas.
package ventas

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmfernandez/fabrica-api/internal/domain"
)

// Contacto de un cliente.
type Contacto struct {
	Nombre   string
	Email    string
	Telefono string
	Cargo    string
}

// Direccion postal de facturación o envío.
type Direccion struct {
	Calle         string
	Ciudad        string
	Provincia     string
	CodigoPostal  string
	Pais          string
	Instrucciones string
}

// CondicionesComerciales pactadas con un cliente.
type CondicionesComerciales struct {
	MetodoPago          string
	PlazoPagoDias       int
	DescuentoPorcentaje decimal.Decimal
	Observaciones       string
}

// Cliente de la fábrica.
type Cliente struct {
	ID             string
	Nombre         string
	Contactos      []Contacto
	Direcciones    []Direccion
	Condiciones    *CondicionesComerciales
	DireccionEnvio *Direccion
}

// LineaOrdenVenta es una línea de venta con precio unitario en la divisa de la orden.
type LineaOrdenVenta struct {
	SKU            string
	Descripcion    string
	Cantidad       int
	PrecioUnitario Money
}

// Total devuelve precio unitario × cantidad.
func (l LineaOrdenVenta) Total() Money {
	return l.PrecioUnitario.Multiplicar(decimal.NewFromInt(int64(l.Cantidad)))
}

// EstadoOrdenVenta es el estado comercial de la orden.
type EstadoOrdenVenta string

const (
	OrdenCreada       EstadoOrdenVenta = "creado"
	OrdenEnProduccion EstadoOrdenVenta = "en_produccion"
	OrdenEnviada      EstadoOrdenVenta = "enviado"
	OrdenEntregada    EstadoOrdenVenta = "entregado"
	OrdenCancelada    EstadoOrdenVenta = "cancelado"
)

// OrdenVenta agrupa líneas de venta de un cliente en una única divisa.
type OrdenVenta struct {
	Numero  string
	Cliente *Cliente
	Moneda  Moneda
	Fecha   time.Time
	Estado  EstadoOrdenVenta
	Lineas  []LineaOrdenVenta
}

// NuevaOrdenVenta crea la orden en estado creado con fecha actual.
func NuevaOrdenVenta(numero string, cliente *Cliente, moneda Moneda) *OrdenVenta {
	return &OrdenVenta{
		Numero:  numero,
		Cliente: cliente,
		Moneda:  moneda,
		Fecha:   time.Now().UTC(),
		Estado:  OrdenCreada,
	}
}

// AgregarLinea añade una línea; la divisa de la línea debe coincidir con la de la orden.
func (o *OrdenVenta) AgregarLinea(linea LineaOrdenVenta) error {
	if linea.PrecioUnitario.Moneda != o.Moneda {
		return fmt.Errorf("línea %s en %s, orden en %s: %w",
			linea.SKU, linea.PrecioUnitario.Moneda.Codigo, o.Moneda.Codigo, domain.ErrMonedaDistinta)
	}
	o.Lineas = append(o.Lineas, linea)
	return nil
}

// Total suma los totales de línea en la divisa de la orden.
func (o *OrdenVenta) Total() Money {
	total := Money{Importe: decimal.Zero, Moneda: o.Moneda}
	for _, linea := range o.Lineas {
		// mismo Moneda garantizado por AgregarLinea
		total.Importe = total.Importe.Add(linea.Total().Importe)
	}
	return total
}

// ActualizarEstado cambia el estado comercial de la orden.
func (o *OrdenVenta) ActualizarEstado(estado EstadoOrdenVenta) {
	o.Estado = estado
}
