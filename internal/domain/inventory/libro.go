package inventory

// LibroInventario es un registro append-only de movimientos de stock.
// Los saldos nunca se cachean: se recomputan recorriendo el historial
// completo, de modo que ningún saldo puede divergir de los apuntes.
type LibroInventario struct {
	movimientos []*MovimientoStock
}

// NuevoLibro crea un libro vacío.
func NuevoLibro() *LibroInventario {
	return &LibroInventario{}
}

// RegistrarMovimiento anota un movimiento al final del libro. No existe
// operación de borrado ni edición: las correcciones son nuevos ajustes.
func (l *LibroInventario) RegistrarMovimiento(m *MovimientoStock) {
	l.movimientos = append(l.movimientos, m)
}

// SaldoPorUbicacion recomputa el saldo de cada ubicación ("almacen/estanteria")
// sumando las contribuciones firmadas de todo el historial.
func (l *LibroInventario) SaldoPorUbicacion() map[string]int {
	saldos := make(map[string]int)
	for _, m := range l.movimientos {
		saldos[m.Ubicacion.Label()] += m.CantidadFirmada()
	}
	return saldos
}

// SaldoPorTipoStock recomputa el saldo agrupado por tipo de existencia.
func (l *LibroInventario) SaldoPorTipoStock() map[TipoStock]int {
	saldos := make(map[TipoStock]int)
	for _, m := range l.movimientos {
		saldos[m.TipoStock] += m.CantidadFirmada()
	}
	return saldos
}

// MovimientosPorCompra devuelve los movimientos vinculados a una compra.
func (l *LibroInventario) MovimientosPorCompra(compraID string) []*MovimientoStock {
	var out []*MovimientoStock
	for _, m := range l.movimientos {
		if m.CompraID == compraID {
			out = append(out, m)
		}
	}
	return out
}

// MovimientosPorProduccion devuelve los movimientos vinculados a una orden de producción.
func (l *LibroInventario) MovimientosPorProduccion(produccionID string) []*MovimientoStock {
	var out []*MovimientoStock
	for _, m := range l.movimientos {
		if m.ProduccionID == produccionID {
			out = append(out, m)
		}
	}
	return out
}

// Movimientos devuelve el historial en orden de inserción.
func (l *LibroInventario) Movimientos() []*MovimientoStock {
	out := make([]*MovimientoStock, len(l.movimientos))
	copy(out, l.movimientos)
	return out
}
