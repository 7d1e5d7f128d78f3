// Package mrp calcula requerimientos netos de material a partir de la demanda
// de producto terminado, el stock disponible y una lista de materiales (BOM)
// de un solo nivel.
package mrp

// RequerimientoMRP es el resultado de planificación para un ítem: demanda
// expandida, stock disponible y neto a aprovisionar. Es un valor efímero por
// corrida de planificación; no se persiste.
type RequerimientoMRP struct {
	Item              string
	Demanda           int
	Stock             int
	RequerimientoNeto int
}

// BOM mapea cada producto padre a sus componentes con cantidad por unidad de
// padre. Un solo nivel: los componentes no se vuelven a expandir.
type BOM map[string]map[string]int

func netearDemanda(demanda, stock int) int {
	if neto := demanda - stock; neto > 0 {
		return neto
	}
	return 0
}

// Planificar expande la demanda a través del BOM (si se proporciona) y netea
// contra el stock disponible.
//
// La expansión es aditiva: un componente demandado directamente y además vía
// un padre acumula ambas contribuciones. Ítems ausentes del stock se tratan
// como stock cero; ítems presentes solo en stock no generan requerimiento.
// Quien necesite explosión multinivel debe invocar Planificar iterativamente.
func Planificar(demanda, stock map[string]int, bom BOM) map[string]RequerimientoMRP {
	demandaExpandida := make(map[string]int, len(demanda))
	for item, cantidad := range demanda {
		demandaExpandida[item] = cantidad
	}

	if bom != nil {
		for producto, cantidad := range demanda {
			for componente, cantidadPorPadre := range bom[producto] {
				demandaExpandida[componente] += cantidad * cantidadPorPadre
			}
		}
	}

	requerimientos := make(map[string]RequerimientoMRP, len(demandaExpandida))
	for item, cantidad := range demandaExpandida {
		stockItem := stock[item]
		requerimientos[item] = RequerimientoMRP{
			Item:              item,
			Demanda:           cantidad,
			Stock:             stockItem,
			RequerimientoNeto: netearDemanda(cantidad, stockItem),
		}
	}

	return requerimientos
}
