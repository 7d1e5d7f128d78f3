// Package inventory expone el libro de inventario a la capa de servicio:
// registro de movimientos con puerta de autorización para ajustes y consultas
// de saldo recomputadas sobre el historial completo.
package inventory

import (
	"github.com/jmfernandez/fabrica-api/internal/application/dto"
	"github.com/jmfernandez/fabrica-api/internal/domain"
	"github.com/jmfernandez/fabrica-api/internal/domain/inventory"
	"github.com/jmfernandez/fabrica-api/internal/domain/security"
	"github.com/jmfernandez/fabrica-api/pkg/logger"
)

// UseCase orquesta el libro de inventario. El libro se muta desde un solo
// llamador a la vez (disciplina de agregado único garantizada por la capa
// que invoca).
type UseCase struct {
	libro *inventory.LibroInventario
	gate  *security.Gate
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(libro *inventory.LibroInventario, gate *security.Gate, log *logger.Logger) *UseCase {
	return &UseCase{libro: libro, gate: gate, log: log}
}

// RegistrarMovimiento valida, autoriza (los ajustes son acción sensible) y
// anota el movimiento en el libro.
func (uc *UseCase) RegistrarMovimiento(actor security.Actor, in dto.RegistrarMovimientoRequest) (*dto.MovimientoDTO, error) {
	tipo := inventory.TipoMovimiento(in.Tipo)
	if tipo == inventory.MovimientoAjuste {
		permitido, err := uc.gate.Autorizar(actor, "inventario", "ajustar_inventario", map[string]string{
			"almacen":    in.Almacen,
			"estanteria": in.Estanteria,
		})
		if err != nil {
			return nil, err
		}
		if !permitido {
			return nil, domain.ErrForbidden
		}
	}

	m, err := inventory.NuevoMovimiento(
		inventory.TipoStock(in.TipoStock),
		tipo,
		in.Cantidad,
		inventory.Ubicacion{Almacen: in.Almacen, Estanteria: in.Estanteria},
	)
	if err != nil {
		return nil, err
	}
	if in.CompraID != "" {
		m.VincularCompra(in.CompraID)
	}
	if in.ProduccionID != "" {
		m.VincularProduccion(in.ProduccionID)
	}
	m.Nota = in.Nota

	uc.libro.RegistrarMovimiento(m)
	uc.log.Info().
		Str("movimiento_id", m.ID).
		Str("tipo", string(m.Tipo)).
		Int("cantidad", m.Cantidad).
		Str("ubicacion", m.Ubicacion.Label()).
		Msg("movimiento registrado")

	out := aDTO(m)
	return &out, nil
}

// SaldosPorUbicacion devuelve el saldo actual por "almacen/estanteria".
func (uc *UseCase) SaldosPorUbicacion() map[string]int {
	return uc.libro.SaldoPorUbicacion()
}

// SaldosPorTipoStock devuelve el saldo actual por tipo de existencia.
func (uc *UseCase) SaldosPorTipoStock() map[string]int {
	saldos := uc.libro.SaldoPorTipoStock()
	out := make(map[string]int, len(saldos))
	for tipo, saldo := range saldos {
		out[string(tipo)] = saldo
	}
	return out
}

// MovimientosPorCompra lista los movimientos vinculados a una compra.
func (uc *UseCase) MovimientosPorCompra(compraID string) []dto.MovimientoDTO {
	return aDTOs(uc.libro.MovimientosPorCompra(compraID))
}

// MovimientosPorProduccion lista los movimientos vinculados a una orden de producción.
func (uc *UseCase) MovimientosPorProduccion(produccionID string) []dto.MovimientoDTO {
	return aDTOs(uc.libro.MovimientosPorProduccion(produccionID))
}

func aDTO(m *inventory.MovimientoStock) dto.MovimientoDTO {
	return dto.MovimientoDTO{
		ID:           m.ID,
		TipoStock:    string(m.TipoStock),
		Tipo:         string(m.Tipo),
		Cantidad:     m.Cantidad,
		Ubicacion:    m.Ubicacion.Label(),
		Fecha:        m.Fecha,
		CompraID:     m.CompraID,
		ProduccionID: m.ProduccionID,
		Nota:         m.Nota,
	}
}

func aDTOs(movimientos []*inventory.MovimientoStock) []dto.MovimientoDTO {
	out := make([]dto.MovimientoDTO, 0, len(movimientos))
	for _, m := range movimientos {
		out = append(out, aDTO(m))
	}
	return out
}
