// Package planning expone la planificación de requerimientos de material.
package planning

import (
	"sort"

	"github.com/jmfernandez/fabrica-api/internal/application/dto"
	"github.com/jmfernandez/fabrica-api/internal/domain/mrp"
	"github.com/jmfernandez/fabrica-api/pkg/logger"
)

// UseCase ejecuta corridas de planificación. Cada corrida es efímera: el
// resultado se entrega al llamador (compras/producción) y no se persiste.
type UseCase struct {
	log *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(log *logger.Logger) *UseCase {
	return &UseCase{log: log}
}

// Planificar expande la demanda por el BOM de un nivel, netea contra stock y
// devuelve los requerimientos ordenados por ítem para una salida estable.
func (uc *UseCase) Planificar(in dto.PlanificarRequest) []dto.RequerimientoDTO {
	reqs := mrp.Planificar(in.Demanda, in.Stock, mrp.BOM(in.BOM))

	out := make([]dto.RequerimientoDTO, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, dto.RequerimientoDTO{
			Item:              r.Item,
			Demanda:           r.Demanda,
			Stock:             r.Stock,
			RequerimientoNeto: r.RequerimientoNeto,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item < out[j].Item })

	uc.log.Debug().
		Int("items_demandados", len(in.Demanda)).
		Int("requerimientos", len(out)).
		Msg("corrida MRP completada")
	return out
}
