// Package costing expone el motor de escandallo: alta, actualización de
// medidas y materiales, desglose de costes e historial de snapshots.
package costing

import (
	"fmt"

	"github.com/jmfernandez/fabrica-api/internal/application/dto"
	"github.com/jmfernandez/fabrica-api/internal/domain"
	"github.com/jmfernandez/fabrica-api/internal/domain/escandallo"
	"github.com/jmfernandez/fabrica-api/internal/domain/repository"
	"github.com/jmfernandez/fabrica-api/pkg/logger"
)

// UseCase orquesta los escandallos persistidos por módulo.
type UseCase struct {
	repo repository.EscandalloRepository
	log  *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.EscandalloRepository, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, log: log}
}

// Crear da de alta el escandallo de un módulo, ejecuta el primer recálculo y
// lo guarda. Los tipos de material sin regla se devuelven en la respuesta y se
// registran como aviso: son configuración incompleta, no un error fatal.
func (uc *UseCase) Crear(in dto.CrearEscandalloRequest) (*dto.EscandalloResponse, error) {
	if in.ModuloID == "" || len(in.Materiales) == 0 {
		return nil, fmt.Errorf("modulo_id y materiales son obligatorios: %w", domain.ErrInvalidInput)
	}

	reglas, err := construirReglas(in.Reglas)
	if err != nil {
		return nil, err
	}

	e := escandallo.Nuevo(in.ModuloID, in.Medidas, reglas)
	for _, m := range in.Materiales {
		metadata := m.Metadata
		if metadata == nil {
			metadata = map[string]float64{}
		}
		e.Materiales = append(e.Materiales, &escandallo.ItemMaterial{
			Nombre:       m.Nombre,
			TipoMaterial: m.TipoMaterial,
			CosteUnidad:  m.CosteUnidad,
			Cantidad:     m.Cantidad,
			Metadata:     metadata,
		})
	}
	for _, m := range in.ManoObra {
		e.ManoObra = append(e.ManoObra, &escandallo.ItemManoObra{
			Nombre: m.Nombre, TarifaHora: m.TarifaHora, Horas: m.Horas,
		})
	}
	for _, h := range in.Herrajes {
		e.Herrajes = append(e.Herrajes, &escandallo.ItemHerraje{
			Nombre: h.Nombre, CosteUnidad: h.CosteUnidad, Cantidad: h.Cantidad,
		})
	}
	for _, t := range in.Tiempos {
		e.Tiempos = append(e.Tiempos, escandallo.TiempoProceso{Nombre: t.Nombre, Minutos: t.Minutos})
	}

	sinRegla := e.Recalcular("alta inicial")
	uc.avisarSinRegla(in.ModuloID, sinRegla)

	if err := uc.repo.Save(e); err != nil {
		return nil, err
	}
	uc.log.Info().Str("modulo_id", in.ModuloID).Float64("coste_total", e.CosteTotal()).Msg("escandallo creado")

	return &dto.EscandalloResponse{Datos: e.ADatos(), SinRegla: sinRegla}, nil
}

// ActualizarMedidas fusiona medidas en el escandallo del módulo y recalcula.
func (uc *UseCase) ActualizarMedidas(moduloID string, in dto.ActualizarMedidasRequest) (*dto.EscandalloResponse, error) {
	e, err := uc.repo.GetByModuloID(moduloID)
	if err != nil {
		return nil, err
	}
	sinRegla := e.ActualizarMedidas(in.Medidas)
	uc.avisarSinRegla(moduloID, sinRegla)
	return &dto.EscandalloResponse{Datos: e.ADatos(), SinRegla: sinRegla}, nil
}

// ActualizarMaterial aplica cambios a un material por nombre y recalcula.
func (uc *UseCase) ActualizarMaterial(moduloID, nombre string, in dto.ActualizarMaterialRequest) (*dto.EscandalloResponse, error) {
	e, err := uc.repo.GetByModuloID(moduloID)
	if err != nil {
		return nil, err
	}
	sinRegla, err := e.ActualizarMaterial(nombre, in.CosteUnidad, in.Metadata)
	if err != nil {
		return nil, err
	}
	uc.avisarSinRegla(moduloID, sinRegla)
	return &dto.EscandalloResponse{Datos: e.ADatos(), SinRegla: sinRegla}, nil
}

// Obtener devuelve el desglose actual del escandallo de un módulo.
func (uc *UseCase) Obtener(moduloID string) (*dto.EscandalloResponse, error) {
	e, err := uc.repo.GetByModuloID(moduloID)
	if err != nil {
		return nil, err
	}
	return &dto.EscandalloResponse{Datos: e.ADatos()}, nil
}

// Historial devuelve los snapshots de recálculo en orden de inserción.
func (uc *UseCase) Historial(moduloID string) ([]dto.SnapshotDTO, error) {
	e, err := uc.repo.GetByModuloID(moduloID)
	if err != nil {
		return nil, err
	}
	historial := e.Historial()
	out := make([]dto.SnapshotDTO, 0, len(historial))
	for _, s := range historial {
		out = append(out, dto.SnapshotDTO{Fecha: s.Fecha, Motivo: s.Motivo, Datos: s.Datos})
	}
	return out, nil
}

func (uc *UseCase) avisarSinRegla(moduloID string, sinRegla []string) {
	for _, tipo := range sinRegla {
		uc.log.Warn().
			Str("modulo_id", moduloID).
			Str("tipo_material", tipo).
			Msg("tipo de material sin regla registrada; cantidad sin recalcular")
	}
}

func construirReglas(defs []dto.ReglaDTO) (*escandallo.RegistroReglas, error) {
	registro := escandallo.NuevoRegistroReglas()
	for _, def := range defs {
		switch def.Regla {
		case "tejido":
			registro.Registrar(def.TipoMaterial, escandallo.ReglaTejido{AnchoRollo: def.AnchoRollo})
		case "relleno":
			registro.Registrar(def.TipoMaterial, escandallo.ReglaRelleno{Densidad: def.Densidad})
		default:
			return nil, fmt.Errorf("regla %q no soportada: %w", def.Regla, domain.ErrInvalidInput)
		}
	}
	return registro, nil
}
