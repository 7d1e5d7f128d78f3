// Package produccion expone el seguimiento de órdenes de producción: alta
// (acción sensible con puerta de autorización), arranque y cierre de
// estaciones e informes de tiempos reales.
package produccion

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmfernandez/fabrica-api/internal/application/dto"
	"github.com/jmfernandez/fabrica-api/internal/domain"
	domprod "github.com/jmfernandez/fabrica-api/internal/domain/produccion"
	"github.com/jmfernandez/fabrica-api/internal/domain/repository"
	"github.com/jmfernandez/fabrica-api/internal/domain/security"
	"github.com/jmfernandez/fabrica-api/pkg/logger"
)

// UseCase orquesta pedidos y órdenes de producción.
type UseCase struct {
	ordenes repository.OrdenProduccionRepository
	pedidos repository.PedidoRepository
	gate    *security.Gate
	log     *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(ordenes repository.OrdenProduccionRepository, pedidos repository.PedidoRepository, gate *security.Gate, log *logger.Logger) *UseCase {
	return &UseCase{ordenes: ordenes, pedidos: pedidos, gate: gate, log: log}
}

// CrearPedido registra un pedido de venta llegado de la toma de pedidos.
func (uc *UseCase) CrearPedido(in dto.CrearPedidoRequest) error {
	if in.ID == "" || in.Cliente == "" {
		return fmt.Errorf("id y cliente son obligatorios: %w", domain.ErrInvalidInput)
	}
	modulos := make([]domprod.Modulo, 0, len(in.Modulos))
	for _, m := range in.Modulos {
		modulos = append(modulos, domprod.Modulo{SKU: m.SKU, Descripcion: m.Descripcion, Cantidad: m.Cantidad})
	}
	return uc.pedidos.Save(&domprod.Pedido{ID: in.ID, Cliente: in.Cliente, Modulos: modulos})
}

// CrearOrden crea una orden de producción sobre un pedido existente. Es una
// acción sensible: pasa por la puerta de autorización y deja auditoría.
func (uc *UseCase) CrearOrden(actor security.Actor, in dto.CrearOrdenRequest) (*dto.OrdenResponse, error) {
	permitido, err := uc.gate.Autorizar(actor, "ordenes", "crear_orden", map[string]string{"pedido": in.PedidoID})
	if err != nil {
		return nil, err
	}
	if !permitido {
		return nil, domain.ErrForbidden
	}

	pedido, err := uc.pedidos.GetByID(in.PedidoID)
	if err != nil {
		return nil, err
	}

	estaciones := make([]domprod.Estacion, 0, len(in.Estaciones))
	for _, e := range in.Estaciones {
		estaciones = append(estaciones, domprod.Estacion(e))
	}

	orden, err := domprod.CrearOrdenProduccion(uuid.New().String(), pedido, estaciones)
	if err != nil {
		return nil, err
	}
	if err := uc.ordenes.Save(orden); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("orden_id", orden.ID).
		Str("pedido_id", pedido.ID).
		Int("estaciones", len(orden.Estaciones)).
		Msg("orden de producción creada")
	return aOrdenResponse(orden), nil
}

// RegistrarInicio arranca una estación de la orden.
func (uc *UseCase) RegistrarInicio(ordenID string, estacion string, momento *time.Time) (*dto.OrdenResponse, error) {
	return uc.transicion(ordenID, estacion, momento, true)
}

// RegistrarFin completa una estación de la orden.
func (uc *UseCase) RegistrarFin(ordenID string, estacion string, momento *time.Time) (*dto.OrdenResponse, error) {
	return uc.transicion(ordenID, estacion, momento, false)
}

func (uc *UseCase) transicion(ordenID, estacion string, momento *time.Time, inicio bool) (*dto.OrdenResponse, error) {
	orden, err := uc.ordenes.GetByID(ordenID)
	if err != nil {
		return nil, err
	}
	if inicio {
		err = orden.RegistrarInicio(domprod.Estacion(estacion), momento)
	} else {
		err = orden.RegistrarFin(domprod.Estacion(estacion), momento)
	}
	if err != nil {
		return nil, err
	}
	return aOrdenResponse(orden), nil
}

// Obtener devuelve el estado de una orden.
func (uc *UseCase) Obtener(ordenID string) (*dto.OrdenResponse, error) {
	orden, err := uc.ordenes.GetByID(ordenID)
	if err != nil {
		return nil, err
	}
	return aOrdenResponse(orden), nil
}

// Tiempos devuelve el informe de tiempos reales por estación, en segundos,
// para analítica de producción.
func (uc *UseCase) Tiempos(ordenID string) (*dto.TiemposResponse, error) {
	orden, err := uc.ordenes.GetByID(ordenID)
	if err != nil {
		return nil, err
	}
	tiempos := make(map[string]float64)
	for estacion, d := range orden.TiemposReales() {
		tiempos[string(estacion)] = d.Seconds()
	}
	return &dto.TiemposResponse{OrdenID: orden.ID, Tiempos: tiempos}, nil
}

func aOrdenResponse(orden *domprod.OrdenProduccion) *dto.OrdenResponse {
	estaciones := make(map[string]string, len(orden.Estaciones))
	for estacion, estado := range orden.EstadoEstaciones() {
		estaciones[string(estacion)] = string(estado)
	}
	return &dto.OrdenResponse{
		ID:         orden.ID,
		PedidoID:   orden.Pedido.ID,
		Estaciones: estaciones,
	}
}
