// Package ventas expone el alta y consulta de órdenes de venta. Cada orden
// vive en una única divisa; los importes viajan como strings decimales.
package ventas

import (
	"fmt"

	"github.com/jmfernandez/fabrica-api/internal/application/dto"
	"github.com/jmfernandez/fabrica-api/internal/domain"
	"github.com/jmfernandez/fabrica-api/internal/domain/repository"
	domventas "github.com/jmfernandez/fabrica-api/internal/domain/ventas"
	"github.com/jmfernandez/fabrica-api/pkg/logger"
)

// UseCase orquesta las órdenes de venta.
type UseCase struct {
	ordenes repository.OrdenVentaRepository
	log     *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(ordenes repository.OrdenVentaRepository, log *logger.Logger) *UseCase {
	return &UseCase{ordenes: ordenes, log: log}
}

// Crear da de alta una orden de venta con sus líneas. Si una línea llega en
// otra divisa o con un importe ilegible, la orden no se guarda.
func (uc *UseCase) Crear(in dto.CrearOrdenVentaRequest) (*dto.OrdenVentaResponse, error) {
	if in.Numero == "" || in.Cliente == "" {
		return nil, fmt.Errorf("numero y cliente son obligatorios: %w", domain.ErrInvalidInput)
	}
	if in.Moneda.Codigo == "" {
		return nil, fmt.Errorf("moneda sin código: %w", domain.ErrInvalidInput)
	}

	moneda := domventas.Moneda{Codigo: in.Moneda.Codigo, Simbolo: in.Moneda.Simbolo}
	orden := domventas.NuevaOrdenVenta(in.Numero, &domventas.Cliente{ID: in.Cliente, Nombre: in.Cliente}, moneda)
	for _, l := range in.Lineas {
		precio, err := domventas.NuevoMoney(l.PrecioUnitario, moneda)
		if err != nil {
			return nil, err
		}
		linea := domventas.LineaOrdenVenta{
			SKU:            l.SKU,
			Descripcion:    l.Descripcion,
			Cantidad:       l.Cantidad,
			PrecioUnitario: precio,
		}
		if err := orden.AgregarLinea(linea); err != nil {
			return nil, err
		}
	}
	if err := uc.ordenes.Save(orden); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("numero", orden.Numero).
		Str("total", orden.Total().String()).
		Msg("orden de venta creada")
	return aOrdenVentaResponse(orden), nil
}

// Obtener devuelve el resumen de una orden de venta.
func (uc *UseCase) Obtener(numero string) (*dto.OrdenVentaResponse, error) {
	orden, err := uc.ordenes.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	return aOrdenVentaResponse(orden), nil
}

// ActualizarEstado cambia el estado comercial de la orden.
func (uc *UseCase) ActualizarEstado(numero string, in dto.ActualizarEstadoVentaRequest) (*dto.OrdenVentaResponse, error) {
	orden, err := uc.ordenes.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	estado, err := parseEstado(in.Estado)
	if err != nil {
		return nil, err
	}
	orden.ActualizarEstado(estado)
	return aOrdenVentaResponse(orden), nil
}

func parseEstado(s string) (domventas.EstadoOrdenVenta, error) {
	switch estado := domventas.EstadoOrdenVenta(s); estado {
	case domventas.OrdenCreada, domventas.OrdenEnProduccion, domventas.OrdenEnviada,
		domventas.OrdenEntregada, domventas.OrdenCancelada:
		return estado, nil
	default:
		return "", fmt.Errorf("estado %q: %w", s, domain.ErrInvalidInput)
	}
}

func aOrdenVentaResponse(orden *domventas.OrdenVenta) *dto.OrdenVentaResponse {
	return &dto.OrdenVentaResponse{
		Numero:  orden.Numero,
		Cliente: orden.Cliente.Nombre,
		Estado:  string(orden.Estado),
		Total:   orden.Total().String(),
		Lineas:  len(orden.Lineas),
	}
}
