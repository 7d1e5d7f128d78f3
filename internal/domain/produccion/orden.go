// Package produccion sigue el avance de las órdenes de producción por las
// estaciones de fabricación, con una máquina de estados independiente por
// estación y captura de tiempos reales.
package produccion

import (
	"fmt"
	"time"

	"github.com/jmfernandez/fabrica-api/internal/domain"
)

// OrdenProduccion agrupa el pedido origen y el registro de cada estación.
// Se crea una vez por pedido y solo se muta vía RegistrarInicio/RegistrarFin;
// el archivado es responsabilidad externa.
type OrdenProduccion struct {
	ID         string
	Pedido     *Pedido
	Estaciones map[Estacion]*RegistroEstacion
}

// CrearOrdenProduccion crea la orden con las estaciones indicadas en estado
// pendiente. Sin lista explícita se inicializan las cuatro estaciones; las
// claves desconocidas se rechazan.
func CrearOrdenProduccion(id string, pedido *Pedido, estaciones []Estacion) (*OrdenProduccion, error) {
	if len(estaciones) == 0 {
		estaciones = Estaciones()
	}
	registros := make(map[Estacion]*RegistroEstacion, len(estaciones))
	for _, estacion := range estaciones {
		if !estacion.EsValida() {
			return nil, fmt.Errorf("estación %q: %w", estacion, domain.ErrEstacionDesconocida)
		}
		registros[estacion] = NuevoRegistroEstacion(estacion)
	}
	return &OrdenProduccion{ID: id, Pedido: pedido, Estaciones: registros}, nil
}

// Modulos devuelve las líneas del pedido origen.
func (o *OrdenProduccion) Modulos() []Modulo {
	if o.Pedido == nil {
		return nil
	}
	out := make([]Modulo, len(o.Pedido.Modulos))
	copy(out, o.Pedido.Modulos)
	return out
}

// RegistrarInicio delega en la estación indicada.
func (o *OrdenProduccion) RegistrarInicio(estacion Estacion, momento *time.Time) error {
	registro, err := o.registro(estacion)
	if err != nil {
		return err
	}
	return registro.Iniciar(momento)
}

// RegistrarFin delega en la estación indicada.
func (o *OrdenProduccion) RegistrarFin(estacion Estacion, momento *time.Time) error {
	registro, err := o.registro(estacion)
	if err != nil {
		return err
	}
	return registro.Completar(momento)
}

// EstadoEstaciones devuelve el estado actual de cada estación de la orden.
func (o *OrdenProduccion) EstadoEstaciones() map[Estacion]EstadoEstacion {
	estados := make(map[Estacion]EstadoEstacion, len(o.Estaciones))
	for estacion, registro := range o.Estaciones {
		estados[estacion] = registro.Estado
	}
	return estados
}

// TiemposReales devuelve el tiempo transcurrido por estación; las estaciones
// sin inicio y fin sellados se omiten.
func (o *OrdenProduccion) TiemposReales() map[Estacion]time.Duration {
	tiempos := make(map[Estacion]time.Duration)
	for estacion, registro := range o.Estaciones {
		if d, ok := registro.TiempoReal(); ok {
			tiempos[estacion] = d
		}
	}
	return tiempos
}

func (o *OrdenProduccion) registro(estacion Estacion) (*RegistroEstacion, error) {
	registro, ok := o.Estaciones[estacion]
	if !ok {
		return nil, fmt.Errorf("estación %q: %w", estacion, domain.ErrEstacionDesconocida)
	}
	return registro, nil
}
