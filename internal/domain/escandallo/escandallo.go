// Package escandallo implementa el desglose de costes y cantidades de
// materiales de un módulo de producción, con recálculo dirigido por reglas y
// un historial de snapshots append-only.
package escandallo

import (
	"fmt"
	"time"

	"github.com/jmfernandez/fabrica-api/internal/domain"
)

// Snapshot es una foto inmutable del escandallo tras un recálculo. El
// historial nunca se edita ni se poda.
type Snapshot struct {
	Fecha  time.Time
	Motivo string
	Datos  map[string]any
}

// Escandallo agrupa medidas, líneas de material/mano de obra/herrajes y el
// registro de reglas con el que se derivan las cantidades de material.
// Solo se muta a través de Recalcular, ActualizarMedidas y ActualizarMaterial,
// y cada recálculo añade exactamente un snapshot al historial.
type Escandallo struct {
	ModuloID   string
	Medidas    map[string]float64
	Materiales []*ItemMaterial
	ManoObra   []*ItemManoObra
	Herrajes   []*ItemHerraje
	Tiempos    []TiempoProceso

	reglas    *RegistroReglas
	historial []Snapshot
}

// Nuevo construye un escandallo sobre un registro de reglas ya configurado.
func Nuevo(moduloID string, medidas map[string]float64, reglas *RegistroReglas) *Escandallo {
	if medidas == nil {
		medidas = make(map[string]float64)
	}
	if reglas == nil {
		reglas = NuevoRegistroReglas()
	}
	return &Escandallo{
		ModuloID: moduloID,
		Medidas:  medidas,
		reglas:   reglas,
	}
}

// Recalcular aplica a cada material la regla de su tipo y sobrescribe su
// cantidad. Los tipos sin regla registrada conservan la cantidad previa y se
// devuelven en la lista de no atendidos para que el llamador pueda detectar
// configuración incompleta. Siempre añade exactamente un snapshot, haya o no
// cambiado alguna cantidad.
func (e *Escandallo) Recalcular(motivo string) []string {
	var sinRegla []string
	for _, material := range e.Materiales {
		regla, ok := e.reglas.Obtener(material.TipoMaterial)
		if !ok {
			sinRegla = append(sinRegla, material.TipoMaterial)
			continue
		}
		material.Cantidad = regla.CalcularCantidad(e.Medidas, material)
	}
	e.agregarSnapshot(motivo)
	return sinRegla
}

// ActualizarMedidas fusiona las medidas recibidas (pisando claves existentes)
// y recalcula todo el escandallo.
func (e *Escandallo) ActualizarMedidas(cambios map[string]float64) []string {
	for clave, valor := range cambios {
		e.Medidas[clave] = valor
	}
	return e.Recalcular("medidas actualizadas")
}

// ActualizarMaterial localiza el material por nombre (se asume único), aplica
// los cambios de coste y metadatos y recalcula. Devuelve
// domain.ErrMaterialNoEncontrado si ningún material lleva ese nombre.
func (e *Escandallo) ActualizarMaterial(nombre string, costeUnidad *float64, metadata map[string]float64) ([]string, error) {
	for _, material := range e.Materiales {
		if material.Nombre != nombre {
			continue
		}
		if costeUnidad != nil {
			material.CosteUnidad = *costeUnidad
		}
		if metadata != nil {
			if material.Metadata == nil {
				material.Metadata = make(map[string]float64, len(metadata))
			}
			for clave, valor := range metadata {
				material.Metadata[clave] = valor
			}
		}
		return e.Recalcular(fmt.Sprintf("material actualizado: %s", nombre)), nil
	}
	return nil, fmt.Errorf("material %q: %w", nombre, domain.ErrMaterialNoEncontrado)
}

// CosteMateriales suma coste unitario × cantidad de todas las líneas de material.
func (e *Escandallo) CosteMateriales() float64 {
	var total float64
	for _, m := range e.Materiales {
		total += m.CosteTotal()
	}
	return total
}

// CosteManoObra suma tarifa × horas de todas las líneas de mano de obra.
func (e *Escandallo) CosteManoObra() float64 {
	var total float64
	for _, m := range e.ManoObra {
		total += m.CosteTotal()
	}
	return total
}

// CosteHerrajes suma coste unitario × cantidad de todas las líneas de herraje.
func (e *Escandallo) CosteHerrajes() float64 {
	var total float64
	for _, h := range e.Herrajes {
		total += h.CosteTotal()
	}
	return total
}

// CosteTotal es la suma de materiales, mano de obra y herrajes.
func (e *Escandallo) CosteTotal() float64 {
	return e.CosteMateriales() + e.CosteManoObra() + e.CosteHerrajes()
}

// Historial devuelve los snapshots en orden de inserción.
func (e *Escandallo) Historial() []Snapshot {
	out := make([]Snapshot, len(e.historial))
	copy(out, e.historial)
	return out
}

func (e *Escandallo) agregarSnapshot(motivo string) {
	e.historial = append(e.historial, Snapshot{
		Fecha:  time.Now().UTC(),
		Motivo: motivo,
		Datos:  e.ADatos(),
	})
}

// ADatos serializa el estado completo del escandallo como mapa plano, el
// formato que consume la persistencia de auditoría.
func (e *Escandallo) ADatos() map[string]any {
	medidas := make(map[string]float64, len(e.Medidas))
	for clave, valor := range e.Medidas {
		medidas[clave] = valor
	}

	materiales := make([]map[string]any, 0, len(e.Materiales))
	for _, m := range e.Materiales {
		metadata := make(map[string]float64, len(m.Metadata))
		for clave, valor := range m.Metadata {
			metadata[clave] = valor
		}
		materiales = append(materiales, map[string]any{
			"nombre":        m.Nombre,
			"tipo_material": m.TipoMaterial,
			"coste_unidad":  m.CosteUnidad,
			"cantidad":      m.Cantidad,
			"metadata":      metadata,
			"coste_total":   m.CosteTotal(),
		})
	}

	manoObra := make([]map[string]any, 0, len(e.ManoObra))
	for _, m := range e.ManoObra {
		manoObra = append(manoObra, map[string]any{
			"nombre":      m.Nombre,
			"tarifa_hora": m.TarifaHora,
			"horas":       m.Horas,
			"coste_total": m.CosteTotal(),
		})
	}

	herrajes := make([]map[string]any, 0, len(e.Herrajes))
	for _, h := range e.Herrajes {
		herrajes = append(herrajes, map[string]any{
			"nombre":       h.Nombre,
			"coste_unidad": h.CosteUnidad,
			"cantidad":     h.Cantidad,
			"coste_total":  h.CosteTotal(),
		})
	}

	tiempos := make([]map[string]any, 0, len(e.Tiempos))
	for _, t := range e.Tiempos {
		tiempos = append(tiempos, map[string]any{
			"nombre":  t.Nombre,
			"minutos": t.Minutos,
		})
	}

	return map[string]any{
		"modulo_id":   e.ModuloID,
		"medidas":     medidas,
		"materiales":  materiales,
		"mano_obra":   manoObra,
		"herrajes":    herrajes,
		"tiempos":     tiempos,
		"coste_total": e.CosteTotal(),
	}
}
