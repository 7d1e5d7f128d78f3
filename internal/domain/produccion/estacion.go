package produccion

import (
	"fmt"
	"time"

	"github.com/jmfernandez/fabrica-api/internal/domain"
)

// Estacion es una etapa fija de fabricación. El conjunto es cerrado; no se
// impone orden entre estaciones.
type Estacion string

const (
	EstacionCorte    Estacion = "corte"
	EstacionCostura  Estacion = "costura"
	EstacionTapizado Estacion = "tapizado"
	EstacionEmbalaje Estacion = "embalaje"
)

// Estaciones devuelve el conjunto completo en orden de proceso habitual
// (solo a efectos de presentación; el tracker no impone secuencia).
func Estaciones() []Estacion {
	return []Estacion{EstacionCorte, EstacionCostura, EstacionTapizado, EstacionEmbalaje}
}

// EsValida indica si la clave pertenece al conjunto conocido de estaciones.
func (e Estacion) EsValida() bool {
	switch e {
	case EstacionCorte, EstacionCostura, EstacionTapizado, EstacionEmbalaje:
		return true
	}
	return false
}

// EstadoEstacion es el estado del trabajo de una estación dentro de una orden.
type EstadoEstacion string

const (
	EstadoPendiente  EstadoEstacion = "pendiente"
	EstadoEnProceso  EstadoEstacion = "en_proceso"
	EstadoCompletado EstadoEstacion = "completado"
)

// RegistroEstacion lleva el ciclo de vida de una estación para una orden:
// pendiente → en_proceso → completado, con captura de tiempos reales.
type RegistroEstacion struct {
	Estacion   Estacion
	Estado     EstadoEstacion
	InicioReal *time.Time
	FinReal    *time.Time
}

// NuevoRegistroEstacion crea el registro en estado pendiente.
func NuevoRegistroEstacion(estacion Estacion) *RegistroEstacion {
	return &RegistroEstacion{Estacion: estacion, Estado: EstadoPendiente}
}

// Iniciar pasa la estación a en_proceso y sella el inicio real (ahora si no se
// indica momento). Reiniciar una estación en proceso vuelve a sellar el inicio;
// una estación completada no puede reabrirse.
func (r *RegistroEstacion) Iniciar(momento *time.Time) error {
	if r.Estado == EstadoCompletado {
		return fmt.Errorf("estación %s ya completada: %w", r.Estacion, domain.ErrTransicionInvalida)
	}
	r.Estado = EstadoEnProceso
	r.InicioReal = momentoODefecto(momento)
	return nil
}

// Completar pasa la estación a completado y sella el fin real. No se puede
// completar una estación que nunca se inició.
func (r *RegistroEstacion) Completar(momento *time.Time) error {
	if r.Estado == EstadoPendiente {
		return fmt.Errorf("estación %s aún pendiente: %w", r.Estacion, domain.ErrTransicionInvalida)
	}
	r.Estado = EstadoCompletado
	r.FinReal = momentoODefecto(momento)
	return nil
}

// TiempoReal devuelve fin − inicio si ambos están sellados.
func (r *RegistroEstacion) TiempoReal() (time.Duration, bool) {
	if r.InicioReal == nil || r.FinReal == nil {
		return 0, false
	}
	return r.FinReal.Sub(*r.InicioReal), true
}

func momentoODefecto(momento *time.Time) *time.Time {
	if momento != nil {
		return momento
	}
	ahora := time.Now().UTC()
	return &ahora
}
