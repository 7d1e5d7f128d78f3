package produccion_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmfernandez/fabrica-api/internal/domain"
	"github.com/jmfernandez/fabrica-api/internal/domain/produccion"
)

func pedidoSofa() *produccion.Pedido {
	return &produccion.Pedido{
		ID:      "PED-001",
		Cliente: "Muebles del Norte",
		Modulos: []produccion.Modulo{
			{SKU: "MOD-3P", Descripcion: "Módulo 3 plazas", Cantidad: 2},
			{SKU: "MOD-CHL", Descripcion: "Chaise longue", Cantidad: 1},
		},
	}
}

func en(t *testing.T, s string) *time.Time {
	t.Helper()
	momento, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return &momento
}

// TestRegistroEstacion_Transiciones recorre el ciclo completo de una estación:
// pendiente → (completar falla) → en_proceso → completado → (iniciar falla).
func TestRegistroEstacion_Transiciones(t *testing.T) {
	registro := produccion.NuevoRegistroEstacion(produccion.EstacionCorte)
	assert.Equal(t, produccion.EstadoPendiente, registro.Estado)

	err := registro.Completar(nil)
	assert.ErrorIs(t, err, domain.ErrTransicionInvalida, "no se puede completar una estación pendiente")
	assert.Equal(t, produccion.EstadoPendiente, registro.Estado, "el fallo no deja estado parcial")

	require.NoError(t, registro.Iniciar(nil))
	assert.Equal(t, produccion.EstadoEnProceso, registro.Estado)

	require.NoError(t, registro.Completar(nil))
	assert.Equal(t, produccion.EstadoCompletado, registro.Estado)

	err = registro.Iniciar(nil)
	assert.ErrorIs(t, err, domain.ErrTransicionInvalida, "una estación completada no se reabre")
}

// TestRegistroEstacion_ReinicioEnProceso: iniciar una estación ya en proceso
// es legal y vuelve a sellar el inicio real.
func TestRegistroEstacion_ReinicioEnProceso(t *testing.T) {
	registro := produccion.NuevoRegistroEstacion(produccion.EstacionCostura)

	require.NoError(t, registro.Iniciar(en(t, "2026-02-03T08:00:00Z")))
	require.NoError(t, registro.Iniciar(en(t, "2026-02-03T09:30:00Z")))

	assert.Equal(t, produccion.EstadoEnProceso, registro.Estado)
	assert.Equal(t, *en(t, "2026-02-03T09:30:00Z"), *registro.InicioReal)
}

func TestRegistroEstacion_TiempoReal(t *testing.T) {
	registro := produccion.NuevoRegistroEstacion(produccion.EstacionTapizado)

	_, ok := registro.TiempoReal()
	assert.False(t, ok, "sin inicio y fin no hay tiempo real")

	require.NoError(t, registro.Iniciar(en(t, "2026-02-03T08:00:00Z")))
	require.NoError(t, registro.Completar(en(t, "2026-02-03T11:15:00Z")))

	d, ok := registro.TiempoReal()
	require.True(t, ok)
	assert.Equal(t, 3*time.Hour+15*time.Minute, d)
}

func TestCrearOrdenProduccion_EstacionesPorDefecto(t *testing.T) {
	orden, err := produccion.CrearOrdenProduccion("OP-001", pedidoSofa(), nil)
	require.NoError(t, err)

	estados := orden.EstadoEstaciones()
	require.Len(t, estados, 4)
	for _, estacion := range produccion.Estaciones() {
		assert.Equal(t, produccion.EstadoPendiente, estados[estacion])
	}
	assert.Len(t, orden.Modulos(), 2)
}

func TestCrearOrdenProduccion_EstacionesPersonalizadas(t *testing.T) {
	orden, err := produccion.CrearOrdenProduccion("OP-002", pedidoSofa(),
		[]produccion.Estacion{produccion.EstacionCorte, produccion.EstacionEmbalaje})
	require.NoError(t, err)
	assert.Len(t, orden.Estaciones, 2)

	_, err = produccion.CrearOrdenProduccion("OP-003", pedidoSofa(),
		[]produccion.Estacion{"barnizado"})
	assert.ErrorIs(t, err, domain.ErrEstacionDesconocida)
}

// TestOrden_EstacionesIndependientes: completar tapizado sin haber pasado por
// corte es legal; el tracker no impone secuencia entre estaciones.
func TestOrden_EstacionesIndependientes(t *testing.T) {
	orden, err := produccion.CrearOrdenProduccion("OP-004", pedidoSofa(), nil)
	require.NoError(t, err)

	require.NoError(t, orden.RegistrarInicio(produccion.EstacionTapizado, nil))
	require.NoError(t, orden.RegistrarFin(produccion.EstacionTapizado, nil))

	estados := orden.EstadoEstaciones()
	assert.Equal(t, produccion.EstadoCompletado, estados[produccion.EstacionTapizado])
	assert.Equal(t, produccion.EstadoPendiente, estados[produccion.EstacionCorte])
}

func TestOrden_EstacionDesconocida(t *testing.T) {
	orden, err := produccion.CrearOrdenProduccion("OP-005", pedidoSofa(),
		[]produccion.Estacion{produccion.EstacionCorte})
	require.NoError(t, err)

	err = orden.RegistrarInicio(produccion.EstacionCostura, nil)
	assert.ErrorIs(t, err, domain.ErrEstacionDesconocida, "costura no se sigue en esta orden")

	err = orden.RegistrarFin("pintura", nil)
	assert.ErrorIs(t, err, domain.ErrEstacionDesconocida)
}

func TestOrden_TiemposReales(t *testing.T) {
	orden, err := produccion.CrearOrdenProduccion("OP-006", pedidoSofa(), nil)
	require.NoError(t, err)

	require.NoError(t, orden.RegistrarInicio(produccion.EstacionCorte, en(t, "2026-02-03T08:00:00Z")))
	require.NoError(t, orden.RegistrarFin(produccion.EstacionCorte, en(t, "2026-02-03T09:00:00Z")))
	require.NoError(t, orden.RegistrarInicio(produccion.EstacionCostura, en(t, "2026-02-03T09:00:00Z")))

	tiempos := orden.TiemposReales()
	require.Len(t, tiempos, 1, "solo corte tiene inicio y fin sellados")
	assert.Equal(t, time.Hour, tiempos[produccion.EstacionCorte])
}
