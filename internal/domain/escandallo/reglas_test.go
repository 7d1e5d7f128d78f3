package escandallo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmfernandez/fabrica-api/internal/domain/escandallo"
)

const toleranciaCantidad = 1e-6

// Vector de referencia del tejido, calculado a mano:
//
//	superficie = (200+5) × (90+5)  = 19475
//	lateral    = (95+5)  × (90+5)  = 9500
//	cantidad   = (19475+9500) × 2 / 140 = 413.92857142857...
func TestReglaTejido_VectorExacto(t *testing.T) {
	regla := escandallo.ReglaTejido{AnchoRollo: 140}
	medidas := map[string]float64{"width": 200, "height": 90, "depth": 95}
	material := &escandallo.ItemMaterial{
		Nombre:       "lino-natural",
		TipoMaterial: "tejido",
		Metadata:     map[string]float64{"seam_allowance": 5, "layers": 2},
	}

	cantidad := regla.CalcularCantidad(medidas, material)
	assert.InDelta(t, 28975.0*2/140, cantidad, toleranciaCantidad)
}

// TestReglaTejido_Defaults verifica los valores por omisión: medidas y margen
// ausentes valen 0, capas ausentes valen 1.
func TestReglaTejido_Defaults(t *testing.T) {
	regla := escandallo.ReglaTejido{AnchoRollo: 140}
	material := &escandallo.ItemMaterial{Nombre: "tela", TipoMaterial: "tejido"}

	cantidad := regla.CalcularCantidad(map[string]float64{"width": 100, "height": 50}, material)
	// superficie = 100×50 = 5000; lateral = 0×50 = 0; capas = 1
	assert.InDelta(t, 5000.0/140, cantidad, toleranciaCantidad)
}

// TestReglaTejido_AnchoRolloMinimo asegura el divisor max(ancho_rollo, 1) para
// no dividir por cero ni por anchos absurdos.
func TestReglaTejido_AnchoRolloMinimo(t *testing.T) {
	regla := escandallo.ReglaTejido{AnchoRollo: 0}
	material := &escandallo.ItemMaterial{Nombre: "tela", TipoMaterial: "tejido"}
	medidas := map[string]float64{"width": 10, "height": 10}

	cantidad := regla.CalcularCantidad(medidas, material)
	assert.InDelta(t, 100.0, cantidad, toleranciaCantidad, "divisor mínimo 1")
}

// Vector de referencia del relleno: volumen = 200×90×95 = 1.710.000;
// cantidad = 1.710.000 × 0.03 / 1000 = 51.3.
func TestReglaRelleno_VectorExacto(t *testing.T) {
	regla := escandallo.ReglaRelleno{Densidad: 0.03}
	medidas := map[string]float64{"width": 200, "height": 90, "depth": 95}
	material := &escandallo.ItemMaterial{Nombre: "espuma", TipoMaterial: "relleno"}

	cantidad := regla.CalcularCantidad(medidas, material)
	assert.InDelta(t, 51.3, cantidad, toleranciaCantidad)
}

func TestRegistroReglas_RegistrarYObtener(t *testing.T) {
	registro := escandallo.NuevoRegistroReglas()
	registro.Registrar("tejido", escandallo.ReglaTejido{AnchoRollo: 140})

	_, ok := registro.Obtener("tejido")
	assert.True(t, ok)

	_, ok = registro.Obtener("madera")
	assert.False(t, ok, "tipos sin regla no deben resolverse")
}
