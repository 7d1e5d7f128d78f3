package mrp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmfernandez/fabrica-api/internal/domain/mrp"
)

// TestPlanificar_NeteoBasico verifica requerimiento_neto = max(demanda-stock, 0)
// sin BOM de por medio.
func TestPlanificar_NeteoBasico(t *testing.T) {
	demanda := map[string]int{"tela-lino": 120, "espuma-hr35": 40}
	stock := map[string]int{"tela-lino": 50, "espuma-hr35": 90}

	reqs := mrp.Planificar(demanda, stock, nil)

	require.Len(t, reqs, 2)
	assert.Equal(t, 70, reqs["tela-lino"].RequerimientoNeto)
	assert.Equal(t, 0, reqs["espuma-hr35"].RequerimientoNeto, "stock sobrante nunca produce neto negativo")
}

// TestPlanificar_ExpansionBOM reproduce el caso de referencia: 10 sofás con
// 8 unidades de tela por sofá y 50 en stock dejan neto 30 de tela y 10 de sofá.
func TestPlanificar_ExpansionBOM(t *testing.T) {
	demanda := map[string]int{"sofa": 10}
	stock := map[string]int{"tela": 50}
	bom := mrp.BOM{"sofa": {"tela": 8}}

	reqs := mrp.Planificar(demanda, stock, bom)

	require.Len(t, reqs, 2)

	tela := reqs["tela"]
	assert.Equal(t, 80, tela.Demanda)
	assert.Equal(t, 50, tela.Stock)
	assert.Equal(t, 30, tela.RequerimientoNeto)

	sofa := reqs["sofa"]
	assert.Equal(t, 10, sofa.Demanda)
	assert.Equal(t, 0, sofa.Stock, "ítems ausentes del stock se tratan como cero")
	assert.Equal(t, 10, sofa.RequerimientoNeto)
}

// TestPlanificar_ExpansionAditiva comprueba que la demanda directa de un
// componente se acumula con la inducida por su padre.
func TestPlanificar_ExpansionAditiva(t *testing.T) {
	demanda := map[string]int{"sofa": 5, "tela": 12}
	stock := map[string]int{}
	bom := mrp.BOM{"sofa": {"tela": 8}}

	reqs := mrp.Planificar(demanda, stock, bom)

	assert.Equal(t, 52, reqs["tela"].Demanda, "12 directas + 5×8 inducidas")
	assert.Equal(t, 52, reqs["tela"].RequerimientoNeto)
}

// TestPlanificar_UnSoloNivel asegura que los componentes que a su vez son
// padres en el BOM no se vuelven a expandir.
func TestPlanificar_UnSoloNivel(t *testing.T) {
	demanda := map[string]int{"sofa": 2}
	bom := mrp.BOM{
		"sofa":   {"modulo": 3},
		"modulo": {"tela": 4},
	}

	reqs := mrp.Planificar(demanda, map[string]int{}, bom)

	require.Contains(t, reqs, "modulo")
	assert.NotContains(t, reqs, "tela", "la explosión es de un solo nivel")
	assert.Equal(t, 6, reqs["modulo"].RequerimientoNeto)
}

func TestPlanificar_StockSinDemandaSeOmite(t *testing.T) {
	reqs := mrp.Planificar(map[string]int{"sofa": 1}, map[string]int{"patas": 200}, nil)

	assert.NotContains(t, reqs, "patas")
	assert.Len(t, reqs, 1)
}

// TestPlanificar_NetoNuncaNegativo recorre varios pares demanda/stock y
// confirma la propiedad de no negatividad.
func TestPlanificar_NetoNuncaNegativo(t *testing.T) {
	casos := []struct{ demanda, stock int }{
		{0, 0}, {0, 10}, {10, 0}, {10, 10}, {3, 100},
	}
	for _, c := range casos {
		reqs := mrp.Planificar(map[string]int{"x": c.demanda}, map[string]int{"x": c.stock}, nil)
		assert.GreaterOrEqual(t, reqs["x"].RequerimientoNeto, 0)
	}
}
