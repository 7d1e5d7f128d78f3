package ventas_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmfernandez/fabrica-api/internal/domain"
	"github.com/jmfernandez/fabrica-api/internal/domain/ventas"
)

var (
	eur = ventas.Moneda{Codigo: "EUR", Simbolo: "€"}
	usd = ventas.Moneda{Codigo: "USD", Simbolo: "$"}
)

func money(t *testing.T, importe string, moneda ventas.Moneda) ventas.Money {
	t.Helper()
	m, err := ventas.NuevoMoney(importe, moneda)
	require.NoError(t, err)
	return m
}

func TestMoney_SumarMismaMoneda(t *testing.T) {
	total, err := money(t, "100.50", eur).Sumar(money(t, "49.50", eur))
	require.NoError(t, err)
	assert.True(t, total.Importe.Equal(decimal.RequireFromString("150.00")))
}

// TestMoney_SumarMonedaDistinta: la aritmética entre divisas distintas falla
// en lugar de convertir o coercer silenciosamente.
func TestMoney_SumarMonedaDistinta(t *testing.T) {
	_, err := money(t, "100", eur).Sumar(money(t, "100", usd))
	assert.ErrorIs(t, err, domain.ErrMonedaDistinta)
}

func TestMoney_Multiplicar(t *testing.T) {
	total := money(t, "12.50", eur).Multiplicar(decimal.NewFromInt(4))
	assert.True(t, total.Importe.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "€50.00 EUR", total.String())
}

func TestNuevoMoney_ImporteInvalido(t *testing.T) {
	_, err := ventas.NuevoMoney("doce", eur)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrdenVenta_TotalYEstado(t *testing.T) {
	cliente := &ventas.Cliente{ID: "CLI-01", Nombre: "Muebles del Norte"}
	orden := ventas.NuevaOrdenVenta("OV-100", cliente, eur)
	assert.Equal(t, ventas.OrdenCreada, orden.Estado)

	require.NoError(t, orden.AgregarLinea(ventas.LineaOrdenVenta{
		SKU: "MOD-3P", Descripcion: "Módulo 3 plazas", Cantidad: 2,
		PrecioUnitario: money(t, "450.00", eur),
	}))
	require.NoError(t, orden.AgregarLinea(ventas.LineaOrdenVenta{
		SKU: "MOD-CHL", Descripcion: "Chaise longue", Cantidad: 1,
		PrecioUnitario: money(t, "520.25", eur),
	}))

	total := orden.Total()
	assert.True(t, total.Importe.Equal(decimal.RequireFromString("1420.25")), "2×450 + 520.25")
	assert.Equal(t, eur, total.Moneda)

	orden.ActualizarEstado(ventas.OrdenEnProduccion)
	assert.Equal(t, ventas.OrdenEnProduccion, orden.Estado)
}

// TestOrdenVenta_LineaEnOtraMoneda: una línea en divisa distinta a la de la
// orden se rechaza sin añadirse.
func TestOrdenVenta_LineaEnOtraMoneda(t *testing.T) {
	orden := ventas.NuevaOrdenVenta("OV-101", &ventas.Cliente{ID: "CLI-02"}, eur)

	err := orden.AgregarLinea(ventas.LineaOrdenVenta{
		SKU: "MOD-3P", Cantidad: 1, PrecioUnitario: money(t, "450", usd),
	})
	assert.ErrorIs(t, err, domain.ErrMonedaDistinta)
	assert.Empty(t, orden.Lineas)
}
