package ventas

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jmfernandez/fabrica-api/internal/domain"
)

// Moneda identifica la divisa de un importe.
type Moneda struct {
	Codigo  string // ISO 4217, ej. EUR
	Simbolo string
}

// Money es un importe con divisa. La aritmética es solo entre importes de la
// misma divisa: no hay conversión ni coerción silenciosa.
type Money struct {
	Importe decimal.Decimal
	Moneda  Moneda
}

// NuevoMoney construye un importe desde un string decimal.
func NuevoMoney(importe string, moneda Moneda) (Money, error) {
	d, err := decimal.NewFromString(importe)
	if err != nil {
		return Money{}, fmt.Errorf("importe %q: %w", importe, domain.ErrInvalidInput)
	}
	return Money{Importe: d, Moneda: moneda}, nil
}

// Sumar devuelve la suma de dos importes de la misma divisa; falla con
// domain.ErrMonedaDistinta si las divisas no coinciden.
func (m Money) Sumar(otro Money) (Money, error) {
	if m.Moneda != otro.Moneda {
		return Money{}, fmt.Errorf("%s + %s: %w", m.Moneda.Codigo, otro.Moneda.Codigo, domain.ErrMonedaDistinta)
	}
	return Money{Importe: m.Importe.Add(otro.Importe), Moneda: m.Moneda}, nil
}

// Multiplicar escala el importe por un factor.
func (m Money) Multiplicar(factor decimal.Decimal) Money {
	return Money{Importe: m.Importe.Mul(factor), Moneda: m.Moneda}
}

// String formatea el importe como "símbolo + valor + código" para informes.
func (m Money) String() string {
	return fmt.Sprintf("%s%s %s", m.Moneda.Simbolo, m.Importe.StringFixed(2), m.Moneda.Codigo)
}
