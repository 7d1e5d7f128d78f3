package dto

import "time"

// RegistrarMovimientoRequest alta de un movimiento de stock.
// Para Entrada/Salida la cantidad es no negativa; para Ajuste es un delta con signo.
type RegistrarMovimientoRequest struct {
	TipoStock    string `json:"tipo_stock"`    // MateriaPrima, Modulo, ProductoTerminado
	Tipo         string `json:"tipo"`          // Entrada, Salida, Ajuste
	Cantidad     int    `json:"cantidad"`
	Almacen      string `json:"almacen"`
	Estanteria   string `json:"estanteria"`
	CompraID     string `json:"compra_id,omitempty"`
	ProduccionID string `json:"produccion_id,omitempty"`
	Nota         string `json:"nota,omitempty"`
}

// MovimientoDTO representación de salida de un movimiento.
type MovimientoDTO struct {
	ID           string    `json:"id"`
	TipoStock    string    `json:"tipo_stock"`
	Tipo         string    `json:"tipo"`
	Cantidad     int       `json:"cantidad"`
	Ubicacion    string    `json:"ubicacion"`
	Fecha        time.Time `json:"fecha"`
	CompraID     string    `json:"compra_id,omitempty"`
	ProduccionID string    `json:"produccion_id,omitempty"`
	Nota         string    `json:"nota,omitempty"`
}
