package dto

import "time"

// ModuloDTO línea de un pedido.
type ModuloDTO struct {
	SKU         string `json:"sku"`
	Descripcion string `json:"descripcion"`
	Cantidad    int    `json:"cantidad"`
}

// CrearPedidoRequest alta de un pedido de venta.
type CrearPedidoRequest struct {
	ID      string      `json:"id"`
	Cliente string      `json:"cliente"`
	Modulos []ModuloDTO `json:"modulos"`
}

// CrearOrdenRequest alta de una orden de producción sobre un pedido existente.
// Sin estaciones explícitas se siguen las cuatro por defecto.
type CrearOrdenRequest struct {
	PedidoID   string   `json:"pedido_id"`
	Estaciones []string `json:"estaciones,omitempty"`
}

// MomentoRequest momento opcional para sellar inicio o fin de estación.
type MomentoRequest struct {
	Momento *time.Time `json:"momento,omitempty"`
}

// OrdenResponse estado de una orden de producción.
type OrdenResponse struct {
	ID         string            `json:"id"`
	PedidoID   string            `json:"pedido_id"`
	Estaciones map[string]string `json:"estaciones"`
}

// TiemposResponse informe de tiempos reales por estación, en segundos.
type TiemposResponse struct {
	OrdenID string             `json:"orden_id"`
	Tiempos map[string]float64 `json:"tiempos_segundos"`
}
