package dto

// MonedaDTO divisa de una orden de venta.
type MonedaDTO struct {
	Codigo  string `json:"codigo"`
	Simbolo string `json:"simbolo"`
}

// LineaVentaDTO línea de una orden de venta; el precio va como string decimal
// para no perder precisión en el transporte.
type LineaVentaDTO struct {
	SKU            string `json:"sku"`
	Descripcion    string `json:"descripcion"`
	Cantidad       int    `json:"cantidad"`
	PrecioUnitario string `json:"precio_unitario"`
}

// CrearOrdenVentaRequest alta de una orden de venta en una única divisa.
type CrearOrdenVentaRequest struct {
	Numero  string          `json:"numero"`
	Cliente string          `json:"cliente"`
	Moneda  MonedaDTO       `json:"moneda"`
	Lineas  []LineaVentaDTO `json:"lineas"`
}

// ActualizarEstadoVentaRequest cambio de estado comercial de la orden.
type ActualizarEstadoVentaRequest struct {
	Estado string `json:"estado"`
}

// OrdenVentaResponse resumen de la orden con su total en la divisa de la orden.
type OrdenVentaResponse struct {
	Numero  string `json:"numero"`
	Cliente string `json:"cliente"`
	Estado  string `json:"estado"`
	Total   string `json:"total"`
	Lineas  int    `json:"lineas"`
}
