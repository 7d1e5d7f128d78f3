package produccion

// Modulo es una línea de un pedido: un módulo de sofá con su cantidad.
type Modulo struct {
	SKU         string
	Descripcion string
	Cantidad    int
}

// Pedido es la entrada de ventas que origina una orden de producción.
// Llega ya formado desde la toma de pedidos y aquí es de solo lectura.
type Pedido struct {
	ID      string
	Cliente string
	Modulos []Modulo
}
