package escandallo

// ItemMaterial es una línea de material del escandallo. La cantidad es un
// valor derivado: la sobrescribe la regla de su tipo en cada recálculo.
type ItemMaterial struct {
	Nombre       string
	TipoMaterial string
	CosteUnidad  float64
	Cantidad     float64
	Metadata     map[string]float64 // parámetros numéricos: seam_allowance, layers, density...
}

// CosteTotal devuelve coste unitario × cantidad.
func (m *ItemMaterial) CosteTotal() float64 {
	return m.CosteUnidad * m.Cantidad
}

// ItemManoObra es una línea de mano de obra sin regla de derivación.
type ItemManoObra struct {
	Nombre     string
	TarifaHora float64
	Horas      float64
}

// CosteTotal devuelve tarifa × horas.
func (m *ItemManoObra) CosteTotal() float64 {
	return m.TarifaHora * m.Horas
}

// ItemHerraje es una línea de herraje o accesorio sin regla de derivación.
type ItemHerraje struct {
	Nombre      string
	CosteUnidad float64
	Cantidad    float64
}

// CosteTotal devuelve coste unitario × cantidad.
func (h *ItemHerraje) CosteTotal() float64 {
	return h.CosteUnidad * h.Cantidad
}

// TiempoProceso anota minutos de un proceso productivo; viaja en el snapshot
// para analítica, sin participar en el coste.
type TiempoProceso struct {
	Nombre  string
	Minutos float64
}
