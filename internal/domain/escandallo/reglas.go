package escandallo

// ReglaMaterial calcula la cantidad requerida de un material a partir de las
// medidas del módulo y de los metadatos del propio material. Las reglas son
// funciones puras sin estado y se despachan por la clave material_type, de
// modo que pueden añadirse tipos nuevos sin tocar el motor.
type ReglaMaterial interface {
	CalcularCantidad(medidas map[string]float64, material *ItemMaterial) float64
}

// RegistroReglas asocia cada tipo de material con su regla de cálculo.
// Se construye explícitamente al arrancar y después se usa en modo lectura;
// no hay registro global mutable.
type RegistroReglas struct {
	reglas map[string]ReglaMaterial
}

// NuevoRegistroReglas crea un registro vacío.
func NuevoRegistroReglas() *RegistroReglas {
	return &RegistroReglas{reglas: make(map[string]ReglaMaterial)}
}

// Registrar asocia una regla a un tipo de material, reemplazando la anterior.
func (r *RegistroReglas) Registrar(tipoMaterial string, regla ReglaMaterial) {
	r.reglas[tipoMaterial] = regla
}

// Obtener devuelve la regla para un tipo de material, si existe.
func (r *RegistroReglas) Obtener(tipoMaterial string) (ReglaMaterial, bool) {
	regla, ok := r.reglas[tipoMaterial]
	return regla, ok
}

// ReglaTejido calcula metros de tejido: superficie frontal más lateral con
// margen de costura, multiplicado por capas y dividido por el ancho del rollo.
type ReglaTejido struct {
	AnchoRollo float64
}

func (r ReglaTejido) CalcularCantidad(medidas map[string]float64, material *ItemMaterial) float64 {
	ancho := medidas["width"]
	alto := medidas["height"]
	fondo := medidas["depth"]
	margen := material.Metadata["seam_allowance"]
	capas, ok := material.Metadata["layers"]
	if !ok {
		capas = 1
	}

	superficie := (ancho + margen) * (alto + margen)
	lateral := (fondo + margen) * (alto + margen)
	areaTotal := (superficie + lateral) * capas

	anchoRollo := r.AnchoRollo
	if anchoRollo < 1 {
		anchoRollo = 1
	}
	return areaTotal / anchoRollo
}

// ReglaRelleno calcula kilos de relleno a partir del volumen del módulo y la
// densidad del material (volumen × densidad / 1000).
type ReglaRelleno struct {
	Densidad float64
}

func (r ReglaRelleno) CalcularCantidad(medidas map[string]float64, material *ItemMaterial) float64 {
	volumen := medidas["width"] * medidas["height"] * medidas["depth"]
	return volumen * r.Densidad / 1000
}
