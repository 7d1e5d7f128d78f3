package dto

// PlanificarRequest entrada de una corrida de planificación de materiales.
// El BOM es opcional y de un solo nivel: padre → componente → cantidad por padre.
type PlanificarRequest struct {
	Demanda map[string]int            `json:"demanda"`
	Stock   map[string]int            `json:"stock"`
	BOM     map[string]map[string]int `json:"bom,omitempty"`
}

// RequerimientoDTO requerimiento neto de un ítem.
type RequerimientoDTO struct {
	Item              string `json:"item"`
	Demanda           int    `json:"demanda"`
	Stock             int    `json:"stock"`
	RequerimientoNeto int    `json:"requerimiento_neto"`
}
