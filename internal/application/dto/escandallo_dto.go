package dto

import "time"

// ReglaDTO define la regla de cálculo de un tipo de material.
// Regla admite los tipos incorporados "tejido" y "relleno".
type ReglaDTO struct {
	TipoMaterial string  `json:"tipo_material"`
	Regla        string  `json:"regla"`
	AnchoRollo   float64 `json:"ancho_rollo,omitempty"` // regla tejido
	Densidad     float64 `json:"densidad,omitempty"`    // regla relleno
}

// MaterialDTO línea de material de un escandallo.
type MaterialDTO struct {
	Nombre       string             `json:"nombre"`
	TipoMaterial string             `json:"tipo_material"`
	CosteUnidad  float64            `json:"coste_unidad"`
	Cantidad     float64            `json:"cantidad,omitempty"`
	Metadata     map[string]float64 `json:"metadata,omitempty"`
}

// ManoObraDTO línea de mano de obra.
type ManoObraDTO struct {
	Nombre     string  `json:"nombre"`
	TarifaHora float64 `json:"tarifa_hora"`
	Horas      float64 `json:"horas"`
}

// HerrajeDTO línea de herraje.
type HerrajeDTO struct {
	Nombre      string  `json:"nombre"`
	CosteUnidad float64 `json:"coste_unidad"`
	Cantidad    float64 `json:"cantidad"`
}

// TiempoDTO minutos de un proceso, informativo.
type TiempoDTO struct {
	Nombre  string  `json:"nombre"`
	Minutos float64 `json:"minutos"`
}

// CrearEscandalloRequest alta de un escandallo de módulo.
type CrearEscandalloRequest struct {
	ModuloID   string             `json:"modulo_id"`
	Medidas    map[string]float64 `json:"medidas"`
	Reglas     []ReglaDTO         `json:"reglas"`
	Materiales []MaterialDTO      `json:"materiales"`
	ManoObra   []ManoObraDTO      `json:"mano_obra,omitempty"`
	Herrajes   []HerrajeDTO       `json:"herrajes,omitempty"`
	Tiempos    []TiempoDTO        `json:"tiempos,omitempty"`
}

// ActualizarMedidasRequest fusiona medidas y recalcula.
type ActualizarMedidasRequest struct {
	Medidas map[string]float64 `json:"medidas"`
}

// ActualizarMaterialRequest cambia coste y/o metadatos de un material y recalcula.
type ActualizarMaterialRequest struct {
	CosteUnidad *float64           `json:"coste_unidad,omitempty"`
	Metadata    map[string]float64 `json:"metadata,omitempty"`
}

// EscandalloResponse desglose completo más tipos de material sin regla.
type EscandalloResponse struct {
	Datos    map[string]any `json:"datos"`
	SinRegla []string       `json:"sin_regla,omitempty"`
}

// SnapshotDTO apunte del historial de recálculos.
type SnapshotDTO struct {
	Fecha  time.Time      `json:"fecha"`
	Motivo string         `json:"motivo"`
	Datos  map[string]any `json:"datos"`
}
