package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecetaInsumoInput una línea de receta: insumo y cantidad requerida por
// unidad producida (no cantidad absoluta).
type RecetaInsumoInput struct {
	InsumoID          int64           `json:"insumo_id" validate:"required"`
	CantidadPorUnidad decimal.Decimal `json:"cantidad_por_unidad" validate:"required"`
}

// CreatePantalonRequest entrada para crear un pantalón con su receta.
// El caller ya validó tipos y rangos básicos; el motor solo verifica sus
// invariantes cruzados (tallas vs cantidad, existencia, stock).
type CreatePantalonRequest struct {
	Nombre        string              `json:"nombre" validate:"required,min=1,max=200"`
	Tallas        map[string]int      `json:"tallas"`
	CantidadTotal int64               `json:"cantidad_total"`
	Insumos       []RecetaInsumoInput `json:"insumos"`
	ManoObra      []int64             `json:"mano_obra"`
	ImagenURL     *string             `json:"imagen_url"`
}

// UpdatePantalonRequest entrada para actualizar un pantalón (todo opcional).
// Insumos/ManoObra nil conservan la receta actual; un slice vacío la borra.
type UpdatePantalonRequest struct {
	Nombre        *string             `json:"nombre" validate:"omitempty,min=1,max=200"`
	Tallas        map[string]int      `json:"tallas"`
	CantidadTotal *int64              `json:"cantidad_total"`
	Insumos       []RecetaInsumoInput `json:"insumos"`
	ManoObra      []int64             `json:"mano_obra"`
	ImagenURL     *string             `json:"imagen_url"`
}

// RecetaInsumoDetalle línea de receta resuelta (con nombre y precio actual del insumo).
type RecetaInsumoDetalle struct {
	InsumoID          int64           `json:"insumo_id"`
	Nombre            string          `json:"nombre"`
	CantidadPorUnidad decimal.Decimal `json:"cantidad_por_unidad"`
	PrecioUnitario    decimal.Decimal `json:"precio_unitario"`
}

// ManoObraDetalle proceso de mano de obra resuelto.
type ManoObraDetalle struct {
	ManoObraID int64           `json:"mano_obra_id"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
}

// PantalonResponse salida de un pantalón con su receta resuelta.
type PantalonResponse struct {
	ID             int64                 `json:"id"`
	Nombre         string                `json:"nombre"`
	Tallas         map[string]int        `json:"tallas"`
	CantidadTotal  int64                 `json:"cantidad_total"`
	PrecioUnitario decimal.Decimal       `json:"precio_unitario"`
	ImagenURL      *string               `json:"imagen_url"`
	Insumos        []RecetaInsumoDetalle `json:"insumos"`
	ManoObra       []ManoObraDetalle     `json:"mano_obra"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// PantalonListResponse lista paginada de pantalones.
type PantalonListResponse struct {
	Items []PantalonResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
