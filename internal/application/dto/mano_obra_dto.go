package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateManoObraRequest entrada para crear un proceso de mano de obra.
type CreateManoObraRequest struct {
	Nombre string          `json:"nombre" validate:"required,min=1,max=200"`
	Precio decimal.Decimal `json:"precio"`
}

// UpdateManoObraRequest entrada para actualizar un proceso (campos opcionales).
type UpdateManoObraRequest struct {
	Nombre *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Precio *decimal.Decimal `json:"precio"`
}

// ManoObraResponse salida de un proceso de mano de obra.
type ManoObraResponse struct {
	ID        int64           `json:"id"`
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ManoObraListResponse lista paginada de procesos.
type ManoObraListResponse struct {
	Items []ManoObraResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
