package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInsumoRequest entrada para crear un insumo.
type CreateInsumoRequest struct {
	Nombre         string          `json:"nombre" validate:"required,min=1,max=200"`
	Tipo           string          `json:"tipo" validate:"required"`
	UnidadMedida   string          `json:"unidad_medida" validate:"required"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Proveedor      *string         `json:"proveedor"`
}

// UpdateInsumoRequest entrada para actualizar un insumo (campos opcionales).
type UpdateInsumoRequest struct {
	Nombre         *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Tipo           *string          `json:"tipo"`
	UnidadMedida   *string          `json:"unidad_medida"`
	Cantidad       *decimal.Decimal `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario"`
	Proveedor      *string          `json:"proveedor"`
}

// CompraInsumoRequest entrada para registrar una compra (reposición con
// promedio ponderado). Cantidad debe ser > 0 y PrecioUnitario >= 0.
type CompraInsumoRequest struct {
	Cantidad       decimal.Decimal `json:"cantidad" validate:"required"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// InsumoResponse salida de un insumo.
type InsumoResponse struct {
	ID             int64           `json:"id"`
	Nombre         string          `json:"nombre"`
	Tipo           string          `json:"tipo"`
	UnidadMedida   string          `json:"unidad_medida"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Estado         *string         `json:"estado"`
	Proveedor      *string         `json:"proveedor"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// InsumoListResponse lista paginada de insumos.
type InsumoListResponse struct {
	Items []InsumoResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// MovimientoResponse salida de un movimiento de stock.
type MovimientoResponse struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	InsumoID      int64           `json:"insumo_id"`
	Tipo          string          `json:"tipo"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	CostoTotal    decimal.Decimal `json:"costo_total"`
	Fecha         time.Time       `json:"fecha"`
}
