package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados derivados de un insumo. Estado siempre se recalcula con el
// clasificador al mutar Cantidad o Tipo; nunca se deja desactualizado.
const (
	EstadoDisponible = "available"
	EstadoBajoStock  = "low-stock"
	EstadoAgotado    = "out-of-stock"
)

// Insumo representa una materia prima del taller (tela, botones, hilo...).
// Cantidad y PrecioUnitario son decimales no negativos; PrecioUnitario se
// recalcula por promedio ponderado en cada compra.
type Insumo struct {
	ID             int64
	Nombre         string
	Tipo           string // categoría libre: "Tela", "Botones", ...
	UnidadMedida   string
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	Estado         *string
	Proveedor      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
