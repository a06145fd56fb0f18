package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pantalon representa un producto confeccionado a partir de una receta de
// insumos y mano de obra. PrecioUnitario es una foto del costo de la receta al
// momento del último create/update exitoso; no se recalcula al leer, y cambiar
// después el precio de un insumo no altera pantalones ya registrados.
//
// CantidadTotal debe coincidir con la suma de Tallas cuando ambas existen.
type Pantalon struct {
	ID             int64
	Nombre         string // único
	Tallas         map[string]int
	CantidadTotal  int64
	PrecioUnitario decimal.Decimal
	ImagenURL      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
