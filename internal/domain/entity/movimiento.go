package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock de insumos.
const (
	MovimientoSALIDA  = "SALIDA"  // descuento por producción
	MovimientoENTRADA = "ENTRADA" // reposición por update/delete de producción
	MovimientoCOMPRA  = "COMPRA"  // compra a proveedor (promedio ponderado)
)

// Movimiento es el registro de auditoría de cada mutación de stock de un
// insumo. Se escribe dentro de la misma transacción que la mutación;
// TransactionID agrupa todos los movimientos de una misma operación.
type Movimiento struct {
	ID            string
	TransactionID string
	InsumoID      int64
	Tipo          string
	Cantidad      decimal.Decimal // con signo: negativa en SALIDA
	CostoUnitario decimal.Decimal
	CostoTotal    decimal.Decimal
	Fecha         time.Time
	CreatedAt     time.Time
}
