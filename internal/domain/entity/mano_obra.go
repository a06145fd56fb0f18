package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManoObra representa un proceso de confección con tarifa plana (sin cantidad):
// un pantalón usa el proceso o no lo usa. Nombre es único.
type ManoObra struct {
	ID        int64
	Nombre    string
	Precio    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
