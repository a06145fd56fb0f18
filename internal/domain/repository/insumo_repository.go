package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/confeccion-api/internal/domain/entity"
)

// InsumoRepository define el puerto de persistencia de insumos.
// GetByID/GetForUpdate devuelven (nil, nil) si el insumo no existe.
type InsumoRepository interface {
	Create(insumo *entity.Insumo) error
	GetByID(id int64) (*entity.Insumo, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Solo tiene
	// sentido dentro de una transacción del caller: el lock se libera en el
	// Commit/Rollback de esa transacción.
	GetForUpdate(id int64) (*entity.Insumo, error)
	List(limit, offset int) ([]*entity.Insumo, error)
	Update(insumo *entity.Insumo) error
	// UpdateStock actualiza cantidad, precio unitario y estado derivado en una
	// sola escritura (usado por el ledger dentro de transacciones).
	UpdateStock(id int64, cantidad, precioUnitario decimal.Decimal, estado string) error
	Delete(id int64) error
}
