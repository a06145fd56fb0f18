package repository

import "github.com/tu-usuario/confeccion-api/internal/domain/entity"

// MovimientoRepository define el puerto del registro de auditoría de stock.
type MovimientoRepository interface {
	Create(mov *entity.Movimiento) error
	ListByInsumo(insumoID int64, limit, offset int) ([]*entity.Movimiento, error)
}
