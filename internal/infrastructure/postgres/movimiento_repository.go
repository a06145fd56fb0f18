package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/confeccion-api/internal/domain/entity"
	"github.com/tu-usuario/confeccion-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación de MovimientoRepository sobre PostgreSQL (usable con pool o tx).
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *MovimientoRepo) Create(mov *entity.Movimiento) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos (id, transaction_id, insumo_id, tipo, cantidad, costo_unitario, costo_total, fecha, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.TransactionID, mov.InsumoID, mov.Tipo,
		mov.Cantidad, mov.CostoUnitario, mov.CostoTotal, mov.Fecha, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", err)
	}
	return nil
}

// ListByInsumo lista los movimientos de un insumo, del más reciente al más antiguo.
func (r *MovimientoRepo) ListByInsumo(insumoID int64, limit, offset int) ([]*entity.Movimiento, error) {
	query := `
		SELECT id, transaction_id, insumo_id, tipo, cantidad, costo_unitario, costo_total, fecha, created_at
		FROM movimientos WHERE insumo_id = $1 ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, insumoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.InsumoID, &m.Tipo,
			&m.Cantidad, &m.CostoUnitario, &m.CostoTotal, &m.Fecha, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
