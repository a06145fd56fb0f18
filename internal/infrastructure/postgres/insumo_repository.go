package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/confeccion-api/internal/domain"
	"github.com/tu-usuario/confeccion-api/internal/domain/entity"
	"github.com/tu-usuario/confeccion-api/internal/domain/repository"
)

var _ repository.InsumoRepository = (*InsumoRepo)(nil)

// InsumoRepo implementación de InsumoRepository sobre PostgreSQL (usable con pool o tx).
type InsumoRepo struct {
	q Querier
}

// NewInsumoRepository construye el adaptador de insumos. Pasar pool o tx (Querier).
func NewInsumoRepository(q Querier) *InsumoRepo {
	return &InsumoRepo{q: q}
}

const insumoColumns = `id, nombre, tipo, unidad_medida, cantidad, precio_unitario, estado, proveedor, created_at, updated_at`

// Create persiste un nuevo insumo y asigna el ID generado.
func (r *InsumoRepo) Create(ins *entity.Insumo) error {
	query := `
		INSERT INTO insumos (nombre, tipo, unidad_medida, cantidad, precio_unitario, estado, proveedor, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		ins.Nombre, ins.Tipo, ins.UnidadMedida, ins.Cantidad, ins.PrecioUnitario,
		ins.Estado, ins.Proveedor, ins.CreatedAt, ins.UpdatedAt,
	).Scan(&ins.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert insumo: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo por ID. Devuelve (nil, nil) si no existe.
func (r *InsumoRepo) GetByID(id int64) (*entity.Insumo, error) {
	query := `SELECT ` + insumoColumns + ` FROM insumos WHERE id = $1`
	ins, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get insumo: %w", err)
	}
	return ins, nil
}

// GetForUpdate obtiene un insumo y bloquea la fila (SELECT FOR UPDATE) hasta
// el Commit/Rollback de la transacción del caller. Devuelve (nil, nil) si no existe.
func (r *InsumoRepo) GetForUpdate(id int64) (*entity.Insumo, error) {
	query := `SELECT ` + insumoColumns + ` FROM insumos WHERE id = $1 FOR UPDATE`
	ins, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get insumo for update: %w", err)
	}
	return ins, nil
}

// List lista insumos con paginación.
func (r *InsumoRepo) List(limit, offset int) ([]*entity.Insumo, error) {
	query := `SELECT ` + insumoColumns + ` FROM insumos ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list insumos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Insumo
	for rows.Next() {
		var ins entity.Insumo
		if err := rows.Scan(&ins.ID, &ins.Nombre, &ins.Tipo, &ins.UnidadMedida, &ins.Cantidad,
			&ins.PrecioUnitario, &ins.Estado, &ins.Proveedor, &ins.CreatedAt, &ins.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan insumo: %w", err)
		}
		list = append(list, &ins)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos editables de un insumo.
func (r *InsumoRepo) Update(ins *entity.Insumo) error {
	query := `
		UPDATE insumos
		SET nombre = $2, tipo = $3, unidad_medida = $4, cantidad = $5,
		    precio_unitario = $6, estado = $7, proveedor = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ins.ID, ins.Nombre, ins.Tipo, ins.UnidadMedida, ins.Cantidad,
		ins.PrecioUnitario, ins.Estado, ins.Proveedor, ins.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update insumo: %w", err)
	}
	return nil
}

// UpdateStock actualiza cantidad, precio unitario y estado en una sola
// escritura (usado por el ledger dentro de transacciones).
func (r *InsumoRepo) UpdateStock(id int64, cantidad, precioUnitario decimal.Decimal, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE insumos SET cantidad = $2, precio_unitario = $3, estado = $4, updated_at = now() WHERE id = $1`,
		id, cantidad, precioUnitario, estado,
	)
	if err != nil {
		return fmt.Errorf("update stock insumo: %w", err)
	}
	return nil
}

// Delete elimina un insumo por ID.
func (r *InsumoRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM insumos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete insumo: %w", err)
	}
	return nil
}

func (r *InsumoRepo) scanOne(row pgx.Row) (*entity.Insumo, error) {
	var ins entity.Insumo
	err := row.Scan(&ins.ID, &ins.Nombre, &ins.Tipo, &ins.UnidadMedida, &ins.Cantidad,
		&ins.PrecioUnitario, &ins.Estado, &ins.Proveedor, &ins.CreatedAt, &ins.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ins, nil
}
