package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/confeccion-api/internal/domain"
	"github.com/tu-usuario/confeccion-api/internal/domain/entity"
	"github.com/tu-usuario/confeccion-api/internal/domain/repository"
)

var _ repository.ManoObraRepository = (*ManoObraRepo)(nil)

// ManoObraRepo implementación de ManoObraRepository sobre PostgreSQL (usable con pool o tx).
type ManoObraRepo struct {
	q Querier
}

// NewManoObraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewManoObraRepository(q Querier) *ManoObraRepo {
	return &ManoObraRepo{q: q}
}

// Create persiste un proceso de mano de obra y asigna el ID generado.
func (r *ManoObraRepo) Create(mo *entity.ManoObra) error {
	query := `
		INSERT INTO mano_obra (nombre, precio, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		mo.Nombre, mo.Precio, mo.CreatedAt, mo.UpdatedAt,
	).Scan(&mo.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert mano de obra: %w", err)
	}
	return nil
}

// GetByID obtiene un proceso por ID. Devuelve (nil, nil) si no existe.
func (r *ManoObraRepo) GetByID(id int64) (*entity.ManoObra, error) {
	query := `SELECT id, nombre, precio, created_at, updated_at FROM mano_obra WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get mano de obra")
}

// GetByNombre obtiene un proceso por nombre (único). Devuelve (nil, nil) si no existe.
func (r *ManoObraRepo) GetByNombre(nombre string) (*entity.ManoObra, error) {
	query := `SELECT id, nombre, precio, created_at, updated_at FROM mano_obra WHERE nombre = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, nombre), "get mano de obra por nombre")
}

// List lista procesos con paginación.
func (r *ManoObraRepo) List(limit, offset int) ([]*entity.ManoObra, error) {
	query := `SELECT id, nombre, precio, created_at, updated_at FROM mano_obra ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list mano de obra: %w", err)
	}
	defer rows.Close()
	var list []*entity.ManoObra
	for rows.Next() {
		var mo entity.ManoObra
		if err := rows.Scan(&mo.ID, &mo.Nombre, &mo.Precio, &mo.CreatedAt, &mo.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan mano de obra: %w", err)
		}
		list = append(list, &mo)
	}
	return list, rows.Err()
}

// Update actualiza un proceso existente.
func (r *ManoObraRepo) Update(mo *entity.ManoObra) error {
	query := `UPDATE mano_obra SET nombre = $2, precio = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, mo.ID, mo.Nombre, mo.Precio, mo.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update mano de obra: %w", err)
	}
	return nil
}

// Delete elimina un proceso por ID.
func (r *ManoObraRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM mano_obra WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete mano de obra: %w", err)
	}
	return nil
}

func (r *ManoObraRepo) scanOne(row pgx.Row, op string) (*entity.ManoObra, error) {
	var mo entity.ManoObra
	err := row.Scan(&mo.ID, &mo.Nombre, &mo.Precio, &mo.CreatedAt, &mo.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &mo, nil
}
