package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/confeccion-api/internal/domain"
	"github.com/tu-usuario/confeccion-api/internal/domain/entity"
	"github.com/tu-usuario/confeccion-api/internal/domain/repository"
)

var _ repository.PantalonRepository = (*PantalonRepo)(nil)

// PantalonRepo implementación de PantalonRepository sobre PostgreSQL (usable con pool o tx).
// Tallas se persiste como JSONB; las filas de receta se eliminan en cascada
// con el pantalón (FK ON DELETE CASCADE).
type PantalonRepo struct {
	q Querier
}

// NewPantalonRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPantalonRepository(q Querier) *PantalonRepo {
	return &PantalonRepo{q: q}
}

// Create persiste un nuevo pantalón con el precio ya calculado por el motor.
func (r *PantalonRepo) Create(p *entity.Pantalon) error {
	tallas, err := marshalTallas(p.Tallas)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO pantalones (nombre, tallas, cantidad_total, precio_unitario, imagen_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err = r.q.QueryRow(context.Background(), query,
		p.Nombre, tallas, p.CantidadTotal, p.PrecioUnitario, p.ImagenURL, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pantalon: %w", err)
	}
	return nil
}

// GetByID obtiene un pantalón por ID. Devuelve (nil, nil) si no existe.
func (r *PantalonRepo) GetByID(id int64) (*entity.Pantalon, error) {
	query := `
		SELECT id, nombre, tallas, cantidad_total, precio_unitario, imagen_url, created_at, updated_at
		FROM pantalones WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get pantalon")
}

// GetByNombre obtiene un pantalón por nombre (único). Devuelve (nil, nil) si no existe.
func (r *PantalonRepo) GetByNombre(nombre string) (*entity.Pantalon, error) {
	query := `
		SELECT id, nombre, tallas, cantidad_total, precio_unitario, imagen_url, created_at, updated_at
		FROM pantalones WHERE nombre = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, nombre), "get pantalon por nombre")
}

// List lista pantalones con paginación.
func (r *PantalonRepo) List(limit, offset int) ([]*entity.Pantalon, error) {
	query := `
		SELECT id, nombre, tallas, cantidad_total, precio_unitario, imagen_url, created_at, updated_at
		FROM pantalones ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pantalones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pantalon
	for rows.Next() {
		var p entity.Pantalon
		var tallas []byte
		if err := rows.Scan(&p.ID, &p.Nombre, &tallas, &p.CantidadTotal, &p.PrecioUnitario,
			&p.ImagenURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pantalon: %w", err)
		}
		if err := unmarshalTallas(tallas, &p); err != nil {
			return nil, err
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los campos de un pantalón (incluida la foto de precio del motor).
func (r *PantalonRepo) Update(p *entity.Pantalon) error {
	tallas, err := marshalTallas(p.Tallas)
	if err != nil {
		return err
	}
	query := `
		UPDATE pantalones
		SET nombre = $2, tallas = $3, cantidad_total = $4, precio_unitario = $5, imagen_url = $6, updated_at = $7
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, tallas, p.CantidadTotal, p.PrecioUnitario, p.ImagenURL, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update pantalon: %w", err)
	}
	return nil
}

// Delete elimina un pantalón por ID. Las filas de receta caen en cascada.
func (r *PantalonRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pantalones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pantalon: %w", err)
	}
	return nil
}

func (r *PantalonRepo) scanOne(row pgx.Row, op string) (*entity.Pantalon, error) {
	var p entity.Pantalon
	var tallas []byte
	err := row.Scan(&p.ID, &p.Nombre, &tallas, &p.CantidadTotal, &p.PrecioUnitario,
		&p.ImagenURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := unmarshalTallas(tallas, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func marshalTallas(tallas map[string]int) ([]byte, error) {
	if tallas == nil {
		return nil, nil
	}
	b, err := json.Marshal(tallas)
	if err != nil {
		return nil, fmt.Errorf("marshal tallas: %w", err)
	}
	return b, nil
}

func unmarshalTallas(b []byte, p *entity.Pantalon) error {
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, &p.Tallas); err != nil {
		return fmt.Errorf("unmarshal tallas: %w", err)
	}
	return nil
}
