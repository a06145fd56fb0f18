package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/confeccion-api/internal/domain/entity"
	"github.com/tu-usuario/confeccion-api/internal/domain/repository"
)

var _ repository.RecetaRepository = (*RecetaRepo)(nil)

// RecetaRepo implementación de RecetaRepository sobre PostgreSQL (usable con pool o tx).
// Maneja las dos tablas de asociación propiedad del pantalón:
// receta_insumos (con cantidad por unidad) y receta_mano_obra (sin cantidad).
type RecetaRepo struct {
	q Querier
}

// NewRecetaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecetaRepository(q Querier) *RecetaRepo {
	return &RecetaRepo{q: q}
}

// GetInsumosByPantalon devuelve las filas de receta de insumos de un pantalón.
func (r *RecetaRepo) GetInsumosByPantalon(pantalonID int64) ([]*entity.RecetaInsumo, error) {
	query := `
		SELECT pantalon_id, insumo_id, cantidad_por_unidad
		FROM receta_insumos WHERE pantalon_id = $1 ORDER BY insumo_id`
	rows, err := r.q.Query(context.Background(), query, pantalonID)
	if err != nil {
		return nil, fmt.Errorf("get receta insumos: %w", err)
	}
	defer rows.Close()
	var list []*entity.RecetaInsumo
	for rows.Next() {
		var e entity.RecetaInsumo
		if err := rows.Scan(&e.PantalonID, &e.InsumoID, &e.CantidadPorUnidad); err != nil {
			return nil, fmt.Errorf("scan receta insumo: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// GetManoObraByPantalon devuelve las filas de mano de obra de un pantalón.
func (r *RecetaRepo) GetManoObraByPantalon(pantalonID int64) ([]*entity.RecetaManoObra, error) {
	query := `
		SELECT pantalon_id, mano_obra_id
		FROM receta_mano_obra WHERE pantalon_id = $1 ORDER BY mano_obra_id`
	rows, err := r.q.Query(context.Background(), query, pantalonID)
	if err != nil {
		return nil, fmt.Errorf("get receta mano de obra: %w", err)
	}
	defer rows.Close()
	var list []*entity.RecetaManoObra
	for rows.Next() {
		var f entity.RecetaManoObra
		if err := rows.Scan(&f.PantalonID, &f.ManoObraID); err != nil {
			return nil, fmt.Errorf("scan receta mano de obra: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// ReplaceInsumos borra las filas actuales del pantalón e inserta el juego nuevo.
func (r *RecetaRepo) ReplaceInsumos(pantalonID int64, entradas []*entity.RecetaInsumo) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM receta_insumos WHERE pantalon_id = $1`, pantalonID); err != nil {
		return fmt.Errorf("clear receta insumos: %w", err)
	}
	for _, e := range entradas {
		_, err := r.q.Exec(ctx,
			`INSERT INTO receta_insumos (pantalon_id, insumo_id, cantidad_por_unidad) VALUES ($1, $2, $3)`,
			pantalonID, e.InsumoID, e.CantidadPorUnidad,
		)
		if err != nil {
			return fmt.Errorf("insert receta insumo: %w", err)
		}
	}
	return nil
}

// ReplaceManoObra borra las filas actuales del pantalón e inserta el juego nuevo.
func (r *RecetaRepo) ReplaceManoObra(pantalonID int64, manoObraIDs []int64) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM receta_mano_obra WHERE pantalon_id = $1`, pantalonID); err != nil {
		return fmt.Errorf("clear receta mano de obra: %w", err)
	}
	for _, id := range manoObraIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO receta_mano_obra (pantalon_id, mano_obra_id) VALUES ($1, $2)`,
			pantalonID, id,
		)
		if err != nil {
			return fmt.Errorf("insert receta mano de obra: %w", err)
		}
	}
	return nil
}

// DeleteByPantalon elimina todas las asociaciones de un pantalón.
func (r *RecetaRepo) DeleteByPantalon(pantalonID int64) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM receta_mano_obra WHERE pantalon_id = $1`, pantalonID); err != nil {
		return fmt.Errorf("delete receta mano de obra: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM receta_insumos WHERE pantalon_id = $1`, pantalonID); err != nil {
		return fmt.Errorf("delete receta insumos: %w", err)
	}
	return nil
}

// CountByInsumo cuenta cuántas recetas referencian un insumo (guarda referencial).
func (r *RecetaRepo) CountByInsumo(insumoID int64) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM receta_insumos WHERE insumo_id = $1`, insumoID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count receta por insumo: %w", err)
	}
	return n, nil
}

// CountByManoObra cuenta cuántas recetas referencian un proceso de mano de obra.
func (r *RecetaRepo) CountByManoObra(manoObraID int64) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM receta_mano_obra WHERE mano_obra_id = $1`, manoObraID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count receta por mano de obra: %w", err)
	}
	return n, nil
}
