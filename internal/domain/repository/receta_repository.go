package repository

import "github.com/tu-usuario/confeccion-api/internal/domain/entity"

// RecetaRepository define el puerto de las tablas de asociación
// receta_insumos y receta_mano_obra. Las filas son propiedad del pantalón:
// registros planos con clave (pantalon_id, insumo_id) / (pantalon_id, mano_obra_id),
// sin grafos en memoria ni referencias cruzadas.
type RecetaRepository interface {
	GetInsumosByPantalon(pantalonID int64) ([]*entity.RecetaInsumo, error)
	GetManoObraByPantalon(pantalonID int64) ([]*entity.RecetaManoObra, error)
	// ReplaceInsumos borra las filas actuales del pantalón e inserta el juego nuevo.
	ReplaceInsumos(pantalonID int64, entradas []*entity.RecetaInsumo) error
	ReplaceManoObra(pantalonID int64, manoObraIDs []int64) error
	DeleteByPantalon(pantalonID int64) error
	// CountByInsumo/CountByManoObra soportan la guarda referencial del CRUD:
	// un insumo o proceso referenciado por alguna receta no puede eliminarse.
	CountByInsumo(insumoID int64) (int, error)
	CountByManoObra(manoObraID int64) (int, error)
}
