package repository

import "github.com/tu-usuario/confeccion-api/internal/domain/entity"

// ManoObraRepository define el puerto de persistencia de procesos de mano de obra.
type ManoObraRepository interface {
	Create(mo *entity.ManoObra) error
	GetByID(id int64) (*entity.ManoObra, error)
	GetByNombre(nombre string) (*entity.ManoObra, error)
	List(limit, offset int) ([]*entity.ManoObra, error)
	Update(mo *entity.ManoObra) error
	Delete(id int64) error
}
