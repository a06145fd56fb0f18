package repository

import "github.com/tu-usuario/confeccion-api/internal/domain/entity"

// PantalonRepository define el puerto de persistencia de pantalones.
// El precio persistido es la foto calculada por el motor de producción;
// este puerto nunca lo recalcula.
type PantalonRepository interface {
	Create(p *entity.Pantalon) error
	GetByID(id int64) (*entity.Pantalon, error)
	GetByNombre(nombre string) (*entity.Pantalon, error)
	List(limit, offset int) ([]*entity.Pantalon, error)
	Update(p *entity.Pantalon) error
	Delete(id int64) error
}
