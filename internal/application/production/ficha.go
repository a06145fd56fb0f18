package production

import (
	"context"

	"github.com/tu-usuario/confeccion-api/internal/domain"
)

// GenerarFicha genera la ficha de producción de un pantalón en PDF (solo
// lectura; usa la receta persistida resuelta con precios actuales).
func (uc *PantalonUseCase) GenerarFicha(ctx context.Context, id int64) ([]byte, error) {
	p, err := uc.pantalonRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	insumos, manoObra, err := uc.resolverReceta(uc.insumoRepo, uc.manoObraRepo, uc.recetaRepo, p.ID)
	if err != nil {
		return nil, err
	}
	return uc.fichaPDF.GenerarFichaPDF(ctx, p, insumos, manoObra)
}
