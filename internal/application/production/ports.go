package production

import (
	"context"

	"github.com/tu-usuario/confeccion-api/internal/application/dto"
	"github.com/tu-usuario/confeccion-api/internal/domain/entity"
)

// ImagenStore elimina la imagen asociada a un pantalón. Se invoca después del
// commit del delete; su fallo no revierte ni falla la operación.
type ImagenStore interface {
	Eliminar(ref string) error
}

// FichaPDFGenerator genera la ficha de producción de un pantalón en PDF.
type FichaPDFGenerator interface {
	GenerarFichaPDF(
		ctx context.Context,
		pantalon *entity.Pantalon,
		insumos []dto.RecetaInsumoDetalle,
		manoObra []dto.ManoObraDetalle,
	) ([]byte, error)
}
