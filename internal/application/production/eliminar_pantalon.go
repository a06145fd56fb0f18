package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/confeccion-api/internal/domain"
	"github.com/tu-usuario/confeccion-api/internal/domain/repository"
)

// Eliminar borra un pantalón en una sola transacción: repone el stock de cada
// insumo de la receta (mejor esfuerzo, un insumo ya eliminado no bloquea),
// limpia las asociaciones y elimina la fila. La limpieza de la imagen asociada
// ocurre después del Commit y su fallo no revierte ni falla el delete.
func (uc *PantalonUseCase) Eliminar(ctx context.Context, id int64) error {
	now := time.Now()
	txID := uuid.New().String()

	var imagen *string
	err := uc.txRunner.Run(ctx, func(
		insumoRepo repository.InsumoRepository,
		manoObraRepo repository.ManoObraRepository,
		pantalonRepo repository.PantalonRepository,
		recetaRepo repository.RecetaRepository,
		movRepo repository.MovimientoRepository,
	) error {
		p, err := pantalonRepo.GetByID(id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		imagen = p.ImagenURL

		receta, err := recetaRepo.GetInsumosByPantalon(id)
		if err != nil {
			return err
		}
		cantidad := decimal.NewFromInt(p.CantidadTotal)
		for _, e := range receta {
			devuelto := e.CantidadPorUnidad.Mul(cantidad)
			if err := uc.ledger.Reponer(insumoRepo, movRepo, e.InsumoID, devuelto, txID, now); err != nil {
				return err
			}
		}

		if err := recetaRepo.DeleteByPantalon(id); err != nil {
			return err
		}
		return pantalonRepo.Delete(id)
	})
	if err != nil {
		return err
	}

	// Limpieza lateral fuera de la garantía transaccional.
	if imagen != nil && *imagen != "" && uc.imagenes != nil {
		_ = uc.imagenes.Eliminar(*imagen)
	}
	return nil
}
