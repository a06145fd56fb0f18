package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/confeccion-api/internal/application/dto"
	"github.com/tu-usuario/confeccion-api/internal/domain"
	"github.com/tu-usuario/confeccion-api/internal/domain/entity"
	"github.com/tu-usuario/confeccion-api/internal/domain/repository"
)

// Crear registra un pantalón en una sola transacción:
//  1. pasada de precios sobre la receta (solo lectura),
//  2. persistencia de la fila del pantalón con el precio calculado,
//  3. pasada de descuento: requerido = cantidad_por_unidad × cantidad_total
//     por insumo, con bloqueo de fila (SELECT FOR UPDATE),
//  4. escritura de las filas de receta (insumos y mano de obra),
//  5. Commit. Cualquier fallo en 1–4 revierte la transacción completa.
//
// La precondición de tallas (Σ tallas == cantidad_total) se evalúa antes de
// abrir la transacción.
func (uc *PantalonUseCase) Crear(ctx context.Context, in dto.CreatePantalonRequest) (*dto.PantalonResponse, error) {
	if in.Nombre == "" || in.CantidadTotal < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := validarTallas(in.Tallas, in.CantidadTotal); err != nil {
		return nil, err
	}
	existente, err := uc.pantalonRepo.GetByNombre(in.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	txID := uuid.New().String()

	var resp *dto.PantalonResponse
	err = uc.txRunner.Run(ctx, func(
		insumoRepo repository.InsumoRepository,
		manoObraRepo repository.ManoObraRepository,
		pantalonRepo repository.PantalonRepository,
		recetaRepo repository.RecetaRepository,
		movRepo repository.MovimientoRepository,
	) error {
		precio, insumos, manoObra, err := calcularPrecio(insumoRepo, manoObraRepo, in.Insumos, in.ManoObra)
		if err != nil {
			return err
		}

		p := &entity.Pantalon{
			Nombre:         in.Nombre,
			Tallas:         in.Tallas,
			CantidadTotal:  in.CantidadTotal,
			PrecioUnitario: precio,
			ImagenURL:      in.ImagenURL,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := pantalonRepo.Create(p); err != nil {
			return err
		}

		cantidadTotal := decimal.NewFromInt(in.CantidadTotal)
		for _, e := range in.Insumos {
			requerido := e.CantidadPorUnidad.Mul(cantidadTotal)
			if err := uc.ledger.Descontar(insumoRepo, movRepo, e.InsumoID, requerido, txID, now); err != nil {
				return err
			}
		}

		if err := recetaRepo.ReplaceInsumos(p.ID, toRecetaEntities(p.ID, in.Insumos)); err != nil {
			return err
		}
		if err := recetaRepo.ReplaceManoObra(p.ID, in.ManoObra); err != nil {
			return err
		}

		resp = toPantalonResponse(p, insumos, manoObra)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
