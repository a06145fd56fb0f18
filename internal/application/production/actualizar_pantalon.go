package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/confeccion-api/internal/application/dto"
	"github.com/tu-usuario/confeccion-api/internal/domain"
	"github.com/tu-usuario/confeccion-api/internal/domain/repository"
)

// Actualizar modifica un pantalón y su receta en una sola transacción con el
// orden reponer-luego-descontar: primero devuelve la huella de stock completa
// de la receta anterior y después descuenta la nueva contra el stock absoluto.
// Eso convierte el update en un diff contra stock real y es correcto aunque la
// receta vieja y la nueva compartan insumos. Este orden es el comportamiento
// documentado y probado; no debe optimizarse a un delta.
func (uc *PantalonUseCase) Actualizar(ctx context.Context, id int64, in dto.UpdatePantalonRequest) (*dto.PantalonResponse, error) {
	now := time.Now()
	txID := uuid.New().String()

	var resp *dto.PantalonResponse
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

		recetaVieja, err := recetaRepo.GetInsumosByPantalon(id)
		if err != nil {
			return err
		}
		manoObraVieja, err := recetaRepo.GetManoObraByPantalon(id)
		if err != nil {
			return err
		}

		// Receta/cantidad efectivas: nil conserva lo actual.
		nuevaCantidad := p.CantidadTotal
		if in.CantidadTotal != nil {
			nuevaCantidad = *in.CantidadTotal
			if nuevaCantidad < 0 {
				return domain.ErrInvalidInput
			}
		}
		nuevasTallas := p.Tallas
		if in.Tallas != nil {
			nuevasTallas = in.Tallas
		}
		if err := validarTallas(nuevasTallas, nuevaCantidad); err != nil {
			return err
		}

		nuevaReceta := in.Insumos
		if nuevaReceta == nil {
			nuevaReceta = make([]dto.RecetaInsumoInput, 0, len(recetaVieja))
			for _, e := range recetaVieja {
				nuevaReceta = append(nuevaReceta, dto.RecetaInsumoInput{
					InsumoID:          e.InsumoID,
					CantidadPorUnidad: e.CantidadPorUnidad,
				})
			}
		}
		nuevaManoObra := in.ManoObra
		if nuevaManoObra == nil {
			nuevaManoObra = make([]int64, 0, len(manoObraVieja))
			for _, f := range manoObraVieja {
				nuevaManoObra = append(nuevaManoObra, f.ManoObraID)
			}
		}

		// Pasada de reposición: devuelve la huella de stock de la receta vieja.
		cantidadVieja := decimal.NewFromInt(p.CantidadTotal)
		for _, e := range recetaVieja {
			devuelto := e.CantidadPorUnidad.Mul(cantidadVieja)
			if err := uc.ledger.Reponer(insumoRepo, movRepo, e.InsumoID, devuelto, txID, now); err != nil {
				return err
			}
		}

		precio, insumos, manoObra, err := calcularPrecio(insumoRepo, manoObraRepo, nuevaReceta, nuevaManoObra)
		if err != nil {
			return err
		}

		// Pasada de descuento contra la nueva cantidad.
		cantidadNueva := decimal.NewFromInt(nuevaCantidad)
		for _, e := range nuevaReceta {
			requerido := e.CantidadPorUnidad.Mul(cantidadNueva)
			if err := uc.ledger.Descontar(insumoRepo, movRepo, e.InsumoID, requerido, txID, now); err != nil {
				return err
			}
		}

		if in.Nombre != nil && *in.Nombre != p.Nombre {
			otro, err := pantalonRepo.GetByNombre(*in.Nombre)
			if err != nil {
				return err
			}
			if otro != nil && otro.ID != p.ID {
				return domain.ErrDuplicate
			}
			p.Nombre = *in.Nombre
		}
		if in.ImagenURL != nil {
			p.ImagenURL = in.ImagenURL
		}
		p.Tallas = nuevasTallas
		p.CantidadTotal = nuevaCantidad
		p.PrecioUnitario = precio
		p.UpdatedAt = now
		if err := pantalonRepo.Update(p); err != nil {
			return err
		}

		if err := recetaRepo.ReplaceInsumos(p.ID, toRecetaEntities(p.ID, nuevaReceta)); err != nil {
			return err
		}
		if err := recetaRepo.ReplaceManoObra(p.ID, nuevaManoObra); err != nil {
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
