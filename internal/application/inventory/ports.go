package inventory

import (
	"context"

	"github.com/tu-usuario/confeccion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger de insumos
// y el motor de producción: o se confirma todo lo hecho dentro de fn, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		insumoRepo repository.InsumoRepository,
		manoObraRepo repository.ManoObraRepository,
		pantalonRepo repository.PantalonRepository,
		recetaRepo repository.RecetaRepository,
		movRepo repository.MovimientoRepository,
	) error) error
}
