package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/confeccion-api/internal/application/inventory"
	"github.com/tu-usuario/confeccion-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Los bloqueos SELECT FOR UPDATE tomados por los repos atados a la tx se
// liberan en el Commit/Rollback.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Si fn retorna error, nada de lo hecho dentro persiste.
func (r *TxRunner) Run(ctx context.Context, fn func(
	insumoRepo repository.InsumoRepository,
	manoObraRepo repository.ManoObraRepository,
	pantalonRepo repository.PantalonRepository,
	recetaRepo repository.RecetaRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	insumoRepo := NewInsumoRepository(tx)
	manoObraRepo := NewManoObraRepository(tx)
	pantalonRepo := NewPantalonRepository(tx)
	recetaRepo := NewRecetaRepository(tx)
	movRepo := NewMovimientoRepository(tx)

	if err := fn(insumoRepo, manoObraRepo, pantalonRepo, recetaRepo, movRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
