package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/confeccion-api/internal/domain"
	"github.com/tu-usuario/confeccion-api/internal/domain/entity"
	domaininv "github.com/tu-usuario/confeccion-api/internal/domain/inventory"
	"github.com/tu-usuario/confeccion-api/internal/domain/repository"
)

// Ledger aplica las mutaciones de stock de insumos. Todas las operaciones
// deben invocarse con repositorios atados a la transacción del caller: el
// bloqueo de fila (SELECT FOR UPDATE) solo se libera en el Commit/Rollback de
// esa transacción, serializando descuentos y reposiciones concurrentes sobre
// el mismo insumo. El estado derivado se recalcula en cada mutación.
type Ledger struct {
	clasificador *domaininv.Clasificador
}

// NewLedger construye el ledger con el clasificador de estados.
func NewLedger(clasificador *domaininv.Clasificador) *Ledger {
	return &Ledger{clasificador: clasificador}
}

// Descontar bloquea la fila del insumo, verifica que haya stock suficiente y
// resta cantidad. Falla con ErrInsumoNoEncontrado si la fila no existe y con
// StockInsuficienteError (nombre, requerido, disponible) si no alcanza.
func (l *Ledger) Descontar(
	insumoRepo repository.InsumoRepository,
	movRepo repository.MovimientoRepository,
	insumoID int64,
	cantidad decimal.Decimal,
	txID string,
	now time.Time,
) error {
	ins, err := insumoRepo.GetForUpdate(insumoID)
	if err != nil {
		return err
	}
	if ins == nil {
		return fmt.Errorf("insumo %d: %w", insumoID, domain.ErrInsumoNoEncontrado)
	}
	if ins.Cantidad.LessThan(cantidad) {
		return &domain.StockInsuficienteError{
			InsumoID:   ins.ID,
			Nombre:     ins.Nombre,
			Requerido:  cantidad,
			Disponible: ins.Cantidad,
		}
	}
	nuevaCantidad := ins.Cantidad.Sub(cantidad)
	estado := l.clasificador.Clasificar(nuevaCantidad, ins.Tipo)
	if err := insumoRepo.UpdateStock(ins.ID, nuevaCantidad, ins.PrecioUnitario, estado); err != nil {
		return err
	}
	mov := &entity.Movimiento{
		ID:            uuid.New().String(),
		TransactionID: txID,
		InsumoID:      ins.ID,
		Tipo:          entity.MovimientoSALIDA,
		Cantidad:      cantidad.Neg(),
		CostoUnitario: ins.PrecioUnitario,
		CostoTotal:    cantidad.Neg().Mul(ins.PrecioUnitario),
		Fecha:         now,
		CreatedAt:     now,
	}
	return movRepo.Create(mov)
}

// Reponer bloquea la fila del insumo y suma cantidad. Si el insumo ya no
// existe retorna nil sin hacer nada: un insumo eliminado no puede bloquear la
// reposición de stock de la operación padre.
func (l *Ledger) Reponer(
	insumoRepo repository.InsumoRepository,
	movRepo repository.MovimientoRepository,
	insumoID int64,
	cantidad decimal.Decimal,
	txID string,
	now time.Time,
) error {
	ins, err := insumoRepo.GetForUpdate(insumoID)
	if err != nil {
		return err
	}
	if ins == nil {
		return nil
	}
	nuevaCantidad := ins.Cantidad.Add(cantidad)
	estado := l.clasificador.Clasificar(nuevaCantidad, ins.Tipo)
	if err := insumoRepo.UpdateStock(ins.ID, nuevaCantidad, ins.PrecioUnitario, estado); err != nil {
		return err
	}
	mov := &entity.Movimiento{
		ID:            uuid.New().String(),
		TransactionID: txID,
		InsumoID:      ins.ID,
		Tipo:          entity.MovimientoENTRADA,
		Cantidad:      cantidad,
		CostoUnitario: ins.PrecioUnitario,
		CostoTotal:    cantidad.Mul(ins.PrecioUnitario),
		Fecha:         now,
		CreatedAt:     now,
	}
	return movRepo.Create(mov)
}

// Comprar registra una compra al proveedor: suma la cantidad comprada y
// recalcula el precio unitario por promedio ponderado. El caller garantiza
// cantidad > 0 y precio de compra >= 0 antes de invocar. Devuelve el insumo
// actualizado.
func (l *Ledger) Comprar(
	insumoRepo repository.InsumoRepository,
	movRepo repository.MovimientoRepository,
	insumoID int64,
	cantidad, precioCompra decimal.Decimal,
	now time.Time,
) (*entity.Insumo, error) {
	ins, err := insumoRepo.GetForUpdate(insumoID)
	if err != nil {
		return nil, err
	}
	if ins == nil {
		return nil, fmt.Errorf("insumo %d: %w", insumoID, domain.ErrInsumoNoEncontrado)
	}
	nuevoCosto := domaininv.CostoPromedioPonderado(ins.Cantidad, ins.PrecioUnitario, cantidad, precioCompra)
	nuevaCantidad := ins.Cantidad.Add(cantidad)
	estado := l.clasificador.Clasificar(nuevaCantidad, ins.Tipo)
	if err := insumoRepo.UpdateStock(ins.ID, nuevaCantidad, nuevoCosto, estado); err != nil {
		return nil, err
	}
	mov := &entity.Movimiento{
		ID:            uuid.New().String(),
		TransactionID: uuid.New().String(),
		InsumoID:      ins.ID,
		Tipo:          entity.MovimientoCOMPRA,
		Cantidad:      cantidad,
		CostoUnitario: precioCompra,
		CostoTotal:    cantidad.Mul(precioCompra),
		Fecha:         now,
		CreatedAt:     now,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	ins.Cantidad = nuevaCantidad
	ins.PrecioUnitario = nuevoCosto
	ins.Estado = &estado
	ins.UpdatedAt = now
	return ins, nil
}
