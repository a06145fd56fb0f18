package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appinventory "github.com/tu-usuario/confeccion-api/internal/application/inventory"
	"github.com/tu-usuario/confeccion-api/internal/domain"
	"github.com/tu-usuario/confeccion-api/internal/domain/entity"
	domaininv "github.com/tu-usuario/confeccion-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos del ledger: un repo de insumos sobre un mapa y un repo de
// movimientos sobre un slice. El ledger asume repos atados a una tx; aquí el
// "commit" es implícito porque cada test ejecuta una sola operación.
// ──────────────────────────────────────────────────────────────────────────────

type fakeInsumoRepo struct {
	insumos map[int64]*entity.Insumo
}

func (r *fakeInsumoRepo) Create(ins *entity.Insumo) error { r.insumos[ins.ID] = ins; return nil }

func (r *fakeInsumoRepo) GetByID(id int64) (*entity.Insumo, error) {
	ins, ok := r.insumos[id]
	if !ok {
		return nil, nil
	}
	copia := *ins
	return &copia, nil
}

func (r *fakeInsumoRepo) GetForUpdate(id int64) (*entity.Insumo, error) { return r.GetByID(id) }

func (r *fakeInsumoRepo) List(limit, offset int) ([]*entity.Insumo, error) { return nil, nil }

func (r *fakeInsumoRepo) Update(ins *entity.Insumo) error { r.insumos[ins.ID] = ins; return nil }

func (r *fakeInsumoRepo) UpdateStock(id int64, cantidad, precioUnitario decimal.Decimal, estado string) error {
	ins := r.insumos[id]
	ins.Cantidad = cantidad
	ins.PrecioUnitario = precioUnitario
	ins.Estado = &estado
	return nil
}

func (r *fakeInsumoRepo) Delete(id int64) error { delete(r.insumos, id); return nil }

type fakeMovRepo struct {
	movimientos []*entity.Movimiento
}

func (r *fakeMovRepo) Create(mov *entity.Movimiento) error {
	r.movimientos = append(r.movimientos, mov)
	return nil
}

func (r *fakeMovRepo) ListByInsumo(insumoID int64, limit, offset int) ([]*entity.Movimiento, error) {
	return r.movimientos, nil
}

func newFakes(cantidad, precio float64, tipo string) (*fakeInsumoRepo, *fakeMovRepo) {
	estado := entity.EstadoDisponible
	repo := &fakeInsumoRepo{insumos: map[int64]*entity.Insumo{
		1: {
			ID:             1,
			Nombre:         "Tela índigo",
			Tipo:           tipo,
			Cantidad:       decimal.NewFromFloat(cantidad),
			PrecioUnitario: decimal.NewFromFloat(precio),
			Estado:         &estado,
		},
	}}
	return repo, &fakeMovRepo{}
}

func newLedger() *appinventory.Ledger {
	return appinventory.NewLedger(domaininv.NewClasificador(domaininv.UmbralesPorDefecto()))
}

var ahora = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

// TestDescontar_RestaYReclasifica descuenta, recalcula estado y registra la
// salida con cantidad negativa.
func TestDescontar_RestaYReclasifica(t *testing.T) {
	repo, movs := newFakes(20, 10, "Tela")
	l := newLedger()

	err := l.Descontar(repo, movs, 1, decimal.NewFromInt(15), "tx-1", ahora)
	require.NoError(t, err)

	ins := repo.insumos[1]
	assert.True(t, decimal.NewFromInt(5).Equal(ins.Cantidad))
	require.NotNil(t, ins.Estado)
	assert.Equal(t, entity.EstadoBajoStock, *ins.Estado, "5 <= 10 reclasifica a bajo stock")

	require.Len(t, movs.movimientos, 1)
	m := movs.movimientos[0]
	assert.Equal(t, entity.MovimientoSALIDA, m.Tipo)
	assert.Equal(t, "tx-1", m.TransactionID)
	assert.True(t, decimal.NewFromInt(-15).Equal(m.Cantidad))
	assert.True(t, decimal.NewFromInt(-150).Equal(m.CostoTotal))
}

// TestDescontar_StockInsuficiente falla con el error tipado que carga nombre,
// requerido y disponible, sin tocar el stock.
func TestDescontar_StockInsuficiente(t *testing.T) {
	repo, movs := newFakes(10, 10, "Tela")
	l := newLedger()

	err := l.Descontar(repo, movs, 1, decimal.NewFromInt(15), "tx-1", ahora)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)

	var stockErr *domain.StockInsuficienteError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Tela índigo", stockErr.Nombre)
	assert.True(t, decimal.NewFromInt(15).Equal(stockErr.Requerido))
	assert.True(t, decimal.NewFromInt(10).Equal(stockErr.Disponible))

	assert.True(t, decimal.NewFromInt(10).Equal(repo.insumos[1].Cantidad), "el stock no se toca")
	assert.Empty(t, movs.movimientos)
}

// TestDescontar_InsumoInexistente falla con ErrInsumoNoEncontrado.
func TestDescontar_InsumoInexistente(t *testing.T) {
	repo, movs := newFakes(10, 10, "Tela")
	l := newLedger()

	err := l.Descontar(repo, movs, 99, decimal.NewFromInt(1), "tx-1", ahora)
	assert.ErrorIs(t, err, domain.ErrInsumoNoEncontrado)
}

// TestReponer_SumaYReclasifica la reposición sube el stock y puede devolver el
// insumo a disponible.
func TestReponer_SumaYReclasifica(t *testing.T) {
	repo, movs := newFakes(5, 10, "Tela")
	l := newLedger()

	err := l.Reponer(repo, movs, 1, decimal.NewFromInt(20), "tx-2", ahora)
	require.NoError(t, err)

	ins := repo.insumos[1]
	assert.True(t, decimal.NewFromInt(25).Equal(ins.Cantidad))
	assert.Equal(t, entity.EstadoDisponible, *ins.Estado)

	require.Len(t, movs.movimientos, 1)
	assert.Equal(t, entity.MovimientoENTRADA, movs.movimientos[0].Tipo)
	assert.True(t, decimal.NewFromInt(20).Equal(movs.movimientos[0].Cantidad))
}

// TestReponer_InsumoInexistente un insumo ya eliminado no bloquea la operación
// padre: la reposición retorna nil sin registrar nada.
func TestReponer_InsumoInexistente(t *testing.T) {
	repo, movs := newFakes(5, 10, "Tela")
	l := newLedger()

	err := l.Reponer(repo, movs, 99, decimal.NewFromInt(20), "tx-2", ahora)
	require.NoError(t, err)
	assert.Empty(t, movs.movimientos)
}

// TestComprar_PromedioPonderado 10 uds a $100 más 10 uds a $200 dejan el costo
// en $150 y registran el movimiento de compra al precio de compra.
func TestComprar_PromedioPonderado(t *testing.T) {
	repo, movs := newFakes(10, 100, "Tela")
	l := newLedger()

	ins, err := l.Comprar(repo, movs, 1, decimal.NewFromInt(10), decimal.NewFromInt(200), ahora)
	require.NoError(t, err)
	require.NotNil(t, ins)

	assert.True(t, decimal.NewFromInt(20).Equal(ins.Cantidad))
	assert.True(t, decimal.NewFromInt(150).Equal(ins.PrecioUnitario), "promedio ponderado esperado 150, obtenido %s", ins.PrecioUnitario)
	assert.Equal(t, entity.EstadoDisponible, *ins.Estado)

	require.Len(t, movs.movimientos, 1)
	m := movs.movimientos[0]
	assert.Equal(t, entity.MovimientoCOMPRA, m.Tipo)
	assert.True(t, decimal.NewFromInt(200).Equal(m.CostoUnitario), "el movimiento guarda el precio de compra")
	assert.True(t, decimal.NewFromInt(2000).Equal(m.CostoTotal))
}

// TestComprar_InsumoInexistente falla con ErrInsumoNoEncontrado.
func TestComprar_InsumoInexistente(t *testing.T) {
	repo, movs := newFakes(10, 100, "Tela")
	l := newLedger()

	_, err := l.Comprar(repo, movs, 99, decimal.NewFromInt(1), decimal.NewFromInt(50), ahora)
	assert.ErrorIs(t, err, domain.ErrInsumoNoEncontrado)
}
