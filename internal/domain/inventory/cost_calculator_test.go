package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/confeccion-api/internal/domain/inventory"
)

// TestCostoPromedioPonderado_CasoBase verifica el promedio ponderado clásico:
// 10 unidades a $100 más 10 unidades a $200 dan costo $150.
func TestCostoPromedioPonderado_CasoBase(t *testing.T) {
	got := inventory.CostoPromedioPonderado(
		decimal.NewFromInt(10), decimal.NewFromInt(100),
		decimal.NewFromInt(10), decimal.NewFromInt(200),
	)
	assert.True(t, decimal.NewFromInt(150).Equal(got), "esperado 150, obtenido %s", got)
}

// TestCostoPromedioPonderado_StockCero con stock previo cero el costo resultante
// es directamente el precio de la compra.
func TestCostoPromedioPonderado_StockCero(t *testing.T) {
	got := inventory.CostoPromedioPonderado(
		decimal.Zero, decimal.NewFromInt(80),
		decimal.NewFromInt(5), decimal.NewFromInt(120),
	)
	assert.True(t, decimal.NewFromInt(120).Equal(got), "esperado 120, obtenido %s", got)
}

// TestCostoPromedioPonderado_SumaNoPositiva si la suma de cantidades no es
// positiva (stock negativo por ajustes manuales) no hay promedio posible y se
// usa el precio de compra como costo.
func TestCostoPromedioPonderado_SumaNoPositiva(t *testing.T) {
	got := inventory.CostoPromedioPonderado(
		decimal.NewFromInt(-10), decimal.NewFromInt(100),
		decimal.NewFromInt(5), decimal.NewFromInt(90),
	)
	assert.True(t, decimal.NewFromInt(90).Equal(got), "esperado el precio de compra 90, obtenido %s", got)
}

// TestCostoPromedioPonderado_Fraccionario cantidades y precios decimales:
// 2.5 m a $10.000 más 7.5 m a $12.000 dan (25000 + 90000) / 10 = 11500.
func TestCostoPromedioPonderado_Fraccionario(t *testing.T) {
	got := inventory.CostoPromedioPonderado(
		decimal.NewFromFloat(2.5), decimal.NewFromInt(10_000),
		decimal.NewFromFloat(7.5), decimal.NewFromInt(12_000),
	)
	assert.True(t, decimal.NewFromInt(11_500).Equal(got), "esperado 11500, obtenido %s", got)
}
