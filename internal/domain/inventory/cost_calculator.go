package inventory

import "github.com/shopspring/decimal"

// CostoPromedioPonderado implementa la lógica de costo promedio ponderado
// para compras de insumos (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantCompra * CostoCompra)) / (StockActual + CantCompra)
// Si la cantidad resultante es cero, el costo de la compra es el nuevo costo.
func CostoPromedioPonderado(stockActual, costoActual, cantCompra, costoCompra decimal.Decimal) decimal.Decimal {
	sum := stockActual.Add(cantCompra)
	if sum.LessThanOrEqual(decimal.Zero) {
		return costoCompra
	}
	num := stockActual.Mul(costoActual).Add(cantCompra.Mul(costoCompra))
	return num.Div(sum)
}
