package entity

import "github.com/shopspring/decimal"

// RecetaInsumo es una fila de asociación pantalón↔insumo, propiedad del
// pantalón (se elimina en cascada con él). CantidadPorUnidad es por unidad
// producida: el consumo absoluto es siempre CantidadPorUnidad × CantidadTotal.
type RecetaInsumo struct {
	PantalonID        int64
	InsumoID          int64
	CantidadPorUnidad decimal.Decimal
}

// RecetaManoObra es una fila de asociación pantalón↔mano de obra, sin cantidad.
type RecetaManoObra struct {
	PantalonID int64
	ManoObraID int64
}
