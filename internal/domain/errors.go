package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrConflict             = errors.New("conflicto con el estado actual")
	ErrTallasNoCoinciden    = errors.New("la suma de las tallas no coincide con la cantidad total")
	ErrInsumoNoEncontrado   = errors.New("insumo no encontrado")
	ErrManoObraNoEncontrada = errors.New("mano de obra no encontrada")
	ErrStockInsuficiente    = errors.New("stock insuficiente")
)

// StockInsuficienteError lleva el detalle para el mensaje al usuario:
// qué insumo faltó, cuánto se requería y cuánto había disponible.
type StockInsuficienteError struct {
	InsumoID   int64
	Nombre     string
	Requerido  decimal.Decimal
	Disponible decimal.Decimal
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente de %q: se requieren %s y hay %s disponibles",
		e.Nombre, e.Requerido.String(), e.Disponible.String())
}

// Is permite detectar el error con errors.Is(err, ErrStockInsuficiente).
func (e *StockInsuficienteError) Is(target error) bool {
	return target == ErrStockInsuficiente
}
