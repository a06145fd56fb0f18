package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/confeccion-api/internal/domain/entity"
)

// Umbral define el par de umbrales de un tipo de insumo:
// cantidad <= Agotado → out-of-stock; cantidad <= Bajo → low-stock; si no → available.
type Umbral struct {
	Bajo    decimal.Decimal
	Agotado decimal.Decimal
}

// Clasificador calcula el estado derivado de un insumo a partir de
// (cantidad, tipo). Función total y determinista: todo par produce exactamente
// un estado, sin efectos ni errores; las cantidades negativas se tratan
// numéricamente (caen en out-of-stock). Los tipos desconocidos usan el par por
// defecto. La tabla es configuración estática inyectable, no se persiste.
type Clasificador struct {
	umbrales   map[string]Umbral
	porDefecto Umbral
}

// NewClasificador construye el clasificador con una tabla por tipo y el par por defecto.
func NewClasificador(umbrales map[string]Umbral, porDefecto Umbral) *Clasificador {
	if umbrales == nil {
		umbrales = map[string]Umbral{}
	}
	return &Clasificador{umbrales: umbrales, porDefecto: porDefecto}
}

// UmbralesPorDefecto es la tabla estándar del taller. Agotado es 0 en todos
// los tipos: solo con cantidad 0 (o negativa) un insumo queda out-of-stock.
func UmbralesPorDefecto() (map[string]Umbral, Umbral) {
	cero := decimal.Zero
	tabla := map[string]Umbral{
		"Tela":    {Bajo: decimal.NewFromInt(10), Agotado: cero},
		"Botones": {Bajo: decimal.NewFromInt(50), Agotado: cero},
		"Hilos":   {Bajo: decimal.NewFromInt(20), Agotado: cero},
		"Cierres": {Bajo: decimal.NewFromInt(30), Agotado: cero},
	}
	return tabla, Umbral{Bajo: decimal.NewFromInt(10), Agotado: cero}
}

// Clasificar devuelve el estado para (cantidad, tipo).
func (c *Clasificador) Clasificar(cantidad decimal.Decimal, tipo string) string {
	u, ok := c.umbrales[tipo]
	if !ok {
		u = c.porDefecto
	}
	switch {
	case cantidad.LessThanOrEqual(u.Agotado):
		return entity.EstadoAgotado
	case cantidad.LessThanOrEqual(u.Bajo):
		return entity.EstadoBajoStock
	default:
		return entity.EstadoDisponible
	}
}
