// Package pdf implementa la generación de la Ficha de Producción de un
// pantalón usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del pantalón  │  Lote + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TALLAS: distribución por talla y cantidad total             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA INSUMOS: Insumo | Cant/Unidad | P.Unit | Costo        │
//	│  TABLA MANO DE OBRA: Proceso | Precio                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Costo insumos / Mano de obra / COSTO UNITARIO      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/confeccion-api/internal/application/dto"
	"github.com/tu-usuario/confeccion-api/internal/application/production"
	"github.com/tu-usuario/confeccion-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoFichaGenerator implementa production.FichaPDFGenerator usando Maroto v2.
type MarotoFichaGenerator struct{}

var _ production.FichaPDFGenerator = (*MarotoFichaGenerator)(nil)

// NewMarotoFichaGenerator construye el generador.
func NewMarotoFichaGenerator() *MarotoFichaGenerator { return &MarotoFichaGenerator{} }

// GenerarFichaPDF genera la ficha de producción y devuelve sus bytes.
func (g *MarotoFichaGenerator) GenerarFichaPDF(
	_ context.Context,
	pantalon *entity.Pantalon,
	insumos []dto.RecetaInsumoDetalle,
	manoObra []dto.ManoObraDetalle,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha de Producción", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(pantalon))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tallasRow(pantalon))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de insumos
	m.AddRows(sectionTitleRow("INSUMOS POR UNIDAD"))
	m.AddRows(insumosHeaderRow())
	for _, r := range insumoDetailRows(insumos) {
		m.AddRows(r)
	}

	// Tabla de mano de obra
	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("MANO DE OBRA"))
	for _, r := range manoObraRows(manoObra) {
		m.AddRows(r)
	}

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(pantalon, insumos, manoObra))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ficha: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del pantalón (izq) y fecha de la ficha (der).
func headerRow(p *entity.Pantalon) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(p.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Referencia #%d", p.ID), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FICHA DE PRODUCCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d unidades", p.CantidadTotal), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+p.UpdatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tallasRow: distribución por talla ordenada alfabéticamente.
func tallasRow(p *entity.Pantalon) core.Row {
	tallas := make([]string, 0, len(p.Tallas))
	for t := range p.Tallas {
		tallas = append(tallas, t)
	}
	sort.Strings(tallas)

	detalle := ""
	for i, t := range tallas {
		if i > 0 {
			detalle += "   |   "
		}
		detalle += fmt.Sprintf("%s: %d", t, p.Tallas[t])
	}
	if detalle == "" {
		detalle = "Sin distribución de tallas"
	}

	return row.New(12).Add(
		col.New(12).Add(
			text.New("DISTRIBUCIÓN DE TALLAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(detalle, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
	))
}

// insumosHeaderRow: cabecera de la tabla de insumos.
func insumosHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Insumo", 5, align.Left),
		h("Cant./Unidad", 3, align.Right),
		h("Precio Unit.", 2, align.Right),
		h("Costo", 2, align.Right),
	)
}

// insumoDetailRows: una fila por línea de receta.
func insumoDetailRows(insumos []dto.RecetaInsumoDetalle) []core.Row {
	result := make([]core.Row, 0, len(insumos))
	for _, d := range insumos {
		costo := d.CantidadPorUnidad.Mul(d.PrecioUnitario)
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(
				d.Nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				d.CantidadPorUnidad.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(d.PrecioUnitario.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(costo.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// manoObraRows: una fila por proceso con su precio.
func manoObraRows(manoObra []dto.ManoObraDetalle) []core.Row {
	result := make([]core.Row, 0, len(manoObra))
	for _, mo := range manoObra {
		result = append(result, row.New(6).Add(
			col.New(8).Add(text.New(
				mo.Nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				"$"+formatMoney(mo.Precio.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(p *entity.Pantalon, insumos []dto.RecetaInsumoDetalle, manoObra []dto.ManoObraDetalle) core.Row {
	costoInsumos := decimal.Zero
	for _, d := range insumos {
		costoInsumos = costoInsumos.Add(d.CantidadPorUnidad.Mul(d.PrecioUnitario))
	}
	costoManoObra := decimal.Zero
	for _, mo := range manoObra {
		costoManoObra = costoManoObra.Add(mo.Precio)
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Costo insumos:"),
			label("Mano de obra:"),
			grandLabel("COSTO UNITARIO:"),
		),
		col.New(3).Add(
			value("$"+formatMoney(costoInsumos.StringFixed(0))),
			value("$"+formatMoney(costoManoObra.StringFixed(0))),
			grandValue("$"+formatMoney(p.PrecioUnitario.StringFixed(0))),
		),
		col.New(2),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
