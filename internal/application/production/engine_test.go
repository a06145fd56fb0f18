package production_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/confeccion-api/internal/application/dto"
	"github.com/tu-usuario/confeccion-api/internal/domain"
	"github.com/tu-usuario/confeccion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del motor transaccional de producción sobre el store en memoria.
// El fakeTxRunner restaura el snapshot completo cuando fn falla, así que
// cualquier fuga de estado tras un error es un bug del motor, no del fake.
// ──────────────────────────────────────────────────────────────────────────────

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// TestCrear_PrecioYDescuento escenario de referencia: A (100 uds a $10),
// B (500 uds a $0.5), proceso L ($15). Crear 10 unidades con receta
// [(A, 1.5), (B, 5)] y mano de obra [L]:
// precio = 10×1.5 + 0.5×5 + 15 = 32.5; A queda en 85 y B en 450.
func TestCrear_PrecioYDescuento(t *testing.T) {
	s := newMemStore()
	idA := seedInsumo(s, "Tela índigo", "Tela", 100, 10)
	idB := seedInsumo(s, "Botón metálico", "Botones", 500, 0.5)
	idL := seedManoObra(s, "Costura", 15)
	uc, _ := newEngine(s)

	resp, err := uc.Crear(context.Background(), dto.CreatePantalonRequest{
		Nombre:        "Jean clásico",
		CantidadTotal: 10,
		Insumos: []dto.RecetaInsumoInput{
			{InsumoID: idA, CantidadPorUnidad: dec(1.5)},
			{InsumoID: idB, CantidadPorUnidad: dec(5)},
		},
		ManoObra: []int64{idL},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, dec(32.5).Equal(resp.PrecioUnitario), "precio esperado 32.5, obtenido %s", resp.PrecioUnitario)
	assert.True(t, dec(85).Equal(s.insumos[idA].Cantidad), "A debe quedar en 85, obtenido %s", s.insumos[idA].Cantidad)
	assert.True(t, dec(450).Equal(s.insumos[idB].Cantidad), "B debe quedar en 450, obtenido %s", s.insumos[idB].Cantidad)

	// Receta persistida y movimientos de salida registrados.
	assert.Len(t, s.recetaInsumos[resp.ID], 2)
	assert.Len(t, s.recetaManoObra[resp.ID], 1)
	assert.Len(t, s.movimientos, 2)
	for _, m := range s.movimientos {
		assert.Equal(t, entity.MovimientoSALIDA, m.Tipo)
		assert.True(t, m.Cantidad.IsNegative(), "las salidas se registran con cantidad negativa")
	}

	// La receta resuelta viene en la respuesta.
	require.Len(t, resp.Insumos, 2)
	assert.Equal(t, "Tela índigo", resp.Insumos[0].Nombre)
	require.Len(t, resp.ManoObra, 1)
	assert.Equal(t, "Costura", resp.ManoObra[0].Nombre)
}

// TestCrear_EstadoRecalculado el descuento que deja la tela bajo su umbral
// reclasifica el estado del insumo dentro de la misma transacción.
func TestCrear_EstadoRecalculado(t *testing.T) {
	s := newMemStore()
	idA := seedInsumo(s, "Tela índigo", "Tela", 20, 10)
	uc, _ := newEngine(s)

	_, err := uc.Crear(context.Background(), dto.CreatePantalonRequest{
		Nombre:        "Jean clásico",
		CantidadTotal: 10,
		Insumos:       []dto.RecetaInsumoInput{{InsumoID: idA, CantidadPorUnidad: dec(1.5)}},
	})
	require.NoError(t, err)

	require.NotNil(t, s.insumos[idA].Estado)
	assert.Equal(t, entity.EstadoBajoStock, *s.insumos[idA].Estado, "20 - 15 = 5 <= 10 es bajo stock")
}

// TestCrear_StockInsuficiente_SinDescuentoParcial si el segundo insumo de la
// receta no tiene stock, el descuento ya aplicado al primero se revierte:
// ni pantalón, ni receta, ni movimientos, ni stock tocado.
func TestCrear_StockInsuficiente_SinDescuentoParcial(t *testing.T) {
	s := newMemStore()
	idB := seedInsumo(s, "Botón metálico", "Botones", 500, 0.5)
	idA := seedInsumo(s, "Tela índigo", "Tela", 10, 10) // requerido 15 > 10
	uc, _ := newEngine(s)

	_, err := uc.Crear(context.Background(), dto.CreatePantalonRequest{
		Nombre:        "Jean clásico",
		CantidadTotal: 10,
		Insumos: []dto.RecetaInsumoInput{
			{InsumoID: idB, CantidadPorUnidad: dec(5)},   // se descuenta primero
			{InsumoID: idA, CantidadPorUnidad: dec(1.5)}, // falla después
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)

	var stockErr *domain.StockInsuficienteError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Tela índigo", stockErr.Nombre)
	assert.True(t, dec(15).Equal(stockErr.Requerido))
	assert.True(t, dec(10).Equal(stockErr.Disponible))

	assert.True(t, dec(500).Equal(s.insumos[idB].Cantidad), "el descuento parcial de B debe revertirse")
	assert.True(t, dec(10).Equal(s.insumos[idA].Cantidad))
	assert.Empty(t, s.pantalones, "no debe quedar pantalón huérfano")
	assert.Empty(t, s.movimientos, "no deben quedar movimientos de una tx revertida")
}

// TestCrear_TallasNoCoinciden la precondición de tallas se evalúa antes de
// abrir transacción alguna.
func TestCrear_TallasNoCoinciden(t *testing.T) {
	s := newMemStore()
	idA := seedInsumo(s, "Tela índigo", "Tela", 100, 10)
	uc, _ := newEngine(s)

	_, err := uc.Crear(context.Background(), dto.CreatePantalonRequest{
		Nombre:        "Jean clásico",
		Tallas:        map[string]int{"S": 2, "M": 3},
		CantidadTotal: 10,
		Insumos:       []dto.RecetaInsumoInput{{InsumoID: idA, CantidadPorUnidad: dec(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrTallasNoCoinciden)
	assert.True(t, dec(100).Equal(s.insumos[idA].Cantidad))
	assert.Empty(t, s.pantalones)
}

// TestCrear_InsumoInexistente una referencia a un insumo que no existe aborta
// toda la operación (criterio uniforme entre pasada de precios y de descuento).
func TestCrear_InsumoInexistente(t *testing.T) {
	s := newMemStore()
	uc, _ := newEngine(s)

	_, err := uc.Crear(context.Background(), dto.CreatePantalonRequest{
		Nombre:        "Jean clásico",
		CantidadTotal: 5,
		Insumos:       []dto.RecetaInsumoInput{{InsumoID: 999, CantidadPorUnidad: dec(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInsumoNoEncontrado)
	assert.Empty(t, s.pantalones)
}

// TestCrear_NombreDuplicado el nombre de pantalón es único.
func TestCrear_NombreDuplicado(t *testing.T) {
	s := newMemStore()
	uc, _ := newEngine(s)

	_, err := uc.Crear(context.Background(), dto.CreatePantalonRequest{Nombre: "Jean clásico"})
	require.NoError(t, err)

	_, err = uc.Crear(context.Background(), dto.CreatePantalonRequest{Nombre: "Jean clásico"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// TestActualizar_ReponerLuegoDescontar escenario de referencia: el pantalón del
// primer escenario pasa a 5 unidades con receta [(A, 1.5)]. A se repone a 100 y
// luego se descuenta 5×1.5 = 7.5 → 92.5; B, ya no referenciado, vuelve a 500.
func TestActualizar_ReponerLuegoDescontar(t *testing.T) {
	s := newMemStore()
	idA := seedInsumo(s, "Tela índigo", "Tela", 100, 10)
	idB := seedInsumo(s, "Botón metálico", "Botones", 500, 0.5)
	idL := seedManoObra(s, "Costura", 15)
	uc, _ := newEngine(s)

	creado, err := uc.Crear(context.Background(), dto.CreatePantalonRequest{
		Nombre:        "Jean clásico",
		CantidadTotal: 10,
		Insumos: []dto.RecetaInsumoInput{
			{InsumoID: idA, CantidadPorUnidad: dec(1.5)},
			{InsumoID: idB, CantidadPorUnidad: dec(5)},
		},
		ManoObra: []int64{idL},
	})
	require.NoError(t, err)

	nuevaCantidad := int64(5)
	resp, err := uc.Actualizar(context.Background(), creado.ID, dto.UpdatePantalonRequest{
		CantidadTotal: &nuevaCantidad,
		Insumos:       []dto.RecetaInsumoInput{{InsumoID: idA, CantidadPorUnidad: dec(1.5)}},
	})
	require.NoError(t, err)

	assert.True(t, dec(92.5).Equal(s.insumos[idA].Cantidad), "A esperado 92.5, obtenido %s", s.insumos[idA].Cantidad)
	assert.True(t, dec(500).Equal(s.insumos[idB].Cantidad), "B ya no referenciado vuelve a 500")

	// ManoObra nil conserva [L]: precio = 10×1.5 + 15 = 30.
	assert.True(t, dec(30).Equal(resp.PrecioUnitario), "precio esperado 30, obtenido %s", resp.PrecioUnitario)
	assert.Len(t, s.recetaInsumos[creado.ID], 1)
	assert.Len(t, s.recetaManoObra[creado.ID], 1)
}

// TestActualizar_SinCambios_NetoCero reponer y volver a descontar la misma
// receta con la misma cantidad deja todos los stocks exactamente igual.
func TestActualizar_SinCambios_NetoCero(t *testing.T) {
	s := newMemStore()
	idA := seedInsumo(s, "Tela índigo", "Tela", 100, 10)
	idB := seedInsumo(s, "Botón metálico", "Botones", 500, 0.5)
	uc, _ := newEngine(s)

	creado, err := uc.Crear(context.Background(), dto.CreatePantalonRequest{
		Nombre:        "Jean clásico",
		CantidadTotal: 10,
		Insumos: []dto.RecetaInsumoInput{
			{InsumoID: idA, CantidadPorUnidad: dec(1.5)},
			{InsumoID: idB, CantidadPorUnidad: dec(5)},
		},
	})
	require.NoError(t, err)

	_, err = uc.Actualizar(context.Background(), creado.ID, dto.UpdatePantalonRequest{})
	require.NoError(t, err)

	assert.True(t, dec(85).Equal(s.insumos[idA].Cantidad), "A sin cambio neto")
	assert.True(t, dec(450).Equal(s.insumos[idB].Cantidad), "B sin cambio neto")
}

// TestActualizar_StockInsuficiente_Rollback un update que no alcanza stock
// revierte también la pasada de reposición: nada cambia.
func TestActualizar_StockInsuficiente_Rollback(t *testing.T) {
	s := newMemStore()
	idA := seedInsumo(s, "Tela índigo", "Tela", 100, 10)
	uc, _ := newEngine(s)

	creado, err := uc.Crear(context.Background(), dto.CreatePantalonRequest{
		Nombre:        "Jean clásico",
		CantidadTotal: 10,
		Insumos:       []dto.RecetaInsumoInput{{InsumoID: idA, CantidadPorUnidad: dec(1.5)}},
	})
	require.NoError(t, err)

	nuevaCantidad := int64(1000) // requiere 1500, disponible 100 tras reponer
	_, err = uc.Actualizar(context.Background(), creado.ID, dto.UpdatePantalonRequest{
		CantidadTotal: &nuevaCantidad,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)

	assert.True(t, dec(85).Equal(s.insumos[idA].Cantidad), "el stock vuelve al valor previo al update")
	p := s.pantalones[creado.ID]
	require.NotNil(t, p)
	assert.Equal(t, int64(10), p.CantidadTotal, "la cantidad del pantalón no cambia")
}

// TestActualizar_NoExiste actualizar un pantalón inexistente falla con not found.
func TestActualizar_NoExiste(t *testing.T) {
	s := newMemStore()
	uc, _ := newEngine(s)

	_, err := uc.Actualizar(context.Background(), 42, dto.UpdatePantalonRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestCrearYEliminar_Conservacion crear y eliminar de inmediato devuelve cada
// insumo exactamente a su cantidad previa.
func TestCrearYEliminar_Conservacion(t *testing.T) {
	s := newMemStore()
	idA := seedInsumo(s, "Tela índigo", "Tela", 100, 10)
	idB := seedInsumo(s, "Botón metálico", "Botones", 500, 0.5)
	uc, imagenes := newEngine(s)

	imagen := "jean-clasico.png"
	creado, err := uc.Crear(context.Background(), dto.CreatePantalonRequest{
		Nombre:        "Jean clásico",
		CantidadTotal: 10,
		Insumos: []dto.RecetaInsumoInput{
			{InsumoID: idA, CantidadPorUnidad: dec(1.5)},
			{InsumoID: idB, CantidadPorUnidad: dec(5)},
		},
		ImagenURL: &imagen,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar(context.Background(), creado.ID))

	assert.True(t, dec(100).Equal(s.insumos[idA].Cantidad), "A vuelve a 100")
	assert.True(t, dec(500).Equal(s.insumos[idB].Cantidad), "B vuelve a 500")
	assert.Empty(t, s.pantalones)
	assert.Empty(t, s.recetaInsumos[creado.ID])
	assert.Equal(t, []string{"jean-clasico.png"}, imagenes.eliminadas, "la imagen se limpia después del commit")
}

// TestEliminar_InsumoYaBorrado un insumo eliminado de la receta no bloquea el
// delete del pantalón: la reposición lo salta en silencio.
func TestEliminar_InsumoYaBorrado(t *testing.T) {
	s := newMemStore()
	idA := seedInsumo(s, "Tela índigo", "Tela", 100, 10)
	idB := seedInsumo(s, "Botón metálico", "Botones", 500, 0.5)
	uc, _ := newEngine(s)

	creado, err := uc.Crear(context.Background(), dto.CreatePantalonRequest{
		Nombre:        "Jean clásico",
		CantidadTotal: 10,
		Insumos: []dto.RecetaInsumoInput{
			{InsumoID: idA, CantidadPorUnidad: dec(1.5)},
			{InsumoID: idB, CantidadPorUnidad: dec(5)},
		},
	})
	require.NoError(t, err)

	delete(s.insumos, idA) // simulado: alguien borró la tela por fuera

	require.NoError(t, uc.Eliminar(context.Background(), creado.ID))
	assert.True(t, dec(500).Equal(s.insumos[idB].Cantidad), "B sí se repone")
	assert.Empty(t, s.pantalones)
}

// TestEliminar_NoExiste eliminar un pantalón inexistente falla con not found.
func TestEliminar_NoExiste(t *testing.T) {
	s := newMemStore()
	uc, _ := newEngine(s)

	err := uc.Eliminar(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
