package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/confeccion-api/internal/application/production"
	"github.com/tu-usuario/confeccion-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InsumoUC   *usecase.InsumoUseCase
	ManoObraUC *usecase.ManoObraUseCase
	PantalonUC *production.PantalonUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Insumos
	insumos := api.Group("/insumos")
	insumoHandler := NewInsumoHandler(deps.InsumoUC)
	insumos.Post("/", insumoHandler.Create)
	insumos.Get("/", insumoHandler.List)
	insumos.Get("/:id", insumoHandler.GetByID)
	insumos.Put("/:id", insumoHandler.Update)
	insumos.Delete("/:id", insumoHandler.Delete)
	insumos.Post("/:id/compras", insumoHandler.RegistrarCompra)
	insumos.Get("/:id/movimientos", insumoHandler.ListMovimientos)

	// Mano de obra
	manoObra := api.Group("/mano-obra")
	manoObraHandler := NewManoObraHandler(deps.ManoObraUC)
	manoObra.Post("/", manoObraHandler.Create)
	manoObra.Get("/", manoObraHandler.List)
	manoObra.Get("/:id", manoObraHandler.GetByID)
	manoObra.Put("/:id", manoObraHandler.Update)
	manoObra.Delete("/:id", manoObraHandler.Delete)

	// Pantalones (motor transaccional de producción)
	pantalones := api.Group("/pantalones")
	pantalonHandler := NewPantalonHandler(deps.PantalonUC)
	pantalones.Post("/", pantalonHandler.Create)
	pantalones.Get("/", pantalonHandler.List)
	pantalones.Get("/:id", pantalonHandler.GetByID)
	pantalones.Put("/:id", pantalonHandler.Update)
	pantalones.Delete("/:id", pantalonHandler.Delete)
	pantalones.Get("/:id/ficha", pantalonHandler.Ficha)
}
