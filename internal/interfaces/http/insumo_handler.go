package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/confeccion-api/internal/application/dto"
	"github.com/tu-usuario/confeccion-api/internal/application/usecase"
)

// InsumoHandler maneja las peticiones HTTP de insumos.
type InsumoHandler struct {
	uc *usecase.InsumoUseCase
}

// NewInsumoHandler construye el handler.
func NewInsumoHandler(uc *usecase.InsumoUseCase) *InsumoHandler {
	return &InsumoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear insumo
// @Tags         insumos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInsumoRequest  true  "nombre, tipo, unidad_medida, cantidad, precio_unitario, proveedor"
// @Success      201   {object}  dto.InsumoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/insumos [post]
func (h *InsumoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInsumoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener insumo por ID
// @Tags         insumos
// @Produce      json
// @Param        id  path  int  true  "ID del insumo"
// @Success      200  {object}  dto.InsumoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/insumos/{id} [get]
func (h *InsumoHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar insumos
// @Tags         insumos
// @Produce      json
// @Param        limit   query  int  false  "Máximo de resultados (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.InsumoListResponse
// @Router       /api/insumos [get]
func (h *InsumoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	resp, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Actualizar insumo
// @Description  Edición directa de campos. El estado derivado se recalcula
//	si cambian cantidad o tipo.
// @Tags         insumos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del insumo"
// @Param        body  body  dto.UpdateInsumoRequest  true  "campos opcionales"
// @Success      200   {object}  dto.InsumoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/insumos/{id} [put]
func (h *InsumoHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateInsumoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Eliminar insumo
// @Description  Rechazado con 409 mientras alguna receta lo referencie.
// @Tags         insumos
// @Param        id  path  int  true  "ID del insumo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/insumos/{id} [delete]
func (h *InsumoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegistrarCompra godoc
// @Summary      Registrar compra de insumo
// @Description  Suma la cantidad comprada y recalcula el precio unitario por
//	promedio ponderado dentro de una transacción con bloqueo de fila.
// @Tags         insumos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del insumo"
// @Param        body  body  dto.CompraInsumoRequest  true  "cantidad (> 0), precio_unitario (>= 0)"
// @Success      200   {object}  dto.InsumoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/insumos/{id}/compras [post]
func (h *InsumoHandler) RegistrarCompra(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CompraInsumoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.RegistrarCompra(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ListMovimientos godoc
// @Summary      Historial de movimientos de un insumo
// @Tags         insumos
// @Produce      json
// @Param        id      path   int  true   "ID del insumo"
// @Param        limit   query  int  false  "Máximo de resultados (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}   dto.MovimientoResponse
// @Router       /api/insumos/{id}/movimientos [get]
func (h *InsumoHandler) ListMovimientos(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	items, err := h.uc.ListMovimientos(id, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "movimientos": items})
}
