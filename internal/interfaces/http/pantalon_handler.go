package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/confeccion-api/internal/application/dto"
	"github.com/tu-usuario/confeccion-api/internal/application/production"
)

// PantalonHandler maneja las peticiones HTTP de pantalones: el CRUD
// transaccional del motor de producción más la ficha en PDF.
type PantalonHandler struct {
	uc *production.PantalonUseCase
}

// NewPantalonHandler construye el handler.
func NewPantalonHandler(uc *production.PantalonUseCase) *PantalonHandler {
	return &PantalonHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pantalón
// @Description  Operación atómica: calcula el precio desde la receta, descuenta
//	stock de insumos y persiste pantalón y receta. Cualquier fallo revierte todo.
// @Tags         pantalones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePantalonRequest  true  "nombre, tallas, cantidad_total, insumos, mano_obra"
// @Success      201   {object}  dto.PantalonResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pantalones [post]
func (h *PantalonHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePantalonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener pantalón por ID
// @Tags         pantalones
// @Produce      json
// @Param        id  path  int  true  "ID del pantalón"
// @Success      200  {object}  dto.PantalonResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pantalones/{id} [get]
func (h *PantalonHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pantalón no encontrado"})
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar pantalones
// @Tags         pantalones
// @Produce      json
// @Param        limit   query  int  false  "Máximo de resultados (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.PantalonListResponse
// @Router       /api/pantalones [get]
func (h *PantalonHandler) List(c *fiber.Ctx) error {
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
// @Summary      Actualizar pantalón
// @Description  Repone el stock de la receta anterior, descuenta el de la nueva
//	y recalcula el precio, todo dentro de una sola transacción.
// @Tags         pantalones
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pantalón"
// @Param        body  body  dto.UpdatePantalonRequest  true  "campos opcionales; insumos/mano_obra nil conservan la receta"
// @Success      200   {object}  dto.PantalonResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pantalones/{id} [put]
func (h *PantalonHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdatePantalonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Eliminar pantalón
// @Description  Repone el stock de la receta y elimina pantalón y receta en una
//	transacción. La imagen asociada se borra después del commit.
// @Tags         pantalones
// @Param        id  path  int  true  "ID del pantalón"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pantalones/{id} [delete]
func (h *PantalonHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Ficha godoc
// @Summary      Ficha de producción en PDF
// @Tags         pantalones
// @Produce      application/pdf
// @Param        id  path  int  true  "ID del pantalón"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pantalones/{id}/ficha [get]
func (h *PantalonHandler) Ficha(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	pdfBytes, err := h.uc.GenerarFicha(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="ficha-pantalon-%d.pdf"`, id))
	return c.Send(pdfBytes)
}
