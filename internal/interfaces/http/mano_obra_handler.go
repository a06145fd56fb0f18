package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/confeccion-api/internal/application/dto"
	"github.com/tu-usuario/confeccion-api/internal/application/usecase"
)

// ManoObraHandler maneja las peticiones HTTP de procesos de mano de obra.
type ManoObraHandler struct {
	uc *usecase.ManoObraUseCase
}

// NewManoObraHandler construye el handler.
func NewManoObraHandler(uc *usecase.ManoObraUseCase) *ManoObraHandler {
	return &ManoObraHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proceso de mano de obra
// @Tags         mano-obra
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateManoObraRequest  true  "nombre (único), precio"
// @Success      201   {object}  dto.ManoObraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/mano-obra [post]
func (h *ManoObraHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateManoObraRequest
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
// @Summary      Obtener proceso por ID
// @Tags         mano-obra
// @Produce      json
// @Param        id  path  int  true  "ID del proceso"
// @Success      200  {object}  dto.ManoObraResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mano-obra/{id} [get]
func (h *ManoObraHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proceso no encontrado"})
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar procesos de mano de obra
// @Tags         mano-obra
// @Produce      json
// @Param        limit   query  int  false  "Máximo de resultados (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ManoObraListResponse
// @Router       /api/mano-obra [get]
func (h *ManoObraHandler) List(c *fiber.Ctx) error {
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
// @Summary      Actualizar proceso
// @Tags         mano-obra
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del proceso"
// @Param        body  body  dto.UpdateManoObraRequest  true  "campos opcionales"
// @Success      200   {object}  dto.ManoObraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/mano-obra/{id} [put]
func (h *ManoObraHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateManoObraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proceso no encontrado"})
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Eliminar proceso
// @Description  Rechazado con 409 mientras algún pantalón lo referencie.
// @Tags         mano-obra
// @Param        id  path  int  true  "ID del proceso"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/mano-obra/{id} [delete]
func (h *ManoObraHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
