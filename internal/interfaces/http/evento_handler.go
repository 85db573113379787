package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/dto"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/usecase"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/repository"
)

// EventoHandler maneja las peticiones HTTP del calendario de eventos.
type EventoHandler struct {
	uc *usecase.EventoUseCase
}

// NewEventoHandler construye el handler.
func NewEventoHandler(uc *usecase.EventoUseCase) *EventoHandler {
	return &EventoHandler{uc: uc}
}

// Crear godoc
// @Summary      Proponer un evento
// @Description  El evento entra en moderación: no es visible hasta que un administrador lo apruebe.
// @Tags         eventos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearEventoRequest  true  "Datos del evento"
// @Success      201   {object}  dto.EventoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/eventos [post]
func (h *EventoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearEventoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if validarBody(c, in) {
		return nil
	}
	out, err := h.uc.CrearPublico(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CrearAdmin godoc
// @Summary      Crear evento desde el panel
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearEventoAdminRequest  true  "Datos del evento"
// @Success      201   {object}  dto.EventoResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/admin/eventos [post]
func (h *EventoHandler) CrearAdmin(c *fiber.Ctx) error {
	var in dto.CrearEventoAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if validarBody(c, in) {
		return nil
	}
	out, err := h.uc.CrearAdmin(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar eventos activos
// @Description  Ordenados por fecha ascendente, destacados primero.
// @Tags         eventos
// @Produce      json
// @Param        categoria  query  string  false  "Filtrar por categoría"
// @Param        slug       query  string  false  "Filtrar por slug"
// @Param        limit      query  int     false  "Límite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.EventoListResponse
// @Router       /api/eventos [get]
func (h *EventoHandler) Listar(c *fiber.Ctx) error {
	p := paginar(c)
	out, err := h.uc.Listar(c.Context(), repository.FiltroEventos{
		SoloActivos: true,
		Categoria:   c.Query("categoria"),
		Slug:        c.Query("slug"),
		Limit:       p.Limit,
		Offset:      p.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListarAdmin lista todos los eventos, incluidos los pendientes de aprobar.
func (h *EventoHandler) ListarAdmin(c *fiber.Ctx) error {
	p := paginar(c)
	out, err := h.uc.Listar(c.Context(), repository.FiltroEventos{
		Categoria: c.Query("categoria"),
		Limit:     p.Limit,
		Offset:    p.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Obtener godoc
// @Summary      Obtener un evento por ID
// @Tags         eventos
// @Produce      json
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {object}  dto.EventoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/eventos/{id} [get]
func (h *EventoHandler) Obtener(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil || !out.Activo {
		return notFound(c, "evento no encontrado")
	}
	return c.JSON(out)
}

// ObtenerAdmin devuelve el evento sin filtrar por estado de moderación.
func (h *EventoHandler) ObtenerAdmin(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "evento no encontrado")
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar un evento (panel)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del evento"
// @Param        body  body  dto.ActualizarEventoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.EventoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/eventos/{id} [put]
func (h *EventoHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarEventoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if validarBody(c, in) {
		return nil
	}
	out, err := h.uc.Actualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "evento no encontrado")
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar un evento (panel)
// @Tags         admin
// @Produce      json
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/admin/eventos/{id} [delete]
func (h *EventoHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
