package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/dto"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/usecase"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/entity"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/repository"
)

// NegocioHandler maneja las peticiones HTTP del directorio de negocios y profesionales.
type NegocioHandler struct {
	uc       *usecase.NegocioUseCase
	resenaUC *usecase.ResenaUseCase
}

// NewNegocioHandler construye el handler.
func NewNegocioHandler(uc *usecase.NegocioUseCase, resenaUC *usecase.ResenaUseCase) *NegocioHandler {
	return &NegocioHandler{uc: uc, resenaUC: resenaUC}
}

// Crear godoc
// @Summary      Registrar un negocio o profesional
// @Description  El registro entra en moderación: no aparece en el directorio hasta ser aprobado.
// @Tags         negocios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearNegocioRequest  true  "Datos del negocio"
// @Success      201   {object}  dto.NegocioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/negocios [post]
func (h *NegocioHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearNegocioRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if validarBody(c, in) {
		return nil
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar el directorio
// @Description  Incluye la puntuación promedio y el total de reseñas aprobadas de cada entrada.
// @Tags         negocios
// @Produce      json
// @Param        tipo       query  string  false  "profesional o negocio"
// @Param        categoria  query  string  false  "Filtrar por categoría"
// @Param        slug       query  string  false  "Filtrar por slug"
// @Param        limit      query  int     false  "Límite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.NegocioListResponse
// @Router       /api/negocios [get]
func (h *NegocioHandler) Listar(c *fiber.Ctx) error {
	p := paginar(c)
	out, err := h.uc.Listar(c.Context(), repository.FiltroNegocios{
		SoloActivos: true,
		Tipo:        entity.TipoNegocio(c.Query("tipo")),
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

// ListarAdmin lista todo el directorio, incluidas las entradas pendientes.
func (h *NegocioHandler) ListarAdmin(c *fiber.Ctx) error {
	p := paginar(c)
	out, err := h.uc.Listar(c.Context(), repository.FiltroNegocios{
		Tipo:      entity.TipoNegocio(c.Query("tipo")),
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
// @Summary      Obtener una entrada del directorio por ID
// @Tags         negocios
// @Produce      json
// @Param        id   path  string  true  "ID del negocio"
// @Success      200  {object}  dto.NegocioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/negocios/{id} [get]
func (h *NegocioHandler) Obtener(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil || !out.Activo {
		return notFound(c, "negocio no encontrado")
	}
	return c.JSON(out)
}

// ObtenerAdmin devuelve la entrada sin filtrar por estado de moderación.
func (h *NegocioHandler) ObtenerAdmin(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "negocio no encontrado")
	}
	return c.JSON(out)
}

// Resenas godoc
// @Summary      Listar las reseñas aprobadas de un negocio
// @Tags         negocios
// @Produce      json
// @Param        id   path  string  true  "ID del negocio"
// @Success      200  {object}  dto.ResenaListResponse
// @Router       /api/negocios/{id}/resenas [get]
func (h *NegocioHandler) Resenas(c *fiber.Ctx) error {
	out, err := h.resenaUC.ListarPorNegocio(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar una entrada del directorio (panel)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del negocio"
// @Param        body  body  dto.ActualizarNegocioRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.NegocioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/negocios/{id} [put]
func (h *NegocioHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarNegocioRequest
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
		return notFound(c, "negocio no encontrado")
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar una entrada y sus reseñas (panel)
// @Description  El borrado es en cascada: las reseñas del negocio se eliminan en la misma transacción.
// @Tags         admin
// @Produce      json
// @Param        id   path  string  true  "ID del negocio"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/admin/negocios/{id} [delete]
func (h *NegocioHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
