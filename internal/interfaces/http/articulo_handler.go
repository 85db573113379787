package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/dto"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/usecase"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/repository"
)

// ArticuloHandler maneja las peticiones HTTP del blog.
type ArticuloHandler struct {
	uc *usecase.ArticuloUseCase
}

// NewArticuloHandler construye el handler.
func NewArticuloHandler(uc *usecase.ArticuloUseCase) *ArticuloHandler {
	return &ArticuloHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar artículos publicados
// @Description  El listado incluye el extracto pero no el contenido completo.
// @Tags         articulos
// @Produce      json
// @Param        categoria  query  string  false  "Filtrar por categoría"
// @Param        limit      query  int     false  "Límite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.ArticuloListResponse
// @Router       /api/articulos [get]
func (h *ArticuloHandler) Listar(c *fiber.Ctx) error {
	p := paginar(c)
	out, err := h.uc.Listar(c.Context(), repository.FiltroArticulos{
		SoloPublicados: true,
		Categoria:      c.Query("categoria"),
		Limit:          p.Limit,
		Offset:         p.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListarAdmin lista todos los artículos, incluidos los borradores.
func (h *ArticuloHandler) ListarAdmin(c *fiber.Ctx) error {
	p := paginar(c)
	out, err := h.uc.Listar(c.Context(), repository.FiltroArticulos{
		Categoria: c.Query("categoria"),
		Limit:     p.Limit,
		Offset:    p.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Destacado godoc
// @Summary      Obtener el artículo destacado
// @Tags         articulos
// @Produce      json
// @Success      200  {object}  dto.ArticuloResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articulos/destacado [get]
func (h *ArticuloHandler) Destacado(c *fiber.Ctx) error {
	out, err := h.uc.Destacado(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "no hay artículo destacado")
	}
	return c.JSON(out)
}

// ObtenerPorSlug godoc
// @Summary      Obtener un artículo por slug
// @Description  Devuelve el contenido original en Markdown y su versión renderizada a HTML.
// @Tags         articulos
// @Produce      json
// @Param        slug  path  string  true  "Slug del artículo"
// @Success      200   {object}  dto.ArticuloResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/articulos/{slug} [get]
func (h *ArticuloHandler) ObtenerPorSlug(c *fiber.Ctx) error {
	out, err := h.uc.ObtenerPorSlug(c.Context(), c.Params("slug"), false)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "artículo no encontrado")
	}
	return c.JSON(out)
}

// ObtenerAdmin devuelve un artículo por slug incluyendo borradores.
func (h *ArticuloHandler) ObtenerAdmin(c *fiber.Ctx) error {
	out, err := h.uc.ObtenerPorSlug(c.Context(), c.Params("slug"), true)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "artículo no encontrado")
	}
	return c.JSON(out)
}

// Crear godoc
// @Summary      Crear un artículo (panel)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearArticuloRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.ArticuloResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/articulos [post]
func (h *ArticuloHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearArticuloRequest
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

// Actualizar godoc
// @Summary      Actualizar un artículo (panel)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.ActualizarArticuloRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ArticuloResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/articulos/{id} [put]
func (h *ArticuloHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarArticuloRequest
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
		return notFound(c, "artículo no encontrado")
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar un artículo (panel)
// @Tags         admin
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/admin/articulos/{id} [delete]
func (h *ArticuloHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
