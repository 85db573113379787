package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/dto"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/usecase"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/repository"
)

// EmpleoHandler maneja las peticiones HTTP de la bolsa de empleo.
type EmpleoHandler struct {
	uc *usecase.EmpleoUseCase
}

// NewEmpleoHandler construye el handler.
func NewEmpleoHandler(uc *usecase.EmpleoUseCase) *EmpleoHandler {
	return &EmpleoHandler{uc: uc}
}

func paginar(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	p.DefaultPage()
	return p
}

// Crear godoc
// @Summary      Publicar una oferta de empleo
// @Description  La oferta entra en moderación: no es visible hasta que un administrador la apruebe.
// @Tags         empleos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearEmpleoRequest  true  "Datos de la oferta"
// @Success      201   {object}  dto.EmpleoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/empleos [post]
func (h *EmpleoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearEmpleoRequest
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
// @Summary      Crear oferta desde el panel
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearEmpleoAdminRequest  true  "Datos de la oferta"
// @Success      201   {object}  dto.EmpleoResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/admin/empleos [post]
func (h *EmpleoHandler) CrearAdmin(c *fiber.Ctx) error {
	var in dto.CrearEmpleoAdminRequest
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
// @Summary      Listar ofertas activas
// @Tags         empleos
// @Produce      json
// @Param        categoria  query  string  false  "Filtrar por categoría"
// @Param        slug       query  string  false  "Filtrar por slug"
// @Param        limit      query  int     false  "Límite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.EmpleoListResponse
// @Router       /api/empleos [get]
func (h *EmpleoHandler) Listar(c *fiber.Ctx) error {
	p := paginar(c)
	out, err := h.uc.Listar(c.Context(), repository.FiltroEmpleos{
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

// ListarAdmin godoc
// @Summary      Listar todas las ofertas (incluye pendientes)
// @Tags         admin
// @Produce      json
// @Param        categoria  query  string  false  "Filtrar por categoría"
// @Param        limit      query  int     false  "Límite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.EmpleoListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/admin/empleos [get]
func (h *EmpleoHandler) ListarAdmin(c *fiber.Ctx) error {
	p := paginar(c)
	out, err := h.uc.Listar(c.Context(), repository.FiltroEmpleos{
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
// @Summary      Obtener una oferta por ID
// @Tags         empleos
// @Produce      json
// @Param        id   path  string  true  "ID de la oferta"
// @Success      200  {object}  dto.EmpleoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empleos/{id} [get]
func (h *EmpleoHandler) Obtener(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil || !out.Activo {
		return notFound(c, "oferta no encontrada")
	}
	return c.JSON(out)
}

// ObtenerAdmin devuelve la oferta sin filtrar por estado de moderación.
func (h *EmpleoHandler) ObtenerAdmin(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "oferta no encontrada")
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar una oferta (panel)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la oferta"
// @Param        body  body  dto.ActualizarEmpleoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.EmpleoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/empleos/{id} [put]
func (h *EmpleoHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarEmpleoRequest
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
		return notFound(c, "oferta no encontrada")
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar una oferta (panel)
// @Tags         admin
// @Produce      json
// @Param        id   path  string  true  "ID de la oferta"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/admin/empleos/{id} [delete]
func (h *EmpleoHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
