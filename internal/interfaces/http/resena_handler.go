package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/dto"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/usecase"
)

// ResenaHandler maneja las peticiones HTTP de reseñas.
type ResenaHandler struct {
	uc *usecase.ResenaUseCase
}

// NewResenaHandler construye el handler.
func NewResenaHandler(uc *usecase.ResenaUseCase) *ResenaHandler {
	return &ResenaHandler{uc: uc}
}

// Crear godoc
// @Summary      Enviar una reseña
// @Description  La reseña entra en moderación y no cuenta para el promedio hasta ser aprobada.
// @Tags         resenas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearResenaRequest  true  "Datos de la reseña"
// @Success      201   {object}  dto.ResenaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/resenas [post]
func (h *ResenaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearResenaRequest
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
// @Summary      Listar las reseñas aprobadas de un negocio
// @Tags         resenas
// @Produce      json
// @Param        negocio_id  query  string  true  "ID del negocio"
// @Success      200  {object}  dto.ResenaListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/resenas [get]
func (h *ResenaHandler) Listar(c *fiber.Ctx) error {
	negocioID := c.Query("negocio_id")
	if negocioID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "negocio_id es requerido"})
	}
	out, err := h.uc.ListarPorNegocio(c.Context(), negocioID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListarAdmin godoc
// @Summary      Listar todas las reseñas (panel)
// @Tags         admin
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.ResenaListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/admin/resenas [get]
func (h *ResenaHandler) ListarAdmin(c *fiber.Ctx) error {
	p := paginar(c)
	out, err := h.uc.ListarTodas(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Aprobar o retirar una reseña (panel)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la reseña"
// @Param        body  body  dto.ActualizarResenaRequest  true  "Estado de aprobación"
// @Success      200   {object}  dto.ResenaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/resenas/{id} [put]
func (h *ResenaHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarResenaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Actualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "reseña no encontrada")
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar una reseña (panel)
// @Tags         admin
// @Produce      json
// @Param        id   path  string  true  "ID de la reseña"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/admin/resenas/{id} [delete]
func (h *ResenaHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
