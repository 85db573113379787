package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/auth"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/dto"
)

// AuthHandler maneja el login del panel de administración. No hay usuarios:
// una única credencial compartida emite la cookie de sesión firmada.
type AuthHandler struct {
	uc         *auth.AuthUseCase
	cookieName string
	secure     bool
}

// NewAuthHandler construye el handler. secure marca la cookie Secure (producción).
func NewAuthHandler(uc *auth.AuthUseCase, cookieName string, secure bool) *AuthHandler {
	return &AuthHandler{uc: uc, cookieName: cookieName, secure: secure}
}

// Login godoc
// @Summary      Iniciar sesión de administración
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credencial del panel"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/admin/auth [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if validarBody(c, in) {
		return nil
	}
	token, err := h.uc.Login(in.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credencial incorrecta"})
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Expires:  time.Now().Add(h.uc.TTL()),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
	return c.JSON(dto.LoginResponse{Message: "sesión iniciada"})
}

// Logout godoc
// @Summary      Cerrar sesión de administración
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.LoginResponse
// @Router       /api/admin/auth [delete]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
	return c.JSON(dto.LoginResponse{Message: "sesión cerrada"})
}
