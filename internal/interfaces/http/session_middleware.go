package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/dto"
	"github.com/dramirez-dev/conecta-pueblo-api/pkg/session"
)

// SessionMiddleware protege las rutas del panel de administración.
// Exige la cookie de sesión con un token firmado válido: la mera presencia
// de la cookie no autentica, la firma y la expiración se verifican siempre.
func SessionMiddleware(secret, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		if err := session.Verificar(secret, token); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión inválida o expirada"})
		}
		return c.Next()
	}
}
