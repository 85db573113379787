package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/dramirez-dev/conecta-pueblo-api/internal/interfaces/http"
	"github.com/dramirez-dev/conecta-pueblo-api/pkg/session"
)

const (
	testSessionSecret = "secret-de-pruebas-middleware"
	testCookieName    = "sesion_admin"
)

// buildGuardedApp construye una app mínima con una ruta protegida por la
// cookie de sesión y un handler dummy que responde 200 si el guard pasa.
func buildGuardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protegida",
		apphttp.SessionMiddleware(testSessionSecret, testCookieName),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

func doGuardedRequest(t *testing.T, app *fiber.App, cookieValue string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookieValue})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Sin cookie la petición se rechaza antes de llegar al handler.
func TestSessionMiddleware_SinCookie_Retorna401(t *testing.T) {
	app := buildGuardedApp()
	resp := doGuardedRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"sin cookie de sesión la ruta debe responder 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNAUTHORIZED")
}

// La mera presencia de la cookie no basta: el valor debe ser un token firmado.
func TestSessionMiddleware_CookieSinFirmaValida_Retorna401(t *testing.T) {
	app := buildGuardedApp()
	resp := doGuardedRequest(t, app, "cualquier-valor-sin-firmar")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"una cookie presente pero sin firma válida debe rechazarse")
}

func TestSessionMiddleware_FirmaDeOtroSecret_Retorna401(t *testing.T) {
	tok, err := session.Emitir("otro-secret", "test", time.Hour)
	require.NoError(t, err)

	app := buildGuardedApp()
	resp := doGuardedRequest(t, app, tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token firmado con otro secret debe rechazarse")
}

func TestSessionMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	tok, err := session.Emitir(testSessionSecret, "test", -time.Minute)
	require.NoError(t, err)

	app := buildGuardedApp()
	resp := doGuardedRequest(t, app, tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token expirado debe rechazarse aunque la firma sea correcta")
}

func TestSessionMiddleware_TokenValido_Pasa(t *testing.T) {
	tok, err := session.Emitir(testSessionSecret, "test", time.Hour)
	require.NoError(t, err)

	app := buildGuardedApp()
	resp := doGuardedRequest(t, app, tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un token firmado y vigente debe dejar pasar la petición")
}
