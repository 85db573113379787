package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/auth"
	apphttp "github.com/dramirez-dev/conecta-pueblo-api/internal/interfaces/http"
	"github.com/dramirez-dev/conecta-pueblo-api/pkg/session"
)

const testAdminPassword = "clave-admin-de-pruebas"

func buildAuthApp() *fiber.App {
	uc := auth.NewAuthUseCase(auth.Config{
		Password: testAdminPassword,
		Secret:   testSessionSecret,
		Issuer:   "conecta-pueblo-test",
		TTL:      time.Hour,
	})
	handler := apphttp.NewAuthHandler(uc, testCookieName, false)
	app := fiber.New()
	app.Post("/login", handler.Login)
	app.Post("/logout", handler.Logout)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func cookieDeSesion(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	return nil
}

func TestLogin_CredencialCorrecta_EmiteCookieFirmada(t *testing.T) {
	app := buildAuthApp()
	resp := postLogin(t, app, `{"password":"`+testAdminPassword+`"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := cookieDeSesion(resp)
	require.NotNil(t, cookie, "el login debe emitir la cookie de sesión")
	assert.True(t, cookie.HttpOnly, "la cookie debe ser HttpOnly")
	assert.NoError(t, session.Verificar(testSessionSecret, cookie.Value),
		"el valor de la cookie debe ser un token firmado verificable")
}

func TestLogin_CredencialIncorrecta_Retorna401(t *testing.T) {
	app := buildAuthApp()
	resp := postLogin(t, app, `{"password":"incorrecta"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, cookieDeSesion(resp), "un login fallido no debe emitir cookie")
}

func TestLogin_SinPassword_Retorna400(t *testing.T) {
	app := buildAuthApp()
	resp := postLogin(t, app, `{}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogout_ExpiraLaCookie(t *testing.T) {
	app := buildAuthApp()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookie := cookieDeSesion(resp)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value, "el logout debe vaciar la cookie")
	assert.True(t, cookie.Expires.Before(time.Now()), "la cookie debe quedar expirada")
}
