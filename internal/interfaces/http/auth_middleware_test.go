package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/domain"
	apphttp "github.com/seifmegahed/daftar/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	adminToken   = "tok-admin"
	userToken    = "tok-user"
	expiredToken = "tok-expired"
	noRoleToken  = "tok-norole"
)

// fakeAuthenticator resuelve tokens fijos sin tocar la base de datos.
type fakeAuthenticator struct{}

func (fakeAuthenticator) Authenticate(_ context.Context, token string) (*dto.Principal, error) {
	switch token {
	case adminToken:
		return &dto.Principal{UserID: "u-admin", SessionID: "s1", Username: "admin", Role: "admin"}, nil
	case userToken:
		return &dto.Principal{UserID: "u-user", SessionID: "s2", Username: "maria", Role: "user"}, nil
	case noRoleToken:
		return &dto.Principal{UserID: "u-x", SessionID: "s3"}, nil
	case expiredToken:
		return nil, domain.ErrSessionExpired
	}
	return nil, domain.ErrUnauthorized
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - LocaleMiddleware para traducir los errores
//   - AuthMiddleware con un autenticador falso
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Use(apphttp.LocaleMiddleware(false))
	app.Get("/protected",
		apphttp.AuthMiddleware(fakeAuthenticator{}),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"role":    apphttp.GetRole(c),
				"user_id": apphttp.GetUserID(c),
			})
		},
	)
	return app
}

func bearer(tok string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok) }
}

func cookie(tok string) func(*http.Request) {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: apphttp.TokenCookie, Value: tok}) }
}

func header(k, v string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set(k, v) }
}

// doRequest lanza una petición GET y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, target string, opts ...func(*http.Request)) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, o := range opts {
		o(req)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	defer resp.Body.Close()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_BearerValido(t *testing.T) {
	app := buildTestApp("admin", "user")
	resp := doRequest(t, app, "/protected", bearer(userToken))
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "user", body["role"])
	assert.Equal(t, "u-user", body["user_id"])
}

func TestAuthMiddleware_CookieValida(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "/protected", cookie(adminToken))
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_CookieTienePrioridadSobreHeader(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "/protected", cookie(adminToken), bearer(userToken))
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_SinToken(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "/protected")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", decodeError(t, resp).Code)
}

func TestAuthMiddleware_HeaderMalformado(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "/protected", header("Authorization", "Token abc"))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, resp).Code)
}

func TestAuthMiddleware_SesionExpirada(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "/protected", bearer(expiredToken))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SESSION_EXPIRED", decodeError(t, resp).Code)
}

func TestAuthMiddleware_TokenDesconocido(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "/protected", bearer("basura"))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "/protected", bearer(adminToken))
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_UserNoAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "/protected", bearer(userToken))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decodeError(t, resp).Code)
}

func TestRequireRole_SinRol(t *testing.T) {
	app := buildTestApp("admin", "user")
	resp := doRequest(t, app, "/protected", bearer(noRoleToken))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_ROLE", decodeError(t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests LocaleMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestLocale_AcceptLanguage(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "/protected", header("Accept-Language", "es-CO,es;q=0.9"))
	assert.Equal(t, "es", resp.Header.Get("Content-Language"))
	assert.Equal(t, "Debe iniciar sesión", decodeError(t, resp).Message)
}

func TestLocale_CookieGanaAAcceptLanguage(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "/protected",
		header("Accept-Language", "es"),
		func(r *http.Request) { r.AddCookie(&http.Cookie{Name: apphttp.LocaleCookie, Value: "ar"}) },
	)
	assert.Equal(t, "ar", resp.Header.Get("Content-Language"))
	assert.Equal(t, "يجب تسجيل الدخول", decodeError(t, resp).Message)
}

func TestLocale_QueryPersisteCookie(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "/protected?lang=es", header("Accept-Language", "ar"))
	defer resp.Body.Close()

	assert.Equal(t, "es", resp.Header.Get("Content-Language"))
	var found bool
	for _, ck := range resp.Cookies() {
		if ck.Name == apphttp.LocaleCookie {
			found = true
			assert.Equal(t, "es", ck.Value)
		}
	}
	assert.True(t, found, "?lang debe guardarse en la cookie locale")
}

func TestLocale_IdiomaNoSoportadoCaeAIngles(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "/protected?lang=fr", header("Accept-Language", "de-DE"))
	assert.Equal(t, "en", resp.Header.Get("Content-Language"))
	assert.Equal(t, "You must sign in", decodeError(t, resp).Message)
}
