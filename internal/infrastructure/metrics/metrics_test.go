package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_ExponeMetricasPorRuta(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/metrics", Handler())
	app.Get("/api/clients/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest("GET", "/api/clients/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)

	out := string(body)
	assert.True(t, strings.Contains(out, `route="/api/clients/:id"`), "la etiqueta usa la ruta, no la URL")
	assert.False(t, strings.Contains(out, "/api/clients/abc"))
}

func TestMiddleware_PanicNoDejaPeticionesEnCurso(t *testing.T) {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(Middleware())
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })

	before := testutil.ToFloat64(httpInFlight)
	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, before, testutil.ToFloat64(httpInFlight))
}
