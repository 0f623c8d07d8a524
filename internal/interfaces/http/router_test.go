package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/application/usecase"
	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
	apphttp "github.com/seifmegahed/daftar/internal/interfaces/http"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeItems struct {
	repository.ItemRepository
	byID  map[string]*entity.Item
	inUse map[string]bool
}

func (f *fakeItems) Create(_ context.Context, it *entity.Item) error {
	for _, x := range f.byID {
		if x.Name == it.Name {
			return domain.ErrDuplicate
		}
	}
	f.byID[it.ID] = it
	return nil
}

func (f *fakeItems) GetByID(_ context.Context, id string) (*entity.Item, error) {
	return f.byID[id], nil
}

func (f *fakeItems) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	if f.inUse[id] {
		return domain.ErrConflict
	}
	delete(f.byID, id)
	return nil
}

// newTestRouter monta el router completo con un catálogo de ítems en memoria.
// Los demás casos de uso quedan en nil: las pruebas solo tocan rutas que no los usan
// o que fallan antes (validación, RBAC).
func newTestRouter(items *fakeItems) *fiber.App {
	app := fiber.New()
	app.Use(apphttp.LocaleMiddleware(false))
	apphttp.Router(app, apphttp.RouterDeps{
		Authenticator: fakeAuthenticator{},
		ItemUC:        usecase.NewItemUseCase(items, nil, nil, usecase.Shared{}),
	})
	return app
}

func send(t *testing.T, app *fiber.App, method, target, tok, body string, opts ...func(*http.Request)) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	for _, o := range opts {
		o(req)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func newFakeItems() *fakeItems {
	return &fakeItems{
		byID: map[string]*entity.Item{
			"it-1": {ID: "it-1", Name: "Bomba centrífuga", Make: "Grundfos"},
			"it-2": {ID: "it-2", Name: "Válvula", Make: "Danfoss"},
		},
		inUse: map[string]bool{"it-2": true},
	}
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestRouter_LoginEsPublicoYLoDemasNo(t *testing.T) {
	app := newTestRouter(newFakeItems())

	resp := send(t, app, http.MethodGet, "/api/items/it-1", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// login con cuerpo inválido responde 400 antes de llegar al caso de uso
	resp = send(t, app, http.MethodPost, "/api/auth/login", "", "{")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}

func TestRouter_Me(t *testing.T) {
	app := newTestRouter(newFakeItems())
	resp := send(t, app, http.MethodGet, "/api/auth/me", userToken, "")
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var p dto.Principal
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, "maria", p.Username)
	assert.Equal(t, "user", p.Role)
}

func TestItems_CrearYObtener(t *testing.T) {
	items := newFakeItems()
	app := newTestRouter(items)

	resp := send(t, app, http.MethodPost, "/api/items", userToken, `{"name":"Motor 5HP","make":"WEG","mpn":"W22"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created dto.ItemResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.Equal(t, "Motor 5HP", created.Name)
	assert.Equal(t, "u-user", created.CreatedBy)

	resp = send(t, app, http.MethodGet, "/api/items/"+created.ID, userToken, "")
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got dto.ItemResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "WEG", got.Make)
}

func TestItems_NombreDuplicado(t *testing.T) {
	app := newTestRouter(newFakeItems())
	resp := send(t, app, http.MethodPost, "/api/items", userToken, `{"name":"Válvula"}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decodeError(t, resp).Code)
}

func TestItems_NoEncontrado(t *testing.T) {
	app := newTestRouter(newFakeItems())
	resp := send(t, app, http.MethodGet, "/api/items/nope", userToken, "", header("Accept-Language", "es"))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Equal(t, "Registro no encontrado", body.Message)
}

func TestItems_ValidacionPorCampoTraducida(t *testing.T) {
	app := newTestRouter(newFakeItems())
	resp := send(t, app, http.MethodPost, "/api/items", userToken, `{"name":""}`, header("Accept-Language", "es"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "Este campo es obligatorio", body.Fields["name"])
}

func TestItems_BorrarSoloAdmin(t *testing.T) {
	items := newFakeItems()
	app := newTestRouter(items)

	resp := send(t, app, http.MethodDelete, "/api/items/it-1", userToken, "")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
	assert.Contains(t, items.byID, "it-1")

	resp = send(t, app, http.MethodDelete, "/api/items/it-1", adminToken, "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
	assert.NotContains(t, items.byID, "it-1")
}

func TestItems_BorrarEnUsoDaConflicto(t *testing.T) {
	app := newTestRouter(newFakeItems())
	resp := send(t, app, http.MethodDelete, "/api/items/it-2", adminToken, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", decodeError(t, resp).Code)
}

func TestLineItems_ValidacionDeCampos(t *testing.T) {
	app := newTestRouter(newFakeItems())
	body := `{"item_id":"no-es-uuid","quantity":0,"price":"-1.50","currency":"XYZ"}`
	resp := send(t, app, http.MethodPost, "/api/projects/p-1/items/purchase", userToken, body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	out := decodeError(t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
	for _, field := range []string{"item_id", "quantity", "price", "currency"} {
		assert.Contains(t, out.Fields, field)
	}
	assert.Equal(t, "Unsupported currency", out.Fields["currency"])
}

func TestLineItems_PrecioYCantidadFueraDeRango(t *testing.T) {
	app := newTestRouter(newFakeItems())
	body := `{"item_id":"6f1d2a7e-0c55-4b1e-8f2a-9a4c1b2d3e4f","quantity":3000000000,"price":1.005,"currency":"USD"}`
	resp := send(t, app, http.MethodPost, "/api/projects/p-1/items/sale", userToken, body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	out := decodeError(t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Equal(t, "Value is too large", out.Fields["quantity"])
	assert.Equal(t, "Price must be zero or more with at most two decimals", out.Fields["price"])
	assert.NotContains(t, out.Fields, "item_id")
}

func TestUsers_PasswordMultibyteDemasiadoLargo(t *testing.T) {
	app := newTestRouter(newFakeItems())
	password := "Aa1" + strings.Repeat("é", 40)
	body := `{"username":"pedro","name":"Pedro","password":"` + password + `","role":"user"}`
	resp := send(t, app, http.MethodPost, "/api/users", adminToken, body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	out := decodeError(t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Equal(t, "Password is too long", out.Fields["password"])
}

func TestLineItems_TipoDesconocido(t *testing.T) {
	app := newTestRouter(newFakeItems())
	resp := send(t, app, http.MethodGet, "/api/projects/p-1/items/rental", userToken, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestUsers_SoloAdmin(t *testing.T) {
	app := newTestRouter(newFakeItems())
	resp := send(t, app, http.MethodGet, "/api/users", userToken, "")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestDocuments_SubidaSinArchivo(t *testing.T) {
	app := newTestRouter(newFakeItems())
	resp := send(t, app, http.MethodPost, "/api/documents", userToken, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "MISSING_FILE", decodeError(t, resp).Code)
}
