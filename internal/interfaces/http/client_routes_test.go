package http_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/seifmegahed/daftar/internal/application/usecase"
	"github.com/seifmegahed/daftar/internal/infrastructure/postgres"
	apphttp "github.com/seifmegahed/daftar/internal/interfaces/http"
)

// pgStub responde como PostgreSQL para ids con formato inválido (22P02)
// y para filas referenciadas por otra tabla (23503).
type pgStub struct {
	referenced map[string]bool
}

func (p pgStub) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	id, _ := args[0].(string)
	if _, err := uuid.Parse(id); err != nil {
		return pgconn.CommandTag{}, &pgconn.PgError{Code: "22P02"}
	}
	if p.referenced[id] {
		return pgconn.CommandTag{}, &pgconn.PgError{Code: "23503"}
	}
	return pgconn.NewCommandTag("DELETE 1"), nil
}

func (p pgStub) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("query no soportada")
}

func (p pgStub) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	id, _ := args[0].(string)
	if _, err := uuid.Parse(id); err != nil {
		return errRow{&pgconn.PgError{Code: "22P02"}}
	}
	return errRow{pgx.ErrNoRows}
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

const referencedClient = "7a1c58a4-3f0e-4a52-9d0b-1f6f2b0c9e11"

func newClientRouter() *fiber.App {
	db := pgStub{referenced: map[string]bool{referencedClient: true}}
	app := fiber.New()
	app.Use(apphttp.LocaleMiddleware(false))
	apphttp.Router(app, apphttp.RouterDeps{
		Authenticator: fakeAuthenticator{},
		ClientUC: usecase.NewClientUseCase(
			postgres.NewClientRepository(db),
			postgres.NewAddressRepository(db),
			postgres.NewContactRepository(db),
			postgres.NewProjectRepository(db),
			nil,
			usecase.Shared{},
		),
	})
	return app
}

func TestClients_BorrarReferenciadoDaConflicto(t *testing.T) {
	app := newClientRouter()
	resp := send(t, app, http.MethodDelete, "/api/clients/"+referencedClient, adminToken, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", decodeError(t, resp).Code)
}

func TestClients_IDMalFormadoEsNoEncontrado(t *testing.T) {
	app := newClientRouter()

	resp := send(t, app, http.MethodGet, "/api/clients/abc", userToken, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)

	resp = send(t, app, http.MethodDelete, "/api/clients/abc", adminToken, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)

	resp = send(t, app, http.MethodGet, "/api/clients/"+uuid.NewString(), userToken, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
