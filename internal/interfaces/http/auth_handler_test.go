package http_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seifmegahed/daftar/internal/application/auth"
	"github.com/seifmegahed/daftar/internal/domain/repository"
	apphttp "github.com/seifmegahed/daftar/internal/interfaces/http"
	"github.com/seifmegahed/daftar/pkg/logger"
)

type fakeSessions struct {
	repository.SessionRepository
	deleted []string
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestLogout_VenceLaCookieEnLaRaiz(t *testing.T) {
	sessions := &fakeSessions{}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Authenticator: fakeAuthenticator{},
		AuthUC:        auth.NewAuthUseCase(nil, sessions, auth.Config{Secret: "s"}, logger.Nop()),
	})

	resp := send(t, app, http.MethodPost, "/api/auth/logout", "", "", cookie(userToken))
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, []string{"s2"}, sessions.deleted)

	var token *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == apphttp.TokenCookie {
			token = ck
		}
	}
	require.NotNil(t, token, "la respuesta debe vencer la cookie")
	assert.Equal(t, "/", token.Path)
	assert.Empty(t, token.Value)
	assert.True(t, token.Expires.Before(time.Now()), "la cookie queda vencida")
}
