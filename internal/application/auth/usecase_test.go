package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
	"github.com/seifmegahed/daftar/pkg/logger"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeUsers struct {
	repository.UserRepository
	byID map[string]*entity.User
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.byID[id], nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id, hash string) error {
	f.byID[id].PasswordHash = hash
	return nil
}

type fakeSessions struct {
	mu   sync.Mutex
	byID map[string]*entity.Session
}

func (f *fakeSessions) Create(_ context.Context, s *entity.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSessions) GetByID(_ context.Context, id string) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id], nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
	return nil
}

func (f *fakeSessions) DeleteByUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, s := range f.byID {
		if s.UserID == userID {
			delete(f.byID, id)
		}
	}
	return nil
}

func (f *fakeSessions) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, s := range f.byID {
		if s.Expired(now) {
			delete(f.byID, id)
			n++
		}
	}
	return n, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

const testPassword = "Secreta123"

func newTestAuth(t *testing.T, active bool) (*AuthUseCase, *fakeUsers, *fakeSessions) {
	t.Helper()
	hash, err := HashPassword(testPassword, bcrypt.MinCost)
	require.NoError(t, err)
	users := &fakeUsers{byID: map[string]*entity.User{
		"u1": {ID: "u1", Username: "maria", Name: "María López", PasswordHash: hash, Role: entity.RoleUser, Active: active},
	}}
	sessions := &fakeSessions{byID: map[string]*entity.Session{}}
	uc := NewAuthUseCase(users, sessions, Config{
		Secret: "test-secret", Issuer: "daftar-test", SessionTTL: time.Hour, BcryptCost: bcrypt.MinCost,
	}, logger.Nop())
	return uc, users, sessions
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestLogin_Authenticate_Logout(t *testing.T) {
	ctx := context.Background()
	uc, _, sessions := newTestAuth(t, true)

	res, err := uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: testPassword})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, "ML", res.User.Initials)
	assert.Len(t, sessions.byID, 1)

	p, err := uc.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, entity.RoleUser, p.Role)
	assert.Len(t, p.SessionID, 64, "token de sesión de 32 bytes en hex")

	require.NoError(t, uc.Logout(ctx, p.SessionID))
	_, err = uc.Authenticate(ctx, res.Token)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newTestAuth(t, true)

	_, err := uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "usuario inexistente no se distingue de contraseña errónea")
}

func TestLogin_CuentaInactiva(t *testing.T) {
	uc, _, sessions := newTestAuth(t, false)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
	assert.Empty(t, sessions.byID)
}

func TestAuthenticate_SesionExpirada(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newTestAuth(t, true)
	res, err := uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: testPassword})
	require.NoError(t, err)

	// la sesión vence en el servidor aunque el JWT todavía sea válido
	uc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = uc.Authenticate(ctx, res.Token)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	n, err := uc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestAuthenticate_UsuarioDesactivado(t *testing.T) {
	ctx := context.Background()
	uc, users, _ := newTestAuth(t, true)
	res, err := uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: testPassword})
	require.NoError(t, err)

	users.byID["u1"].Active = false
	_, err = uc.Authenticate(ctx, res.Token)
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}

func TestAuthenticate_TokenInvalido(t *testing.T) {
	uc, _, _ := newTestAuth(t, true)
	_, err := uc.Authenticate(context.Background(), "no-es-un-jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	uc, users, _ := newTestAuth(t, true)
	p := dto.Principal{UserID: "u1"}

	err := uc.ChangePassword(ctx, p, dto.ChangePasswordRequest{CurrentPassword: "mala", NewPassword: "Nueva1234"})
	assert.ErrorIs(t, err, domain.ErrWrongPassword)

	err = uc.ChangePassword(ctx, p, dto.ChangePasswordRequest{CurrentPassword: testPassword, NewPassword: "sinmayusculas1"})
	assert.ErrorIs(t, err, domain.ErrWeakPassword)

	require.NoError(t, uc.ChangePassword(ctx, p, dto.ChangePasswordRequest{CurrentPassword: testPassword, NewPassword: "Nueva1234"}))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.byID["u1"].PasswordHash), []byte("Nueva1234")))
}
