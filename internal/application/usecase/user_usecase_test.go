package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/internal/domain/entity"
)

func newUserUC() (*UserUseCase, *fakeUsers, *fakeSessions) {
	users := &fakeUsers{byID: map[string]*entity.User{
		"admin": {ID: "admin", Username: "admin", Name: "Admin", Role: entity.RoleAdmin, Active: true},
		"u1":    {ID: "u1", Username: "maria", Name: "María López", Role: entity.RoleUser, Active: true},
	}}
	sessions := &fakeSessions{}
	return NewUserUseCase(users, sessions, bcrypt.MinCost, testShared()), users, sessions
}

func TestUserCreate_Validaciones(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUserUC()

	_, err := uc.Create(ctx, dto.CreateUserRequest{Username: "Con Espacio", Name: "X", Password: "Clave1234", Role: entity.RoleUser})
	assert.ErrorIs(t, err, domain.ErrInvalidUsername)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Username: "pedro", Name: "X", Password: "sinmayus1", Role: entity.RoleUser})
	assert.ErrorIs(t, err, domain.ErrWeakPassword)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Username: "maria", Name: "X", Password: "Clave1234", Role: entity.RoleUser})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// 43 caracteres, 83 bytes: supera el límite de bcrypt
	largo := "Aa1" + strings.Repeat("é", 40)
	_, err = uc.Create(ctx, dto.CreateUserRequest{Username: "pedro", Name: "X", Password: largo, Role: entity.RoleUser})
	assert.ErrorIs(t, err, domain.ErrWeakPassword)
	assert.ErrorIs(t, uc.ResetPassword(ctx, "u1", dto.ResetPasswordRequest{Password: largo}), domain.ErrWeakPassword)
}

func TestUserCreate_HasheaEInvalidaCache(t *testing.T) {
	ctx := context.Background()
	uc, users, _ := newUserUC()

	before, err := uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, before.Page.Total)

	res, err := uc.Create(ctx, dto.CreateUserRequest{Username: "pedro.r", Name: "Pedro Ruiz", Password: "Clave1234", Role: entity.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, "PR", res.Initials)
	assert.True(t, res.Active)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.byID[res.ID].PasswordHash), []byte("Clave1234")))

	after, err := uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, after.Page.Total, "el alta invalida el listado cacheado")
}

func TestUserUpdate_PropioRolOEstado(t *testing.T) {
	uc, _, _ := newUserUC()
	actor := dto.Principal{UserID: "admin", Role: entity.RoleAdmin}

	_, err := uc.Update(context.Background(), actor, "admin", dto.UpdateUserRequest{Role: strp(entity.RoleUser)})
	assert.ErrorIs(t, err, domain.ErrSelfUpdate)

	// cambiar solo el nombre propio está permitido
	res, err := uc.Update(context.Background(), actor, "admin", dto.UpdateUserRequest{Name: strp("Admin Principal")})
	require.NoError(t, err)
	assert.Equal(t, "AP", res.Initials)
}

func TestUserUpdate_UltimoAdmin(t *testing.T) {
	uc, users, _ := newUserUC()
	users.byID["root"] = &entity.User{ID: "root", Username: "root", Role: entity.RoleUser, Active: true}
	actor := dto.Principal{UserID: "root", Role: entity.RoleAdmin}

	_, err := uc.Update(context.Background(), actor, "admin", dto.UpdateUserRequest{Role: strp(entity.RoleUser)})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserUpdate_DesactivarCierraSesiones(t *testing.T) {
	uc, users, sessions := newUserUC()
	actor := dto.Principal{UserID: "admin", Role: entity.RoleAdmin}
	off := false

	res, err := uc.Update(context.Background(), actor, "u1", dto.UpdateUserRequest{Active: &off})
	require.NoError(t, err)
	assert.False(t, res.Active)
	assert.False(t, users.byID["u1"].Active)
	assert.Equal(t, []string{"u1"}, sessions.deletedFor)
}

func TestUserUpdate_NoExiste(t *testing.T) {
	uc, _, _ := newUserUC()
	res, err := uc.Update(context.Background(), dto.Principal{UserID: "admin"}, "nope", dto.UpdateUserRequest{})
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestUserResetPassword(t *testing.T) {
	ctx := context.Background()
	uc, users, sessions := newUserUC()

	assert.ErrorIs(t, uc.ResetPassword(ctx, "u1", dto.ResetPasswordRequest{Password: "corta"}), domain.ErrWeakPassword)
	assert.ErrorIs(t, uc.ResetPassword(ctx, "nope", dto.ResetPasswordRequest{Password: "Nueva1234"}), domain.ErrUserNotFound)

	require.NoError(t, uc.ResetPassword(ctx, "u1", dto.ResetPasswordRequest{Password: "Nueva1234"}))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.byID["u1"].PasswordHash), []byte("Nueva1234")))
	assert.Equal(t, []string{"u1"}, sessions.deletedFor)
}
