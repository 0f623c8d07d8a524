package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/internal/domain/entity"
)

func TestUserRequest_ResolverUnaSolaVez(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRequests{byID: map[string]*entity.UserRequest{}}
	uc := NewUserRequestUseCase(repo, testShared())
	admin := dto.Principal{UserID: "admin", Role: entity.RoleAdmin}

	r, err := uc.Create(ctx, actorUser, dto.CreateUserRequestRequest{Subject: "Borrar cliente duplicado"})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestPending, r.Status)

	res, err := uc.Resolve(ctx, admin, r.ID, dto.ResolveUserRequestRequest{Status: entity.RequestApproved})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestApproved, res.Status)
	require.NotNil(t, res.ResolvedBy)
	assert.Equal(t, "admin", *res.ResolvedBy)

	_, err = uc.Resolve(ctx, admin, r.ID, dto.ResolveUserRequestRequest{Status: entity.RequestRejected})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.Resolve(ctx, admin, r.ID, dto.ResolveUserRequestRequest{Status: entity.RequestPending})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserRequest_AjenaNoVisible(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRequests{byID: map[string]*entity.UserRequest{}}
	uc := NewUserRequestUseCase(repo, testShared())

	r, err := uc.Create(ctx, actorUser, dto.CreateUserRequestRequest{Subject: "x"})
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, dto.Principal{UserID: "u2", Role: entity.RoleUser}, r.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = uc.GetByID(ctx, dto.Principal{UserID: "u9", Role: entity.RoleAdmin}, r.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}
