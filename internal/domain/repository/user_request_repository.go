package repository

import (
	"context"

	"github.com/seifmegahed/daftar/internal/domain/entity"
)

// UserRequestRepository solicitudes de usuarios a administradores.
type UserRequestRepository interface {
	Create(ctx context.Context, r *entity.UserRequest) error
	GetByID(ctx context.Context, id string) (*entity.UserRequest, error)
	Resolve(ctx context.Context, r *entity.UserRequest) error
	ListByUser(ctx context.Context, userID string, p ListParams) ([]*entity.UserRequest, int, error)
	// List todas las solicitudes; status vacío = cualquier estado.
	List(ctx context.Context, status string, p ListParams) ([]*entity.UserRequest, int, error)
}
