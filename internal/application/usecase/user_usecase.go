package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/seifmegahed/daftar/internal/application/auth"
	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/application/ports"
	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/internal/domain/account"
	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
	"github.com/seifmegahed/daftar/pkg/textutil"
)

// UserUseCase aplica reglas de negocio para usuarios (administración).
type UserUseCase struct {
	repo       repository.UserRepository
	sessions   repository.SessionRepository
	bcryptCost int
	Shared
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, sessions repository.SessionRepository, bcryptCost int, shared Shared) *UserUseCase {
	return &UserUseCase{repo: repo, sessions: sessions, bcryptCost: bcryptCost, Shared: shared}
}

// Create crea un usuario validando formato de usuario y complejidad de contraseña.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !account.ValidUsername(in.Username) {
		return nil, domain.ErrInvalidUsername
	}
	if !account.ValidPassword(in.Password) {
		return nil, domain.ErrWeakPassword
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := auth.HashPassword(in.Password, uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Name:         in.Name,
		PasswordHash: hash,
		Role:         in.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagUsers)
	uc.logger().Info().Str("user_id", user.ID).Str("role", user.Role).Msg("usuario creado")
	return entityToUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return entityToUserResponse(user), nil
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.UserListResponse, error) {
	p := toListParams(page)
	return ports.Remember(ctx, uc.Cache, listKey("users", p), uc.CacheTTL, []string{ports.TagUsers},
		func() (*dto.UserListResponse, error) {
			list, total, err := uc.repo.List(ctx, p)
			if err != nil {
				return nil, err
			}
			items := make([]dto.UserResponse, 0, len(list))
			for _, u := range list {
				items = append(items, *entityToUserResponse(u))
			}
			return &dto.UserListResponse{Items: items, Page: toPageResponse(p, total)}, nil
		})
}

// ListOptions lista (id, nombre) de usuarios activos.
func (uc *UserUseCase) ListOptions(ctx context.Context) ([]dto.OptionResponse, error) {
	return ports.Remember(ctx, uc.Cache, "users:options", uc.CacheTTL, []string{ports.TagUsers},
		func() ([]dto.OptionResponse, error) {
			list, err := uc.repo.ListOptions(ctx)
			if err != nil {
				return nil, err
			}
			return toOptionResponses(list), nil
		})
}

// Update cambia nombre, rol o estado. Un admin no puede cambiar su propio rol o estado,
// y no se puede dejar el sistema sin administradores activos.
func (uc *UserUseCase) Update(ctx context.Context, actor dto.Principal, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	roleChange := in.Role != nil && *in.Role != user.Role
	activeChange := in.Active != nil && *in.Active != user.Active
	if actor.UserID == user.ID && (roleChange || activeChange) {
		return nil, domain.ErrSelfUpdate
	}
	if user.IsAdmin() && user.Active && ((roleChange && *in.Role != entity.RoleAdmin) || (activeChange && !*in.Active)) {
		n, err := uc.repo.CountAdmins(ctx)
		if err != nil {
			return nil, err
		}
		if n <= 1 {
			return nil, domain.ErrConflict
		}
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	user.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	// un usuario desactivado pierde sus sesiones
	if activeChange && !user.Active {
		if err := uc.sessions.DeleteByUser(ctx, user.ID); err != nil {
			return nil, err
		}
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagUsers)
	return entityToUserResponse(user), nil
}

// ResetPassword un admin fija la contraseña de otro usuario; se cierran sus sesiones.
func (uc *UserUseCase) ResetPassword(ctx context.Context, id string, in dto.ResetPasswordRequest) error {
	if !account.ValidPassword(in.Password) {
		return domain.ErrWeakPassword
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := auth.HashPassword(in.Password, uc.bcryptCost)
	if err != nil {
		return err
	}
	if err := uc.repo.UpdatePassword(ctx, id, hash); err != nil {
		return err
	}
	return uc.sessions.DeleteByUser(ctx, id)
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Initials:  textutil.Initials(u.Name),
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
