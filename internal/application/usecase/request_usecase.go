package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/application/ports"
	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
)

// UserRequestUseCase solicitudes de usuarios a los administradores.
type UserRequestUseCase struct {
	repo repository.UserRequestRepository
	Shared
}

// NewUserRequestUseCase construye el caso de uso de solicitudes.
func NewUserRequestUseCase(repo repository.UserRequestRepository, shared Shared) *UserRequestUseCase {
	return &UserRequestUseCase{repo: repo, Shared: shared}
}

// Create registra una solicitud pendiente del principal.
func (uc *UserRequestUseCase) Create(ctx context.Context, actor dto.Principal, in dto.CreateUserRequestRequest) (*dto.UserRequestResponse, error) {
	r := &entity.UserRequest{
		ID:        uuid.New().String(),
		UserID:    actor.UserID,
		Subject:   in.Subject,
		Body:      in.Body,
		Status:    entity.RequestPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagRequests, ports.TagDashboard)
	return toUserRequestResponse(r), nil
}

// Mine lista las solicitudes del principal.
func (uc *UserRequestUseCase) Mine(ctx context.Context, actor dto.Principal, page dto.PageRequest) (*dto.UserRequestListResponse, error) {
	p := toListParams(page)
	list, total, err := uc.repo.ListByUser(ctx, actor.UserID, p)
	if err != nil {
		return nil, err
	}
	return &dto.UserRequestListResponse{Items: toUserRequestResponses(list), Page: toPageResponse(p, total)}, nil
}

// List todas las solicitudes, con filtro opcional por estado (admin).
func (uc *UserRequestUseCase) List(ctx context.Context, in dto.UserRequestFilter) (*dto.UserRequestListResponse, error) {
	p := toListParams(in.PageRequest)
	return ports.Remember(ctx, uc.Cache, listKey("requests", p, in.Status), uc.CacheTTL, []string{ports.TagRequests},
		func() (*dto.UserRequestListResponse, error) {
			list, total, err := uc.repo.List(ctx, in.Status, p)
			if err != nil {
				return nil, err
			}
			return &dto.UserRequestListResponse{Items: toUserRequestResponses(list), Page: toPageResponse(p, total)}, nil
		})
}

// GetByID el dueño o un admin pueden ver la solicitud; para el resto no existe.
func (uc *UserRequestUseCase) GetByID(ctx context.Context, actor dto.Principal, id string) (*dto.UserRequestResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil || (r.UserID != actor.UserID && !actor.IsAdmin()) {
		return nil, nil
	}
	return toUserRequestResponse(r), nil
}

// Resolve aprueba o rechaza una solicitud pendiente. Resolver una ya resuelta es ErrConflict.
func (uc *UserRequestUseCase) Resolve(ctx context.Context, actor dto.Principal, id string, in dto.ResolveUserRequestRequest) (*dto.UserRequestResponse, error) {
	if in.Status != entity.RequestApproved && in.Status != entity.RequestRejected {
		return nil, domain.ErrInvalidInput
	}
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	if !r.Pending() {
		return nil, domain.ErrConflict
	}
	now := time.Now().UTC()
	r.Status = in.Status
	r.ResolvedBy = &actor.UserID
	r.ResolvedAt = &now
	if err := uc.repo.Resolve(ctx, r); err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagRequests, ports.TagDashboard)
	uc.logger().Info().Str("request_id", id).Str("status", r.Status).Str("user_id", actor.UserID).Msg("solicitud resuelta")
	return toUserRequestResponse(r), nil
}

func toUserRequestResponse(r *entity.UserRequest) *dto.UserRequestResponse {
	return &dto.UserRequestResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		Subject:    r.Subject,
		Body:       r.Body,
		Status:     r.Status,
		ResolvedBy: r.ResolvedBy,
		ResolvedAt: r.ResolvedAt,
		CreatedAt:  r.CreatedAt,
	}
}

func toUserRequestResponses(list []*entity.UserRequest) []dto.UserRequestResponse {
	out := make([]dto.UserRequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toUserRequestResponse(r))
	}
	return out
}
