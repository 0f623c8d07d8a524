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

// ItemUseCase aplica reglas de negocio para el catálogo de ítems.
type ItemUseCase struct {
	repo      repository.ItemRepository
	projects  repository.ProjectRepository
	suppliers repository.SupplierRepository
	Shared
}

// NewItemUseCase construye el caso de uso de ítems.
func NewItemUseCase(repo repository.ItemRepository, projects repository.ProjectRepository, suppliers repository.SupplierRepository, shared Shared) *ItemUseCase {
	return &ItemUseCase{repo: repo, projects: projects, suppliers: suppliers, Shared: shared}
}

// Create da de alta un ítem.
func (uc *ItemUseCase) Create(ctx context.Context, actor dto.Principal, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	now := time.Now().UTC()
	item := &entity.Item{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
		MPN:         in.MPN,
		Make:        in.Make,
		Notes:       in.Notes,
		CreatedBy:   actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagItems, ports.TagDashboard)
	return toItemResponse(item), nil
}

// GetByID obtiene un ítem por ID.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// List lista ítems con paginación y búsqueda por nombre.
func (uc *ItemUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ItemListResponse, error) {
	p := toListParams(page)
	return ports.Remember(ctx, uc.Cache, listKey("items", p), uc.CacheTTL, []string{ports.TagItems},
		func() (*dto.ItemListResponse, error) {
			list, total, err := uc.repo.List(ctx, p)
			if err != nil {
				return nil, err
			}
			items := make([]dto.ItemResponse, 0, len(list))
			for _, it := range list {
				items = append(items, *toItemResponse(it))
			}
			return &dto.ItemListResponse{Items: items, Page: toPageResponse(p, total)}, nil
		})
}

// ListOptions lista (id, nombre) de todos los ítems.
func (uc *ItemUseCase) ListOptions(ctx context.Context) ([]dto.OptionResponse, error) {
	return ports.Remember(ctx, uc.Cache, "items:options", uc.CacheTTL, []string{ports.TagItems},
		func() ([]dto.OptionResponse, error) {
			list, err := uc.repo.ListOptions(ctx)
			if err != nil {
				return nil, err
			}
			return toOptionResponses(list), nil
		})
}

// Projects proyectos que usan el ítem en cualquiera de sus listas.
func (uc *ItemUseCase) Projects(ctx context.Context, id string) ([]dto.OptionResponse, error) {
	if err := uc.mustExist(ctx, id); err != nil {
		return nil, err
	}
	list, err := uc.projects.ListByItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOptionResponses(list), nil
}

// Suppliers proveedores a los que se compró el ítem.
func (uc *ItemUseCase) Suppliers(ctx context.Context, id string) ([]dto.OptionResponse, error) {
	if err := uc.mustExist(ctx, id); err != nil {
		return nil, err
	}
	list, err := uc.suppliers.ListByItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOptionResponses(list), nil
}

// Update aplica cambios parciales.
func (uc *ItemUseCase) Update(ctx context.Context, actor dto.Principal, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Type != nil {
		item.Type = *in.Type
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.MPN != nil {
		item.MPN = *in.MPN
	}
	if in.Make != nil {
		item.Make = *in.Make
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}
	item.UpdatedBy = &actor.UserID
	item.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagItems, ports.TagProjects)
	return toItemResponse(item), nil
}

// Delete borra el ítem. Falla con ErrConflict si algún proyecto lo usa.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagItems, ports.TagDashboard)
	return nil
}

func (uc *ItemUseCase) mustExist(ctx context.Context, id string) error {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Type:        it.Type,
		Description: it.Description,
		MPN:         it.MPN,
		Make:        it.Make,
		Notes:       it.Notes,
		CreatedBy:   it.CreatedBy,
		UpdatedBy:   it.UpdatedBy,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
