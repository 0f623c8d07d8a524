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

// SupplierUseCase aplica reglas de negocio para proveedores.
type SupplierUseCase struct {
	repo      repository.SupplierRepository
	addresses repository.AddressRepository
	contacts  repository.ContactRepository
	items     repository.ItemRepository
	tx        ports.TxRunner
	Shared
}

// NewSupplierUseCase construye el caso de uso de proveedores.
func NewSupplierUseCase(
	repo repository.SupplierRepository,
	addresses repository.AddressRepository,
	contacts repository.ContactRepository,
	items repository.ItemRepository,
	tx ports.TxRunner,
	shared Shared,
) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, addresses: addresses, contacts: contacts, items: items, tx: tx, Shared: shared}
}

// Create da de alta un proveedor con dirección y contacto iniciales opcionales.
func (uc *SupplierUseCase) Create(ctx context.Context, actor dto.Principal, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	now := time.Now().UTC()
	supplier := &entity.Supplier{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		Field:              in.Field,
		RegistrationNumber: in.RegistrationNumber,
		Website:            in.Website,
		Notes:              in.Notes,
		CreatedBy:          actor.UserID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	owner := entity.ForSupplier(supplier.ID)
	address := newAddress(in.Address, owner, actor.UserID, now)
	contact := newContact(in.Contact, owner, actor.UserID, now)

	err := uc.tx.RunDirectory(ctx, func(_ repository.ClientRepository, suppliers repository.SupplierRepository,
		addresses repository.AddressRepository, contacts repository.ContactRepository) error {
		if err := suppliers.Create(ctx, supplier); err != nil {
			return err
		}
		if address != nil {
			if err := addresses.Create(ctx, address); err != nil {
				return err
			}
			if err := suppliers.SetPrimaryAddress(ctx, supplier.ID, &address.ID, actor.UserID); err != nil {
				return err
			}
			supplier.PrimaryAddressID = &address.ID
		}
		if contact != nil {
			if err := contacts.Create(ctx, contact); err != nil {
				return err
			}
			if err := suppliers.SetPrimaryContact(ctx, supplier.ID, &contact.ID, actor.UserID); err != nil {
				return err
			}
			supplier.PrimaryContactID = &contact.ID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagSuppliers, ports.TagDashboard)
	uc.logger().Info().Str("supplier_id", supplier.ID).Str("user_id", actor.UserID).Msg("proveedor creado")

	out := toSupplierResponse(supplier)
	out.PrimaryAddress = toAddressResponse(address)
	out.PrimaryContact = toContactResponse(contact)
	return out, nil
}

// GetByID devuelve el proveedor con dirección y contacto principales expandidos.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	out := toSupplierResponse(supplier)
	if supplier.PrimaryAddressID != nil {
		a, err := uc.addresses.GetByID(ctx, *supplier.PrimaryAddressID)
		if err != nil {
			return nil, err
		}
		out.PrimaryAddress = toAddressResponse(a)
	}
	if supplier.PrimaryContactID != nil {
		c, err := uc.contacts.GetByID(ctx, *supplier.PrimaryContactID)
		if err != nil {
			return nil, err
		}
		out.PrimaryContact = toContactResponse(c)
	}
	return out, nil
}

// List lista proveedores con paginación y búsqueda por nombre.
func (uc *SupplierUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.SupplierListResponse, error) {
	p := toListParams(page)
	return ports.Remember(ctx, uc.Cache, listKey("suppliers", p), uc.CacheTTL, []string{ports.TagSuppliers},
		func() (*dto.SupplierListResponse, error) {
			list, total, err := uc.repo.List(ctx, p)
			if err != nil {
				return nil, err
			}
			items := make([]dto.SupplierResponse, 0, len(list))
			for _, s := range list {
				items = append(items, *toSupplierResponse(s))
			}
			return &dto.SupplierListResponse{Items: items, Page: toPageResponse(p, total)}, nil
		})
}

// ListOptions lista (id, nombre) de todos los proveedores.
func (uc *SupplierUseCase) ListOptions(ctx context.Context) ([]dto.OptionResponse, error) {
	return ports.Remember(ctx, uc.Cache, "suppliers:options", uc.CacheTTL, []string{ports.TagSuppliers},
		func() ([]dto.OptionResponse, error) {
			list, err := uc.repo.ListOptions(ctx)
			if err != nil {
				return nil, err
			}
			return toOptionResponses(list), nil
		})
}

// Items lista los ítems comprados al proveedor.
func (uc *SupplierUseCase) Items(ctx context.Context, id string) ([]dto.OptionResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.items.ListBySupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOptionResponses(list), nil
}

// Update aplica cambios parciales.
func (uc *SupplierUseCase) Update(ctx context.Context, actor dto.Principal, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.Field != nil {
		supplier.Field = *in.Field
	}
	if in.RegistrationNumber != nil {
		supplier.RegistrationNumber = *in.RegistrationNumber
	}
	if in.Website != nil {
		supplier.Website = *in.Website
	}
	if in.Notes != nil {
		supplier.Notes = *in.Notes
	}
	supplier.UpdatedBy = &actor.UserID
	supplier.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagSuppliers)
	return toSupplierResponse(supplier), nil
}

// SetPrimaryAddress fija (o limpia) la dirección principal del proveedor.
func (uc *SupplierUseCase) SetPrimaryAddress(ctx context.Context, actor dto.Principal, id string, addressID *string) error {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	addressID = emptyToNil(addressID)
	if err := checkAddressOwner(ctx, uc.addresses, addressID, entity.ForSupplier(id)); err != nil {
		return err
	}
	if err := uc.repo.SetPrimaryAddress(ctx, id, addressID, actor.UserID); err != nil {
		return err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagSuppliers)
	return nil
}

// SetPrimaryContact fija (o limpia) el contacto principal del proveedor.
func (uc *SupplierUseCase) SetPrimaryContact(ctx context.Context, actor dto.Principal, id string, contactID *string) error {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	contactID = emptyToNil(contactID)
	if err := checkContactOwner(ctx, uc.contacts, contactID, entity.ForSupplier(id)); err != nil {
		return err
	}
	if err := uc.repo.SetPrimaryContact(ctx, id, contactID, actor.UserID); err != nil {
		return err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagSuppliers)
	return nil
}

// Delete borra el proveedor. Falla con ErrConflict si está referenciado.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagSuppliers, ports.TagDashboard)
	uc.logger().Info().Str("supplier_id", id).Msg("proveedor eliminado")
	return nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Field:              s.Field,
		RegistrationNumber: s.RegistrationNumber,
		Website:            s.Website,
		Notes:              s.Notes,
		PrimaryAddressID:   s.PrimaryAddressID,
		PrimaryContactID:   s.PrimaryContactID,
		CreatedBy:          s.CreatedBy,
		UpdatedBy:          s.UpdatedBy,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}
