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
	"github.com/seifmegahed/daftar/pkg/textutil"
)

// AddressUseCase direcciones y contactos de clientes y proveedores.
type AddressUseCase struct {
	addresses repository.AddressRepository
	contacts  repository.ContactRepository
	clients   repository.ClientRepository
	suppliers repository.SupplierRepository
	Shared
}

// NewAddressUseCase construye el caso de uso de direcciones y contactos.
func NewAddressUseCase(
	addresses repository.AddressRepository,
	contacts repository.ContactRepository,
	clients repository.ClientRepository,
	suppliers repository.SupplierRepository,
	shared Shared,
) *AddressUseCase {
	return &AddressUseCase{addresses: addresses, contacts: contacts, clients: clients, suppliers: suppliers, Shared: shared}
}

// ownerExists verifica que el cliente o proveedor dueño exista.
func (uc *AddressUseCase) ownerExists(ctx context.Context, owner entity.Owner) error {
	if !owner.Valid() {
		return domain.ErrInvalidInput
	}
	if owner.ClientID != nil {
		c, err := uc.clients.GetByID(ctx, *owner.ClientID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		return nil
	}
	s, err := uc.suppliers.GetByID(ctx, *owner.SupplierID)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return nil
}

func ownerTag(owner entity.Owner) string {
	if owner.ClientID != nil {
		return ports.TagClients
	}
	return ports.TagSuppliers
}

// CreateAddress agrega una dirección al dueño indicado.
func (uc *AddressUseCase) CreateAddress(ctx context.Context, actor dto.Principal, owner entity.Owner, in dto.AddressInput) (*dto.AddressResponse, error) {
	if err := uc.ownerExists(ctx, owner); err != nil {
		return nil, err
	}
	a := newAddress(&in, owner, actor.UserID, time.Now().UTC())
	if err := uc.addresses.Create(ctx, a); err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ownerTag(owner))
	return toAddressResponse(a), nil
}

// ListAddresses lista las direcciones del dueño.
func (uc *AddressUseCase) ListAddresses(ctx context.Context, owner entity.Owner) ([]dto.AddressResponse, error) {
	if err := uc.ownerExists(ctx, owner); err != nil {
		return nil, err
	}
	list, err := uc.addresses.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AddressResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toAddressResponse(a))
	}
	return out, nil
}

// GetAddress obtiene una dirección por ID.
func (uc *AddressUseCase) GetAddress(ctx context.Context, id string) (*dto.AddressResponse, error) {
	a, err := uc.addresses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAddressResponse(a), nil
}

// UpdateAddress reemplaza los datos de una dirección.
func (uc *AddressUseCase) UpdateAddress(ctx context.Context, actor dto.Principal, id string, in dto.AddressInput) (*dto.AddressResponse, error) {
	a, err := uc.addresses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	a.AddressLine = in.AddressLine
	a.Country = in.Country
	a.City = in.City
	a.Notes = in.Notes
	a.UpdatedBy = &actor.UserID
	a.UpdatedAt = time.Now().UTC()
	if err := uc.addresses.Update(ctx, a); err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ownerTag(a.Owner))
	return toAddressResponse(a), nil
}

// DeleteAddress borra una dirección. Si era la principal, el dueño queda sin principal.
func (uc *AddressUseCase) DeleteAddress(ctx context.Context, id string) error {
	a, err := uc.addresses.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	if err := uc.addresses.Delete(ctx, id); err != nil {
		return err
	}
	ports.Invalidate(ctx, uc.Cache, ownerTag(a.Owner))
	return nil
}

// CreateContact agrega un contacto al dueño indicado.
func (uc *AddressUseCase) CreateContact(ctx context.Context, actor dto.Principal, owner entity.Owner, in dto.ContactInput) (*dto.ContactResponse, error) {
	if err := uc.ownerExists(ctx, owner); err != nil {
		return nil, err
	}
	c := newContact(&in, owner, actor.UserID, time.Now().UTC())
	if err := uc.contacts.Create(ctx, c); err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ownerTag(owner))
	return toContactResponse(c), nil
}

// ListContacts lista los contactos del dueño.
func (uc *AddressUseCase) ListContacts(ctx context.Context, owner entity.Owner) ([]dto.ContactResponse, error) {
	if err := uc.ownerExists(ctx, owner); err != nil {
		return nil, err
	}
	list, err := uc.contacts.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toContactResponse(c))
	}
	return out, nil
}

// GetContact obtiene un contacto por ID.
func (uc *AddressUseCase) GetContact(ctx context.Context, id string) (*dto.ContactResponse, error) {
	c, err := uc.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toContactResponse(c), nil
}

// UpdateContact reemplaza los datos de un contacto.
func (uc *AddressUseCase) UpdateContact(ctx context.Context, actor dto.Principal, id string, in dto.ContactInput) (*dto.ContactResponse, error) {
	c, err := uc.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	c.Name = in.Name
	c.Email = in.Email
	c.PhoneNumber = in.PhoneNumber
	c.Notes = in.Notes
	c.UpdatedBy = &actor.UserID
	c.UpdatedAt = time.Now().UTC()
	if err := uc.contacts.Update(ctx, c); err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ownerTag(c.Owner))
	return toContactResponse(c), nil
}

// DeleteContact borra un contacto.
func (uc *AddressUseCase) DeleteContact(ctx context.Context, id string) error {
	c, err := uc.contacts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if err := uc.contacts.Delete(ctx, id); err != nil {
		return err
	}
	ports.Invalidate(ctx, uc.Cache, ownerTag(c.Owner))
	return nil
}

// checkAddressOwner exige que la dirección exista y sea del mismo dueño. nil siempre es válido.
func checkAddressOwner(ctx context.Context, repo repository.AddressRepository, id *string, owner entity.Owner) error {
	if id == nil {
		return nil
	}
	a, err := repo.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	if !a.Owner.Same(owner) {
		return domain.ErrInvalidInput
	}
	return nil
}

// checkContactOwner exige que el contacto exista y sea del mismo dueño. nil siempre es válido.
func checkContactOwner(ctx context.Context, repo repository.ContactRepository, id *string, owner entity.Owner) error {
	if id == nil {
		return nil
	}
	c, err := repo.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if !c.Owner.Same(owner) {
		return domain.ErrInvalidInput
	}
	return nil
}

func newAddress(in *dto.AddressInput, owner entity.Owner, userID string, now time.Time) *entity.Address {
	if in == nil {
		return nil
	}
	return &entity.Address{
		ID:          uuid.New().String(),
		AddressLine: in.AddressLine,
		Country:     in.Country,
		City:        in.City,
		Notes:       in.Notes,
		Owner:       owner,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func newContact(in *dto.ContactInput, owner entity.Owner, userID string, now time.Time) *entity.Contact {
	if in == nil {
		return nil
	}
	return &entity.Contact{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Notes:       in.Notes,
		Owner:       owner,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func toAddressResponse(a *entity.Address) *dto.AddressResponse {
	if a == nil {
		return nil
	}
	return &dto.AddressResponse{
		ID:          a.ID,
		AddressLine: a.AddressLine,
		Country:     a.Country,
		City:        a.City,
		Notes:       a.Notes,
		ClientID:    a.ClientID,
		SupplierID:  a.SupplierID,
		CreatedBy:   a.CreatedBy,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	if c == nil {
		return nil
	}
	return &dto.ContactResponse{
		ID:          c.ID,
		Name:        c.Name,
		Initials:    textutil.Initials(c.Name),
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Notes:       c.Notes,
		ClientID:    c.ClientID,
		SupplierID:  c.SupplierID,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
