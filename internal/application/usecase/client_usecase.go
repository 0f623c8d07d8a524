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

// ClientUseCase aplica reglas de negocio para clientes.
type ClientUseCase struct {
	repo      repository.ClientRepository
	addresses repository.AddressRepository
	contacts  repository.ContactRepository
	projects  repository.ProjectRepository
	tx        ports.TxRunner
	Shared
}

// NewClientUseCase construye el caso de uso de clientes.
func NewClientUseCase(
	repo repository.ClientRepository,
	addresses repository.AddressRepository,
	contacts repository.ContactRepository,
	projects repository.ProjectRepository,
	tx ports.TxRunner,
	shared Shared,
) *ClientUseCase {
	return &ClientUseCase{repo: repo, addresses: addresses, contacts: contacts, projects: projects, tx: tx, Shared: shared}
}

// Create da de alta un cliente. Si trae dirección o contacto, se crean en la misma
// transacción y quedan como principales.
func (uc *ClientUseCase) Create(ctx context.Context, actor dto.Principal, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	now := time.Now().UTC()
	client := &entity.Client{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		RegistrationNumber: in.RegistrationNumber,
		Website:            in.Website,
		Notes:              in.Notes,
		CreatedBy:          actor.UserID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	owner := entity.ForClient(client.ID)
	address := newAddress(in.Address, owner, actor.UserID, now)
	contact := newContact(in.Contact, owner, actor.UserID, now)

	err := uc.tx.RunDirectory(ctx, func(clients repository.ClientRepository, _ repository.SupplierRepository,
		addresses repository.AddressRepository, contacts repository.ContactRepository) error {
		if err := clients.Create(ctx, client); err != nil {
			return err
		}
		if address != nil {
			if err := addresses.Create(ctx, address); err != nil {
				return err
			}
			if err := clients.SetPrimaryAddress(ctx, client.ID, &address.ID, actor.UserID); err != nil {
				return err
			}
			client.PrimaryAddressID = &address.ID
		}
		if contact != nil {
			if err := contacts.Create(ctx, contact); err != nil {
				return err
			}
			if err := clients.SetPrimaryContact(ctx, client.ID, &contact.ID, actor.UserID); err != nil {
				return err
			}
			client.PrimaryContactID = &contact.ID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagClients, ports.TagDashboard)
	uc.logger().Info().Str("client_id", client.ID).Str("user_id", actor.UserID).Msg("cliente creado")

	out := toClientResponse(client)
	out.PrimaryAddress = toAddressResponse(address)
	out.PrimaryContact = toContactResponse(contact)
	return out, nil
}

// GetByID devuelve el cliente con su dirección y contacto principales expandidos.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	out := toClientResponse(client)
	if out.PrimaryAddress, err = uc.primaryAddress(ctx, client.PrimaryAddressID); err != nil {
		return nil, err
	}
	if out.PrimaryContact, err = uc.primaryContact(ctx, client.PrimaryContactID); err != nil {
		return nil, err
	}
	return out, nil
}

// List lista clientes con paginación y búsqueda por nombre.
func (uc *ClientUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ClientListResponse, error) {
	p := toListParams(page)
	return ports.Remember(ctx, uc.Cache, listKey("clients", p), uc.CacheTTL, []string{ports.TagClients},
		func() (*dto.ClientListResponse, error) {
			list, total, err := uc.repo.List(ctx, p)
			if err != nil {
				return nil, err
			}
			items := make([]dto.ClientResponse, 0, len(list))
			for _, c := range list {
				items = append(items, *toClientResponse(c))
			}
			return &dto.ClientListResponse{Items: items, Page: toPageResponse(p, total)}, nil
		})
}

// ListOptions lista (id, nombre) de todos los clientes.
func (uc *ClientUseCase) ListOptions(ctx context.Context) ([]dto.OptionResponse, error) {
	return ports.Remember(ctx, uc.Cache, "clients:options", uc.CacheTTL, []string{ports.TagClients},
		func() ([]dto.OptionResponse, error) {
			list, err := uc.repo.ListOptions(ctx)
			if err != nil {
				return nil, err
			}
			return toOptionResponses(list), nil
		})
}

// Projects lista los proyectos del cliente.
func (uc *ClientUseCase) Projects(ctx context.Context, id string, page dto.PageRequest) (*dto.ProjectListResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	f := repository.ProjectFilter{ListParams: toListParams(page), ClientID: id}
	list, total, err := uc.projects.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProjectResponse(p))
	}
	return &dto.ProjectListResponse{Items: items, Page: toPageResponse(f.ListParams, total)}, nil
}

// Update aplica cambios parciales.
func (uc *ClientUseCase) Update(ctx context.Context, actor dto.Principal, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.RegistrationNumber != nil {
		client.RegistrationNumber = *in.RegistrationNumber
	}
	if in.Website != nil {
		client.Website = *in.Website
	}
	if in.Notes != nil {
		client.Notes = *in.Notes
	}
	client.UpdatedBy = &actor.UserID
	client.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagClients)
	return toClientResponse(client), nil
}

// SetPrimaryAddress fija (o limpia con nil) la dirección principal; debe pertenecer al cliente.
func (uc *ClientUseCase) SetPrimaryAddress(ctx context.Context, actor dto.Principal, id string, addressID *string) error {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	addressID = emptyToNil(addressID)
	if err := checkAddressOwner(ctx, uc.addresses, addressID, entity.ForClient(id)); err != nil {
		return err
	}
	if err := uc.repo.SetPrimaryAddress(ctx, id, addressID, actor.UserID); err != nil {
		return err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagClients)
	return nil
}

// SetPrimaryContact fija (o limpia con nil) el contacto principal; debe pertenecer al cliente.
func (uc *ClientUseCase) SetPrimaryContact(ctx context.Context, actor dto.Principal, id string, contactID *string) error {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	contactID = emptyToNil(contactID)
	if err := checkContactOwner(ctx, uc.contacts, contactID, entity.ForClient(id)); err != nil {
		return err
	}
	if err := uc.repo.SetPrimaryContact(ctx, id, contactID, actor.UserID); err != nil {
		return err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagClients)
	return nil
}

// Delete borra el cliente. Falla con ErrConflict si tiene proyectos o relaciones.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagClients, ports.TagDashboard)
	uc.logger().Info().Str("client_id", id).Msg("cliente eliminado")
	return nil
}

func (uc *ClientUseCase) primaryAddress(ctx context.Context, id *string) (*dto.AddressResponse, error) {
	if id == nil {
		return nil, nil
	}
	a, err := uc.addresses.GetByID(ctx, *id)
	if err != nil {
		return nil, err
	}
	return toAddressResponse(a), nil
}

func (uc *ClientUseCase) primaryContact(ctx context.Context, id *string) (*dto.ContactResponse, error) {
	if id == nil {
		return nil, nil
	}
	c, err := uc.contacts.GetByID(ctx, *id)
	if err != nil {
		return nil, err
	}
	return toContactResponse(c), nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:                 c.ID,
		Name:               c.Name,
		RegistrationNumber: c.RegistrationNumber,
		Website:            c.Website,
		Notes:              c.Notes,
		PrimaryAddressID:   c.PrimaryAddressID,
		PrimaryContactID:   c.PrimaryContactID,
		CreatedBy:          c.CreatedBy,
		UpdatedBy:          c.UpdatedBy,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}
