package repository

import (
	"context"

	"github.com/seifmegahed/daftar/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	SetPrimaryAddress(ctx context.Context, clientID string, addressID *string, updatedBy string) error
	SetPrimaryContact(ctx context.Context, clientID string, contactID *string, updatedBy string) error
	List(ctx context.Context, p ListParams) ([]*entity.Client, int, error)
	ListOptions(ctx context.Context) ([]entity.Option, error)
	Delete(ctx context.Context, id string) error
}

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	SetPrimaryAddress(ctx context.Context, supplierID string, addressID *string, updatedBy string) error
	SetPrimaryContact(ctx context.Context, supplierID string, contactID *string, updatedBy string) error
	List(ctx context.Context, p ListParams) ([]*entity.Supplier, int, error)
	ListOptions(ctx context.Context) ([]entity.Option, error)
	// ListByItem proveedores a los que se compró el ítem (vía ítems de compra).
	ListByItem(ctx context.Context, itemID string) ([]entity.Option, error)
	Delete(ctx context.Context, id string) error
}

// AddressRepository direcciones de clientes y proveedores.
type AddressRepository interface {
	Create(ctx context.Context, a *entity.Address) error
	GetByID(ctx context.Context, id string) (*entity.Address, error)
	Update(ctx context.Context, a *entity.Address) error
	ListByOwner(ctx context.Context, owner entity.Owner) ([]*entity.Address, error)
	Delete(ctx context.Context, id string) error
}

// ContactRepository contactos de clientes y proveedores.
type ContactRepository interface {
	Create(ctx context.Context, c *entity.Contact) error
	GetByID(ctx context.Context, id string) (*entity.Contact, error)
	Update(ctx context.Context, c *entity.Contact) error
	ListByOwner(ctx context.Context, owner entity.Owner) ([]*entity.Contact, error)
	Delete(ctx context.Context, id string) error
}
