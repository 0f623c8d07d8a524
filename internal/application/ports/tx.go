package ports

import (
	"context"

	"github.com/seifmegahed/daftar/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
type TxRunner interface {
	// RunDirectory agrupa clientes/proveedores con sus direcciones y contactos
	// (alta de cliente con dirección y contacto iniciales).
	RunDirectory(ctx context.Context, fn func(
		clients repository.ClientRepository,
		suppliers repository.SupplierRepository,
		addresses repository.AddressRepository,
		contacts repository.ContactRepository,
	) error) error

	// RunDocuments agrupa metadatos de documento y su relación inicial.
	RunDocuments(ctx context.Context, fn func(docs repository.DocumentRepository) error) error
}
