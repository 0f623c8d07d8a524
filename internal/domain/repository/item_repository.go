package repository

import (
	"context"

	"github.com/seifmegahed/daftar/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	List(ctx context.Context, p ListParams) ([]*entity.Item, int, error)
	ListOptions(ctx context.Context) ([]entity.Option, error)
	// ListBySupplier ítems comprados a un proveedor (vía ítems de compra).
	ListBySupplier(ctx context.Context, supplierID string) ([]entity.Option, error)
	Delete(ctx context.Context, id string) error
}
