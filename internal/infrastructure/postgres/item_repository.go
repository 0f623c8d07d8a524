package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, name, type, description, mpn, make, notes, created_by, updated_by, created_at, updated_at`

func scanItem(row pgx.Row) (*entity.Item, error) {
	var i entity.Item
	err := row.Scan(&i.ID, &i.Name, &i.Type, &i.Description, &i.MPN, &i.Make, &i.Notes,
		&i.CreatedBy, &i.UpdatedBy, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste un nuevo ítem.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO items (`+itemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		item.ID, item.Name, item.Type, item.Description, item.MPN, item.Make, item.Notes,
		item.CreatedBy, item.UpdatedBy, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	i, err := scanItem(r.q.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return i, nil
}

// Update actualiza un ítem.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE items SET name = $2, type = $3, description = $4, mpn = $5, make = $6, notes = $7,
			updated_by = $8, updated_at = $9
		WHERE id = $1`,
		item.ID, item.Name, item.Type, item.Description, item.MPN, item.Make, item.Notes,
		item.UpdatedBy, item.UpdatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update item: %w", err)
	}
	return affected(tag)
}

// List lista ítems por nombre; la búsqueda también cubre MPN y marca.
func (r *ItemRepo) List(ctx context.Context, p repository.ListParams) ([]*entity.Item, int, error) {
	p = p.Normalize()
	pattern := searchPattern(p.Search)
	const where = ` WHERE ($1 = '' OR name ILIKE $1 OR mpn ILIKE $1 OR make ILIKE $1)`

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM items`+where, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	rows, err := r.q.Query(ctx,
		`SELECT `+itemColumns+` FROM items`+where+` ORDER BY name LIMIT $2 OFFSET $3`,
		pattern, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	list := []*entity.Item{}
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, i)
	}
	return list, total, rows.Err()
}

// ListOptions lista (id, nombre) de todos los ítems.
func (r *ItemRepo) ListOptions(ctx context.Context) ([]entity.Option, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM items ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list item options: %w", err)
	}
	return collectOptions(rows)
}

// ListBySupplier ítems comprados a un proveedor.
func (r *ItemRepo) ListBySupplier(ctx context.Context, supplierID string) ([]entity.Option, error) {
	rows, err := r.q.Query(ctx, `
		SELECT DISTINCT i.id, i.name
		FROM purchase_items pi
		JOIN items i ON i.id = pi.item_id
		WHERE pi.supplier_id = $1
		ORDER BY i.name`, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list items by supplier: %w", err)
	}
	return collectOptions(rows)
}

// Delete elimina un ítem. Devuelve ErrConflict si algún proyecto lo usa.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("delete item: %w", err)
	}
	return affected(tag)
}
