package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
)

var _ repository.LineItemRepository = (*LineItemRepo)(nil)

// lineItemTables tabla de cada tipo de ítem de proyecto. Mismo esquema en las cuatro.
var lineItemTables = map[entity.LineItemKind]string{
	entity.KindProject:  "project_items",
	entity.KindPurchase: "purchase_items",
	entity.KindSale:     "sale_items",
	entity.KindOffer:    "commercial_offer_items",
}

// LineItemRepo ítems de proyecto (materiales, compras, ventas, oferta) sobre PostgreSQL.
type LineItemRepo struct {
	q Querier
}

// NewLineItemRepository construye el adaptador.
func NewLineItemRepository(q Querier) *LineItemRepo {
	return &LineItemRepo{q: q}
}

func lineItemTable(kind entity.LineItemKind) (string, error) {
	t, ok := lineItemTables[kind]
	if !ok {
		return "", fmt.Errorf("%w: tipo de ítem %q", domain.ErrInvalidInput, kind)
	}
	return t, nil
}

const lineItemSelect = `
	SELECT li.id, li.project_id, li.item_id, li.supplier_id, li.quantity, li.price, li.currency,
		li.created_by, li.updated_by, li.created_at, li.updated_at,
		i.name, COALESCE(s.name, '')
	FROM %s li
	JOIN items i ON i.id = li.item_id
	LEFT JOIN suppliers s ON s.id = li.supplier_id`

func scanLineItem(row pgx.Row, kind entity.LineItemKind) (*entity.LineItem, error) {
	li := entity.LineItem{Kind: kind}
	err := row.Scan(&li.ID, &li.ProjectID, &li.ItemID, &li.SupplierID, &li.Quantity, &li.Price, &li.Currency,
		&li.CreatedBy, &li.UpdatedBy, &li.CreatedAt, &li.UpdatedAt, &li.ItemName, &li.SupplierName)
	if err != nil {
		return nil, err
	}
	return &li, nil
}

// Create persiste un ítem en la tabla de su tipo.
func (r *LineItemRepo) Create(ctx context.Context, li *entity.LineItem) error {
	table, err := lineItemTable(li.Kind)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO `+table+` (id, project_id, item_id, supplier_id, quantity, price, currency,
			created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		li.ID, li.ProjectID, li.ItemID, li.SupplierID, li.Quantity, li.Price, li.Currency,
		li.CreatedBy, li.UpdatedBy, li.CreatedAt, li.UpdatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

// GetByID obtiene un ítem de proyecto con los nombres de ítem y proveedor.
func (r *LineItemRepo) GetByID(ctx context.Context, kind entity.LineItemKind, id string) (*entity.LineItem, error) {
	table, err := lineItemTable(kind)
	if err != nil {
		return nil, err
	}
	li, err := scanLineItem(r.q.QueryRow(ctx, fmt.Sprintf(lineItemSelect, table)+` WHERE li.id = $1`, id), kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", table, err)
	}
	return li, nil
}

// Update actualiza cantidad, precio, moneda, ítem y proveedor.
func (r *LineItemRepo) Update(ctx context.Context, li *entity.LineItem) error {
	table, err := lineItemTable(li.Kind)
	if err != nil {
		return err
	}
	tag, err := r.q.Exec(ctx, `
		UPDATE `+table+` SET item_id = $2, supplier_id = $3, quantity = $4, price = $5, currency = $6,
			updated_by = $7, updated_at = $8
		WHERE id = $1`,
		li.ID, li.ItemID, li.SupplierID, li.Quantity, li.Price, li.Currency, li.UpdatedBy, li.UpdatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update %s: %w", table, err)
	}
	return affected(tag)
}

// ListByProject ítems de un tipo para un proyecto, en orden de alta.
func (r *LineItemRepo) ListByProject(ctx context.Context, kind entity.LineItemKind, projectID string) ([]*entity.LineItem, error) {
	table, err := lineItemTable(kind)
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx,
		fmt.Sprintf(lineItemSelect, table)+` WHERE li.project_id = $1 ORDER BY li.created_at`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()
	list := []*entity.LineItem{}
	for rows.Next() {
		li, err := scanLineItem(rows, kind)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		list = append(list, li)
	}
	return list, rows.Err()
}

// Delete elimina un ítem de proyecto.
func (r *LineItemRepo) Delete(ctx context.Context, kind entity.LineItemKind, id string) error {
	table, err := lineItemTable(kind)
	if err != nil {
		return err
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("delete %s: %w", table, err)
	}
	return affected(tag)
}
