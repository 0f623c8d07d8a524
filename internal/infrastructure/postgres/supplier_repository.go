package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, name, field, registration_number, website, notes, primary_address_id, primary_contact_id,
	created_by, updated_by, created_at, updated_at`

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.Field, &s.RegistrationNumber, &s.Website, &s.Notes,
		&s.PrimaryAddressID, &s.PrimaryContactID, &s.CreatedBy, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.Field, s.RegistrationNumber, s.Website, s.Notes, s.PrimaryAddressID, s.PrimaryContactID,
		s.CreatedBy, s.UpdatedBy, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// Update actualiza los datos generales de un proveedor.
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, field = $3, registration_number = $4, website = $5, notes = $6,
			updated_by = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.Field, s.RegistrationNumber, s.Website, s.Notes, s.UpdatedBy, s.UpdatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return affected(tag)
}

// SetPrimaryAddress fija (o limpia con nil) la dirección principal.
func (r *SupplierRepo) SetPrimaryAddress(ctx context.Context, supplierID string, addressID *string, updatedBy string) error {
	return r.setPrimary(ctx, "primary_address_id", supplierID, addressID, updatedBy)
}

// SetPrimaryContact fija (o limpia con nil) el contacto principal.
func (r *SupplierRepo) SetPrimaryContact(ctx context.Context, supplierID string, contactID *string, updatedBy string) error {
	return r.setPrimary(ctx, "primary_contact_id", supplierID, contactID, updatedBy)
}

func (r *SupplierRepo) setPrimary(ctx context.Context, column, id string, ref *string, updatedBy string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE suppliers SET `+column+` = $2, updated_by = $3, updated_at = $4 WHERE id = $1`,
		id, ref, updatedBy, time.Now().UTC(),
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("set supplier %s: %w", column, err)
	}
	return affected(tag)
}

// List lista proveedores por nombre con paginación y búsqueda (nombre o rubro).
func (r *SupplierRepo) List(ctx context.Context, p repository.ListParams) ([]*entity.Supplier, int, error) {
	p = p.Normalize()
	pattern := searchPattern(p.Search)

	var total int
	if err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM suppliers WHERE ($1 = '' OR name ILIKE $1 OR field ILIKE $1)`, pattern,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count suppliers: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT `+supplierColumns+` FROM suppliers
		WHERE ($1 = '' OR name ILIKE $1 OR field ILIKE $1)
		ORDER BY name LIMIT $2 OFFSET $3`, pattern, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	list := []*entity.Supplier{}
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}

// ListOptions lista (id, nombre) de todos los proveedores.
func (r *SupplierRepo) ListOptions(ctx context.Context) ([]entity.Option, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list supplier options: %w", err)
	}
	return collectOptions(rows)
}

// ListByItem proveedores a los que se compró el ítem.
func (r *SupplierRepo) ListByItem(ctx context.Context, itemID string) ([]entity.Option, error) {
	rows, err := r.q.Query(ctx, `
		SELECT DISTINCT s.id, s.name
		FROM purchase_items pi
		JOIN suppliers s ON s.id = pi.supplier_id
		WHERE pi.item_id = $1
		ORDER BY s.name`, itemID)
	if err != nil {
		return nil, fmt.Errorf("list suppliers by item: %w", err)
	}
	return collectOptions(rows)
}

// Delete elimina un proveedor. Devuelve ErrConflict si está referenciado por compras.
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("delete supplier: %w", err)
	}
	return affected(tag)
}
