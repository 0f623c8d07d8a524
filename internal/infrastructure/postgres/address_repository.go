package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
)

var (
	_ repository.AddressRepository = (*AddressRepo)(nil)
	_ repository.ContactRepository = (*ContactRepo)(nil)
)

// AddressRepo direcciones de clientes y proveedores.
type AddressRepo struct {
	q Querier
}

// NewAddressRepository construye el adaptador.
func NewAddressRepository(q Querier) *AddressRepo {
	return &AddressRepo{q: q}
}

const addressColumns = `id, address_line, country, city, notes, client_id, supplier_id,
	created_by, updated_by, created_at, updated_at`

func scanAddress(row pgx.Row) (*entity.Address, error) {
	var a entity.Address
	err := row.Scan(&a.ID, &a.AddressLine, &a.Country, &a.City, &a.Notes, &a.ClientID, &a.SupplierID,
		&a.CreatedBy, &a.UpdatedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste una dirección.
func (r *AddressRepo) Create(ctx context.Context, a *entity.Address) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO addresses (`+addressColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		a.ID, a.AddressLine, a.Country, a.City, a.Notes, a.ClientID, a.SupplierID,
		a.CreatedBy, a.UpdatedBy, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

// GetByID obtiene una dirección por ID.
func (r *AddressRepo) GetByID(ctx context.Context, id string) (*entity.Address, error) {
	a, err := scanAddress(r.q.QueryRow(ctx, `SELECT `+addressColumns+` FROM addresses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get address: %w", err)
	}
	return a, nil
}

// Update actualiza una dirección. El dueño no cambia.
func (r *AddressRepo) Update(ctx context.Context, a *entity.Address) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE addresses SET address_line = $2, country = $3, city = $4, notes = $5,
			updated_by = $6, updated_at = $7
		WHERE id = $1`,
		a.ID, a.AddressLine, a.Country, a.City, a.Notes, a.UpdatedBy, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	return affected(tag)
}

// ListByOwner lista las direcciones de un cliente o proveedor.
func (r *AddressRepo) ListByOwner(ctx context.Context, owner entity.Owner) ([]*entity.Address, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+addressColumns+` FROM addresses
		WHERE client_id = $1 OR supplier_id = $2
		ORDER BY created_at`, owner.ClientID, owner.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()
	list := []*entity.Address{}
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Delete elimina una dirección; si era la principal, la FK la deja en NULL.
func (r *AddressRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("delete address: %w", err)
	}
	return affected(tag)
}

// ContactRepo contactos de clientes y proveedores.
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador.
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

const contactColumns = `id, name, email, phone_number, notes, client_id, supplier_id,
	created_by, updated_by, created_at, updated_at`

func scanContact(row pgx.Row) (*entity.Contact, error) {
	var c entity.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.PhoneNumber, &c.Notes, &c.ClientID, &c.SupplierID,
		&c.CreatedBy, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un contacto.
func (r *ContactRepo) Create(ctx context.Context, c *entity.Contact) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO contacts (`+contactColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.Name, c.Email, c.PhoneNumber, c.Notes, c.ClientID, c.SupplierID,
		c.CreatedBy, c.UpdatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// GetByID obtiene un contacto por ID.
func (r *ContactRepo) GetByID(ctx context.Context, id string) (*entity.Contact, error) {
	c, err := scanContact(r.q.QueryRow(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

// Update actualiza un contacto.
func (r *ContactRepo) Update(ctx context.Context, c *entity.Contact) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE contacts SET name = $2, email = $3, phone_number = $4, notes = $5,
			updated_by = $6, updated_at = $7
		WHERE id = $1`,
		c.ID, c.Name, c.Email, c.PhoneNumber, c.Notes, c.UpdatedBy, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return affected(tag)
}

// ListByOwner lista los contactos de un cliente o proveedor.
func (r *ContactRepo) ListByOwner(ctx context.Context, owner entity.Owner) ([]*entity.Contact, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+contactColumns+` FROM contacts
		WHERE client_id = $1 OR supplier_id = $2
		ORDER BY name`, owner.ClientID, owner.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	list := []*entity.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina un contacto.
func (r *ContactRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("delete contact: %w", err)
	}
	return affected(tag)
}
