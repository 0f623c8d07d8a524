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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, name, registration_number, website, notes, primary_address_id, primary_contact_id,
	created_by, updated_by, created_at, updated_at`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.Name, &c.RegistrationNumber, &c.Website, &c.Notes,
		&c.PrimaryAddressID, &c.PrimaryContactID, &c.CreatedBy, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.RegistrationNumber, c.Website, c.Notes, c.PrimaryAddressID, c.PrimaryContactID,
		c.CreatedBy, c.UpdatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// Update actualiza los datos generales de un cliente.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, registration_number = $3, website = $4, notes = $5,
			updated_by = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.RegistrationNumber, c.Website, c.Notes, c.UpdatedBy, c.UpdatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update client: %w", err)
	}
	return affected(tag)
}

// SetPrimaryAddress fija (o limpia con nil) la dirección principal.
func (r *ClientRepo) SetPrimaryAddress(ctx context.Context, clientID string, addressID *string, updatedBy string) error {
	return r.setPrimary(ctx, "primary_address_id", clientID, addressID, updatedBy)
}

// SetPrimaryContact fija (o limpia con nil) el contacto principal.
func (r *ClientRepo) SetPrimaryContact(ctx context.Context, clientID string, contactID *string, updatedBy string) error {
	return r.setPrimary(ctx, "primary_contact_id", clientID, contactID, updatedBy)
}

func (r *ClientRepo) setPrimary(ctx context.Context, column, id string, ref *string, updatedBy string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE clients SET `+column+` = $2, updated_by = $3, updated_at = $4 WHERE id = $1`,
		id, ref, updatedBy, time.Now().UTC(),
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("set client %s: %w", column, err)
	}
	return affected(tag)
}

// List lista clientes por nombre con paginación y búsqueda.
func (r *ClientRepo) List(ctx context.Context, p repository.ListParams) ([]*entity.Client, int, error) {
	p = p.Normalize()
	pattern := searchPattern(p.Search)

	var total int
	if err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM clients WHERE ($1 = '' OR name ILIKE $1)`, pattern,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT `+clientColumns+` FROM clients
		WHERE ($1 = '' OR name ILIKE $1)
		ORDER BY name LIMIT $2 OFFSET $3`, pattern, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	list := []*entity.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// ListOptions lista (id, nombre) de todos los clientes.
func (r *ClientRepo) ListOptions(ctx context.Context) ([]entity.Option, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM clients ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list client options: %w", err)
	}
	return collectOptions(rows)
}

// Delete elimina un cliente. Devuelve ErrConflict si tiene proyectos.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("delete client: %w", err)
	}
	return affected(tag)
}
