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

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo metadatos de documentos y sus relaciones.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `d.id, d.name, d.path, d.extension, d.content_type, d.size, d.notes, d.private,
	d.created_by, d.updated_by, d.created_at, d.updated_at`

// visibleTo filtro de privados: $1 = es admin, $2 = usuario.
const visibleTo = `(NOT d.private OR $1::boolean OR d.created_by::text = $2)`

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var d entity.Document
	err := row.Scan(&d.ID, &d.Name, &d.Path, &d.Extension, &d.ContentType, &d.Size, &d.Notes, &d.Private,
		&d.CreatedBy, &d.UpdatedBy, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func collectDocuments(rows pgx.Rows) ([]*entity.Document, error) {
	defer rows.Close()
	list := []*entity.Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Create persiste los metadatos de un documento.
func (r *DocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO documents (id, name, path, extension, content_type, size, notes, private,
			created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		d.ID, d.Name, d.Path, d.Extension, d.ContentType, d.Size, d.Notes, d.Private,
		d.CreatedBy, d.UpdatedBy, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID (sin filtrar privados; lo decide el caso de uso).
func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	d, err := scanDocument(r.q.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents d WHERE d.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

// Update actualiza nombre, notas y privacidad.
func (r *DocumentRepo) Update(ctx context.Context, d *entity.Document) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE documents SET name = $2, notes = $3, private = $4, updated_by = $5, updated_at = $6
		WHERE id = $1`,
		d.ID, d.Name, d.Notes, d.Private, d.UpdatedBy, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	return affected(tag)
}

// List documentos visibles para v, más recientes primero.
func (r *DocumentRepo) List(ctx context.Context, p repository.ListParams, v repository.Viewer) ([]*entity.Document, int, error) {
	p = p.Normalize()
	pattern := searchPattern(p.Search)
	where := ` WHERE ` + visibleTo + ` AND ($3 = '' OR d.name ILIKE $3)`

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM documents d`+where, v.IsAdmin, v.UserID, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count documents: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+documentColumns+` FROM documents d`+where+` ORDER BY d.created_at DESC LIMIT $4 OFFSET $5`,
		v.IsAdmin, v.UserID, pattern, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list documents: %w", err)
	}
	list, err := collectDocuments(rows)
	return list, total, err
}

// ListByTarget documentos visibles relacionados con un proyecto, ítem, proveedor o cliente.
func (r *DocumentRepo) ListByTarget(ctx context.Context, t entity.RelationTarget, v repository.Viewer) ([]*entity.Document, error) {
	column, id, err := targetColumn(t)
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, `
		SELECT DISTINCT `+documentColumns+`
		FROM documents d
		JOIN document_relations dr ON dr.document_id = d.id
		WHERE dr.`+column+` = $3 AND `+visibleTo+`
		ORDER BY d.created_at DESC`, v.IsAdmin, v.UserID, id)
	if err != nil {
		return nil, fmt.Errorf("list documents by %s: %w", column, err)
	}
	return collectDocuments(rows)
}

// Delete elimina los metadatos; las relaciones caen en cascada.
func (r *DocumentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("delete document: %w", err)
	}
	return affected(tag)
}

// CreateRelation vincula un documento con su destino.
func (r *DocumentRepo) CreateRelation(ctx context.Context, rel *entity.DocumentRelation) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO document_relations (id, document_id, project_id, item_id, supplier_id, client_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rel.ID, rel.DocumentID, rel.ProjectID, rel.ItemID, rel.SupplierID, rel.ClientID, rel.CreatedBy, rel.CreatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert document relation: %w", err)
	}
	return nil
}

const relationColumns = `id, document_id, project_id, item_id, supplier_id, client_id, created_by, created_at`

func scanRelation(row pgx.Row) (*entity.DocumentRelation, error) {
	var rel entity.DocumentRelation
	err := row.Scan(&rel.ID, &rel.DocumentID, &rel.ProjectID, &rel.ItemID, &rel.SupplierID, &rel.ClientID,
		&rel.CreatedBy, &rel.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// GetRelation obtiene una relación por ID.
func (r *DocumentRepo) GetRelation(ctx context.Context, id string) (*entity.DocumentRelation, error) {
	rel, err := scanRelation(r.q.QueryRow(ctx, `SELECT `+relationColumns+` FROM document_relations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document relation: %w", err)
	}
	return rel, nil
}

// ListRelations relaciones de un documento.
func (r *DocumentRepo) ListRelations(ctx context.Context, documentID string) ([]*entity.DocumentRelation, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+relationColumns+` FROM document_relations WHERE document_id = $1 ORDER BY created_at`, documentID)
	if err != nil {
		return nil, fmt.Errorf("list document relations: %w", err)
	}
	defer rows.Close()
	list := []*entity.DocumentRelation{}
	for rows.Next() {
		rel, err := scanRelation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document relation: %w", err)
		}
		list = append(list, rel)
	}
	return list, rows.Err()
}

// DeleteRelation elimina una relación.
func (r *DocumentRepo) DeleteRelation(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM document_relations WHERE id = $1`, id)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("delete document relation: %w", err)
	}
	return affected(tag)
}

// targetColumn columna y valor del único destino presente.
func targetColumn(t entity.RelationTarget) (string, string, error) {
	if !t.Valid() {
		return "", "", domain.ErrInvalidRelation
	}
	switch {
	case t.ProjectID != nil && *t.ProjectID != "":
		return "project_id", *t.ProjectID, nil
	case t.ItemID != nil && *t.ItemID != "":
		return "item_id", *t.ItemID, nil
	case t.SupplierID != nil && *t.SupplierID != "":
		return "supplier_id", *t.SupplierID, nil
	default:
		return "client_id", *t.ClientID, nil
	}
}
