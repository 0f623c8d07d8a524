package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación de ProjectRepository.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador.
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

const projectColumns = `id, name, status, description, client_id, owner_id, start_date, end_date, notes,
	created_by, updated_by, created_at, updated_at`

func scanProject(row pgx.Row) (*entity.Project, error) {
	var (
		p      entity.Project
		status int16
	)
	err := row.Scan(&p.ID, &p.Name, &status, &p.Description, &p.ClientID, &p.OwnerID, &p.StartDate, &p.EndDate,
		&p.Notes, &p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Status = entity.ProjectStatus(status)
	return &p, nil
}

// Create persiste un proyecto.
func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO projects (`+projectColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.Name, int16(p.Status), p.Description, p.ClientID, p.OwnerID, p.StartDate, p.EndDate, p.Notes,
		p.CreatedBy, p.UpdatedBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	p, err := scanProject(r.q.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// Update actualiza un proyecto.
func (r *ProjectRepo) Update(ctx context.Context, p *entity.Project) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE projects SET name = $2, status = $3, description = $4, client_id = $5, owner_id = $6,
			start_date = $7, end_date = $8, notes = $9, updated_by = $10, updated_at = $11
		WHERE id = $1`,
		p.ID, p.Name, int16(p.Status), p.Description, p.ClientID, p.OwnerID,
		p.StartDate, p.EndDate, p.Notes, p.UpdatedBy, p.UpdatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update project: %w", err)
	}
	return affected(tag)
}

// List lista proyectos con filtros opcionales, más recientes primero.
func (r *ProjectRepo) List(ctx context.Context, f repository.ProjectFilter) ([]*entity.Project, int, error) {
	f.ListParams = f.ListParams.Normalize()

	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if pattern := searchPattern(f.Search); pattern != "" {
		add("name ILIKE $%d", pattern)
	}
	if f.ClientID != "" {
		add("client_id = $%d", f.ClientID)
	}
	if f.OwnerID != "" {
		add("owner_id = $%d", f.OwnerID)
	}
	if f.Status != nil {
		add("status = $%d", int16(*f.Status))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM projects`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM projects%s ORDER BY start_date DESC, name LIMIT $%d OFFSET $%d`,
		projectColumns, where, len(args)+1, len(args)+2)
	rows, err := r.q.Query(ctx, query, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}
	list, err := collectProjects(rows)
	return list, total, err
}

// ListByItem proyectos que usan el ítem en cualquiera de sus listas.
func (r *ProjectRepo) ListByItem(ctx context.Context, itemID string) ([]entity.Option, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.id, p.name FROM projects p
		WHERE p.id IN (
			SELECT project_id FROM project_items WHERE item_id = $1
			UNION SELECT project_id FROM purchase_items WHERE item_id = $1
			UNION SELECT project_id FROM sale_items WHERE item_id = $1
			UNION SELECT project_id FROM commercial_offer_items WHERE item_id = $1
		)
		ORDER BY p.name`, itemID)
	if err != nil {
		return nil, fmt.Errorf("list projects by item: %w", err)
	}
	return collectOptions(rows)
}

// ListRecent los n proyectos modificados más recientemente.
func (r *ProjectRepo) ListRecent(ctx context.Context, n int) ([]*entity.Project, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY updated_at DESC LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("list recent projects: %w", err)
	}
	return collectProjects(rows)
}

// Delete elimina un proyecto y, en cascada, sus comentarios, ítems y relaciones.
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("delete project: %w", err)
	}
	return affected(tag)
}

func collectProjects(rows pgx.Rows) ([]*entity.Project, error) {
	defer rows.Close()
	list := []*entity.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
