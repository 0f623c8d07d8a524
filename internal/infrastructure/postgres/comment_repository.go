package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
)

var _ repository.CommentRepository = (*CommentRepo)(nil)

// CommentRepo comentarios de proyectos.
type CommentRepo struct {
	q Querier
}

// NewCommentRepository construye el adaptador.
func NewCommentRepository(q Querier) *CommentRepo {
	return &CommentRepo{q: q}
}

// Create persiste un comentario.
func (r *CommentRepo) Create(ctx context.Context, c *entity.ProjectComment) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO project_comments (id, project_id, text, created_by, created_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.ProjectID, c.Text, c.CreatedBy, c.CreatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID obtiene un comentario.
func (r *CommentRepo) GetByID(ctx context.Context, id string) (*entity.ProjectComment, error) {
	var c entity.ProjectComment
	err := r.q.QueryRow(ctx,
		`SELECT id, project_id, text, created_by, created_at FROM project_comments WHERE id = $1`, id,
	).Scan(&c.ID, &c.ProjectID, &c.Text, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &c, nil
}

// ListByProject comentarios del proyecto, más recientes primero.
func (r *CommentRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.ProjectComment, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, project_id, text, created_by, created_at
		FROM project_comments WHERE project_id = $1
		ORDER BY created_at DESC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()
	list := []*entity.ProjectComment{}
	for rows.Next() {
		var c entity.ProjectComment
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.Text, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un comentario.
func (r *CommentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM project_comments WHERE id = $1`, id)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	return affected(tag)
}
