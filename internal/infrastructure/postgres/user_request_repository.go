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

var _ repository.UserRequestRepository = (*UserRequestRepo)(nil)

// UserRequestRepo solicitudes de usuarios sobre PostgreSQL.
type UserRequestRepo struct {
	q Querier
}

// NewUserRequestRepository construye el adaptador.
func NewUserRequestRepository(q Querier) *UserRequestRepo {
	return &UserRequestRepo{q: q}
}

const requestColumns = `id, user_id, subject, body, status, resolved_by, resolved_at, created_at`

func scanRequest(row pgx.Row) (*entity.UserRequest, error) {
	var u entity.UserRequest
	err := row.Scan(&u.ID, &u.UserID, &u.Subject, &u.Body, &u.Status, &u.ResolvedBy, &u.ResolvedAt, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func collectRequests(rows pgx.Rows) ([]*entity.UserRequest, error) {
	defer rows.Close()
	list := []*entity.UserRequest{}
	for rows.Next() {
		u, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user request: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Create persiste una solicitud.
func (r *UserRequestRepo) Create(ctx context.Context, u *entity.UserRequest) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO user_requests (`+requestColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.UserID, u.Subject, u.Body, u.Status, u.ResolvedBy, u.ResolvedAt, u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud.
func (r *UserRequestRepo) GetByID(ctx context.Context, id string) (*entity.UserRequest, error) {
	u, err := scanRequest(r.q.QueryRow(ctx, `SELECT `+requestColumns+` FROM user_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user request: %w", err)
	}
	return u, nil
}

// Resolve guarda la resolución solo si la solicitud sigue pendiente; si no, ErrConflict.
func (r *UserRequestRepo) Resolve(ctx context.Context, u *entity.UserRequest) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE user_requests SET status = $2, resolved_by = $3, resolved_at = $4
		WHERE id = $1 AND status = 'pending'`,
		u.ID, u.Status, u.ResolvedBy, u.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("resolve user request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// ListByUser solicitudes de un usuario, más recientes primero.
func (r *UserRequestRepo) ListByUser(ctx context.Context, userID string, p repository.ListParams) ([]*entity.UserRequest, int, error) {
	p = p.Normalize()
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM user_requests WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count user requests: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT `+requestColumns+` FROM user_requests WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, userID, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list user requests: %w", err)
	}
	list, err := collectRequests(rows)
	return list, total, err
}

// List todas las solicitudes filtradas por estado ("" = todas).
func (r *UserRequestRepo) List(ctx context.Context, status string, p repository.ListParams) ([]*entity.UserRequest, int, error) {
	p = p.Normalize()
	const where = ` WHERE ($1 = '' OR status = $1)`
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM user_requests`+where, status).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count user requests: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+requestColumns+` FROM user_requests`+where+` ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		status, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list user requests: %w", err)
	}
	list, err := collectRequests(rows)
	return list, total, err
}
