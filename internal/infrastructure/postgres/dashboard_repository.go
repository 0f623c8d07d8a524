package postgres

import (
	"context"
	"fmt"

	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura para el tablero.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del tablero.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// Counts devuelve los totales por entidad y los proyectos agrupados por estado.
// Los estados sin proyectos aparecen con cero.
func (r *DashboardRepo) Counts(ctx context.Context) (*entity.DashboardCounts, error) {
	const totals = `
	SELECT
	    (SELECT COUNT(*) FROM clients)                                AS clients,
	    (SELECT COUNT(*) FROM suppliers)                              AS suppliers,
	    (SELECT COUNT(*) FROM items)                                  AS items,
	    (SELECT COUNT(*) FROM documents)                              AS documents,
	    (SELECT COUNT(*) FROM user_requests WHERE status = 'pending') AS pending_requests`

	c := &entity.DashboardCounts{ProjectsByStatus: make(map[entity.ProjectStatus]int)}
	if err := r.q.QueryRow(ctx, totals).Scan(
		&c.Clients,
		&c.Suppliers,
		&c.Items,
		&c.Documents,
		&c.PendingRequests,
	); err != nil {
		return nil, fmt.Errorf("dashboard.Counts: %w", err)
	}

	for _, s := range entity.ProjectStatuses() {
		c.ProjectsByStatus[s] = 0
	}
	rows, err := r.q.Query(ctx, `SELECT status, COUNT(*) FROM projects GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Counts projects: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			status int16
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("dashboard.Counts scan: %w", err)
		}
		c.ProjectsByStatus[entity.ProjectStatus(status)] = n
	}
	return c, rows.Err()
}
