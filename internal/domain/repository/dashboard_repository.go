package repository

import (
	"context"

	"github.com/seifmegahed/daftar/internal/domain/entity"
)

// DashboardRepository consultas agregadas de solo lectura para el tablero.
type DashboardRepository interface {
	Counts(ctx context.Context) (*entity.DashboardCounts, error)
}
