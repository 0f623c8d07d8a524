// Package analytics contiene el caso de uso del tablero principal.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/application/ports"
	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
	"github.com/seifmegahed/daftar/pkg/logger"
)

const dashboardRecentProjects = 5 // proyectos en el widget de recientes

// DashboardUseCase genera el resumen del tablero.
//
// Fuente de datos: DashboardRepository (conteos) y ProjectRepository (recientes), ambos read-only.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
	projectRepo   repository.ProjectRepository
	cache         ports.Cache
	ttl           time.Duration
	log           *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	dashboardRepo repository.DashboardRepository,
	projectRepo repository.ProjectRepository,
	cache ports.Cache,
	ttl time.Duration,
	log *logger.Logger,
) *DashboardUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardUseCase{dashboardRepo: dashboardRepo, projectRepo: projectRepo, cache: cache, ttl: ttl, log: log}
}

// GetSummary construye el DashboardResponse. El resultado se cachea bajo las etiquetas
// de tablero y proyectos.
//
// Dos llamadas en paralelo:
//  1. Counts()                → conteos y proyectos por estado
//  2. ListRecent(top 5)       → RecentProjects
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	tags := []string{ports.TagDashboard, ports.TagProjects}
	return ports.Remember(ctx, uc.cache, "dashboard:summary", uc.ttl, tags, func() (*dto.DashboardResponse, error) {
		defer uc.log.Timer("dashboard_summary")()
		return uc.build(ctx)
	})
}

func (uc *DashboardUseCase) build(ctx context.Context) (*dto.DashboardResponse, error) {
	// ── Goroutines para paralelizar las 2 consultas DB ────────────────────────
	type countsResult struct {
		counts *entity.DashboardCounts
		err    error
	}
	type recentResult struct {
		projects []*entity.Project
		err      error
	}

	countsCh := make(chan countsResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		c, err := uc.dashboardRepo.Counts(ctx)
		countsCh <- countsResult{c, err}
	}()
	go func() {
		p, err := uc.projectRepo.ListRecent(ctx, dashboardRecentProjects)
		recentCh <- recentResult{p, err}
	}()

	counts := <-countsCh
	recent := <-recentCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteos: %w", counts.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: proyectos recientes: %w", recent.err)
	}

	// ── Ensamblar respuesta ───────────────────────────────────────────────────
	out := &dto.DashboardResponse{
		Clients:          counts.counts.Clients,
		Suppliers:        counts.counts.Suppliers,
		Items:            counts.counts.Items,
		Documents:        counts.counts.Documents,
		PendingRequests:  counts.counts.PendingRequests,
		ProjectsByStatus: make(map[string]int, len(entity.ProjectStatuses())),
		RecentProjects:   make([]dto.ProjectResponse, 0, len(recent.projects)),
	}
	for _, s := range entity.ProjectStatuses() {
		out.ProjectsByStatus[s.String()] = counts.counts.ProjectsByStatus[s]
	}
	for _, p := range recent.projects {
		out.RecentProjects = append(out.RecentProjects, toRecentProject(p))
	}
	return out, nil
}

func toRecentProject(p *entity.Project) dto.ProjectResponse {
	out := dto.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Status:      int(p.Status),
		StatusName:  p.Status.String(),
		Description: p.Description,
		ClientID:    p.ClientID,
		OwnerID:     p.OwnerID,
		StartDate:   p.StartDate.Format("2006-01-02"),
		Notes:       p.Notes,
		CreatedBy:   p.CreatedBy,
		UpdatedBy:   p.UpdatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.EndDate != nil {
		end := p.EndDate.Format("2006-01-02")
		out.EndDate = &end
	}
	return out
}
