package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seifmegahed/daftar/internal/application/ports"
	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
	"github.com/seifmegahed/daftar/internal/infrastructure/cache"
	"github.com/seifmegahed/daftar/pkg/logger"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeDashboardRepo struct {
	calls  int
	counts entity.DashboardCounts
}

func (f *fakeDashboardRepo) Counts(context.Context) (*entity.DashboardCounts, error) {
	f.calls++
	c := f.counts
	return &c, nil
}

type fakeProjectRepo struct {
	repository.ProjectRepository
	recent []*entity.Project
}

func (f *fakeProjectRepo) ListRecent(_ context.Context, n int) ([]*entity.Project, error) {
	if len(f.recent) > n {
		return f.recent[:n], nil
	}
	return f.recent, nil
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestGetSummary_CompletaEstadosYCachea(t *testing.T) {
	ctx := context.Background()
	dash := &fakeDashboardRepo{counts: entity.DashboardCounts{
		Clients: 3, Suppliers: 2, Items: 10, Documents: 4, PendingRequests: 1,
		ProjectsByStatus: map[entity.ProjectStatus]int{entity.ProjectActive: 2},
	}}
	projects := &fakeProjectRepo{recent: []*entity.Project{
		{ID: "p1", Name: "Uno", Status: entity.ProjectActive, StartDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}}
	c := cache.NewMemoryCache()
	uc := NewDashboardUseCase(dash, projects, c, time.Minute, logger.Nop())

	res, err := uc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Clients)
	assert.Equal(t, 1, res.PendingRequests)
	assert.Len(t, res.ProjectsByStatus, 5, "todos los estados aparecen aunque estén en cero")
	assert.Equal(t, 2, res.ProjectsByStatus["active"])
	assert.Equal(t, 0, res.ProjectsByStatus["cancelled"])
	require.Len(t, res.RecentProjects, 1)
	assert.Equal(t, "2024-01-02", res.RecentProjects[0].StartDate)

	_, err = uc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, dash.calls, "segunda lectura desde caché")

	ports.Invalidate(ctx, c, ports.TagDashboard)
	_, err = uc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, dash.calls)
}
