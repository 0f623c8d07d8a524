package repository

import (
	"context"

	"github.com/seifmegahed/daftar/internal/domain/entity"
)

// ProjectFilter filtros opcionales del listado de proyectos.
type ProjectFilter struct {
	ListParams
	ClientID string
	OwnerID  string
	Status   *entity.ProjectStatus
}

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	List(ctx context.Context, f ProjectFilter) ([]*entity.Project, int, error)
	// ListByItem proyectos que usan el ítem en cualquiera de sus listas.
	ListByItem(ctx context.Context, itemID string) ([]entity.Option, error)
	ListRecent(ctx context.Context, n int) ([]*entity.Project, error)
	Delete(ctx context.Context, id string) error
}

// CommentRepository comentarios de proyectos.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.ProjectComment) error
	GetByID(ctx context.Context, id string) (*entity.ProjectComment, error)
	ListByProject(ctx context.Context, projectID string) ([]*entity.ProjectComment, error)
	Delete(ctx context.Context, id string) error
}

// LineItemRepository ítems de proyecto; kind selecciona la tabla.
type LineItemRepository interface {
	Create(ctx context.Context, li *entity.LineItem) error
	GetByID(ctx context.Context, kind entity.LineItemKind, id string) (*entity.LineItem, error)
	Update(ctx context.Context, li *entity.LineItem) error
	ListByProject(ctx context.Context, kind entity.LineItemKind, projectID string) ([]*entity.LineItem, error)
	Delete(ctx context.Context, kind entity.LineItemKind, id string) error
}
