package repository

import (
	"context"

	"github.com/seifmegahed/daftar/internal/domain/entity"
)

// DocumentRepository metadatos de documentos y sus relaciones.
type DocumentRepository interface {
	Create(ctx context.Context, d *entity.Document) error
	GetByID(ctx context.Context, id string) (*entity.Document, error)
	Update(ctx context.Context, d *entity.Document) error
	List(ctx context.Context, p ListParams, v Viewer) ([]*entity.Document, int, error)
	ListByTarget(ctx context.Context, t entity.RelationTarget, v Viewer) ([]*entity.Document, error)
	Delete(ctx context.Context, id string) error

	CreateRelation(ctx context.Context, r *entity.DocumentRelation) error
	GetRelation(ctx context.Context, id string) (*entity.DocumentRelation, error)
	ListRelations(ctx context.Context, documentID string) ([]*entity.DocumentRelation, error)
	DeleteRelation(ctx context.Context, id string) error
}
