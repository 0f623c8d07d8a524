package usecase

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/application/ports"
	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
)

// DocumentUseCase documentos subidos: metadatos en BD, contenido en el almacenamiento de objetos.
type DocumentUseCase struct {
	repo      repository.DocumentRepository
	projects  repository.ProjectRepository
	items     repository.ItemRepository
	suppliers repository.SupplierRepository
	clients   repository.ClientRepository
	storage   ports.ObjectStorage
	tx        ports.TxRunner
	maxBytes  int64
	// OnUpload se invoca con el tamaño de cada archivo subido (métricas).
	OnUpload func(size int64)
	Shared
}

// NewDocumentUseCase construye el caso de uso de documentos.
func NewDocumentUseCase(
	repo repository.DocumentRepository,
	projects repository.ProjectRepository,
	items repository.ItemRepository,
	suppliers repository.SupplierRepository,
	clients repository.ClientRepository,
	storage ports.ObjectStorage,
	tx ports.TxRunner,
	maxBytes int64,
	shared Shared,
) *DocumentUseCase {
	return &DocumentUseCase{
		repo: repo, projects: projects, items: items, suppliers: suppliers, clients: clients,
		storage: storage, tx: tx, maxBytes: maxBytes, Shared: shared,
	}
}

// Upload guarda el archivo y crea en una transacción el documento y su relación inicial.
// Si la transacción falla se borra el archivo ya subido.
func (uc *DocumentUseCase) Upload(ctx context.Context, actor dto.Principal, in dto.UploadDocumentRequest, file dto.UploadedFile, r io.Reader) (*dto.DocumentResponse, error) {
	defer uc.logger().Timer("document_upload")()

	if uc.maxBytes > 0 && file.Size > uc.maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	target := toRelationTarget(in.RelationTargetRequest)
	if err := uc.checkTarget(ctx, target); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))
	}
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	now := time.Now().UTC()
	doc := &entity.Document{
		ID:          uuid.New().String(),
		Name:        name,
		Extension:   strings.TrimPrefix(ext, "."),
		ContentType: contentType,
		Size:        file.Size,
		Notes:       in.Notes,
		Private:     in.Private,
		CreatedBy:   actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	doc.Path = "documents/" + doc.ID + ext
	rel := &entity.DocumentRelation{
		ID:             uuid.New().String(),
		DocumentID:     doc.ID,
		RelationTarget: target,
		CreatedBy:      actor.UserID,
		CreatedAt:      now,
	}

	if err := uc.storage.Put(ctx, doc.Path, r, file.Size, contentType); err != nil {
		return nil, err
	}
	err := uc.tx.RunDocuments(ctx, func(docs repository.DocumentRepository) error {
		if err := docs.Create(ctx, doc); err != nil {
			return err
		}
		return docs.CreateRelation(ctx, rel)
	})
	if err != nil {
		if derr := uc.storage.Delete(context.WithoutCancel(ctx), doc.Path); derr != nil {
			uc.logger().Warn().Err(derr).Str("path", doc.Path).Msg("no se pudo borrar el archivo huérfano")
		}
		return nil, err
	}
	if uc.OnUpload != nil {
		uc.OnUpload(doc.Size)
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagDocuments, ports.TagDashboard)
	uc.logger().Info().Str("document_id", doc.ID).Int64("size", doc.Size).Str("user_id", actor.UserID).Msg("documento subido")
	return toDocumentResponse(doc), nil
}

// checkTarget exige exactamente un destino y que exista.
func (uc *DocumentUseCase) checkTarget(ctx context.Context, t entity.RelationTarget) error {
	if !t.Valid() {
		return domain.ErrInvalidRelation
	}
	var (
		found bool
		err   error
	)
	switch {
	case t.ProjectID != nil:
		var p *entity.Project
		p, err = uc.projects.GetByID(ctx, *t.ProjectID)
		found = p != nil
	case t.ItemID != nil:
		var it *entity.Item
		it, err = uc.items.GetByID(ctx, *t.ItemID)
		found = it != nil
	case t.SupplierID != nil:
		var s *entity.Supplier
		s, err = uc.suppliers.GetByID(ctx, *t.SupplierID)
		found = s != nil
	case t.ClientID != nil:
		var c *entity.Client
		c, err = uc.clients.GetByID(ctx, *t.ClientID)
		found = c != nil
	}
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrInvalidRelation
	}
	return nil
}

// GetByID devuelve el documento si el principal puede verlo; nil si no existe o es privado ajeno.
func (uc *DocumentUseCase) GetByID(ctx context.Context, actor dto.Principal, id string) (*dto.DocumentResponse, error) {
	doc, err := uc.visible(ctx, actor, id)
	if err != nil || doc == nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

func (uc *DocumentUseCase) visible(ctx context.Context, actor dto.Principal, id string) (*entity.Document, error) {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil || !doc.VisibleTo(actor.UserID, actor.IsAdmin()) {
		return nil, nil
	}
	return doc, nil
}

// List lista documentos visibles para el principal.
func (uc *DocumentUseCase) List(ctx context.Context, actor dto.Principal, page dto.PageRequest) (*dto.DocumentListResponse, error) {
	p := toListParams(page)
	v := viewer(actor)
	// los privados dependen del principal: la clave incluye al usuario salvo para admins
	scope := "all"
	if !v.IsAdmin {
		scope = v.UserID
	}
	return ports.Remember(ctx, uc.Cache, listKey("documents", p, scope), uc.CacheTTL, []string{ports.TagDocuments},
		func() (*dto.DocumentListResponse, error) {
			list, total, err := uc.repo.List(ctx, p, v)
			if err != nil {
				return nil, err
			}
			return &dto.DocumentListResponse{Items: toDocumentResponses(list), Page: toPageResponse(p, total)}, nil
		})
}

// ListByTarget documentos relacionados con un proyecto, ítem, proveedor o cliente.
func (uc *DocumentUseCase) ListByTarget(ctx context.Context, actor dto.Principal, in dto.RelationTargetRequest) ([]dto.DocumentResponse, error) {
	t := toRelationTarget(in)
	if !t.Valid() {
		return nil, domain.ErrInvalidRelation
	}
	list, err := uc.repo.ListByTarget(ctx, t, viewer(actor))
	if err != nil {
		return nil, err
	}
	return toDocumentResponses(list), nil
}

// Download devuelve una URL firmada (si el backend la soporta) o el contenido a transmitir.
// Exactamente uno de URL o el ReadCloser viene informado; el llamador cierra el ReadCloser.
func (uc *DocumentUseCase) Download(ctx context.Context, actor dto.Principal, id string) (*dto.DocumentDownload, io.ReadCloser, error) {
	doc, err := uc.visible(ctx, actor, id)
	if err != nil {
		return nil, nil, err
	}
	if doc == nil {
		return nil, nil, domain.ErrNotFound
	}
	out := &dto.DocumentDownload{Document: *toDocumentResponse(doc)}
	url, err := uc.storage.DownloadURL(ctx, doc.Path, downloadName(doc))
	if err != nil {
		return nil, nil, err
	}
	if url != "" {
		out.URL = url
		return out, nil, nil
	}
	rc, err := uc.storage.Open(ctx, doc.Path)
	if err != nil {
		return nil, nil, err
	}
	return out, rc, nil
}

// Update cambia nombre, notas o privacidad. Solo el autor o un admin.
func (uc *DocumentUseCase) Update(ctx context.Context, actor dto.Principal, id string, in dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	doc, err := uc.visible(ctx, actor, id)
	if err != nil || doc == nil {
		return nil, err
	}
	if doc.CreatedBy != actor.UserID && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		doc.Name = *in.Name
	}
	if in.Notes != nil {
		doc.Notes = *in.Notes
	}
	if in.Private != nil {
		doc.Private = *in.Private
	}
	doc.UpdatedBy = &actor.UserID
	doc.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, doc); err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagDocuments)
	return toDocumentResponse(doc), nil
}

// Relations lista las relaciones del documento.
func (uc *DocumentUseCase) Relations(ctx context.Context, actor dto.Principal, id string) ([]dto.DocumentRelationResponse, error) {
	doc, err := uc.visible(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentRelationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRelationResponse(r))
	}
	return out, nil
}

// AddRelation relaciona el documento con otro registro.
func (uc *DocumentUseCase) AddRelation(ctx context.Context, actor dto.Principal, id string, in dto.RelationTargetRequest) (*dto.DocumentRelationResponse, error) {
	doc, err := uc.visible(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	t := toRelationTarget(in)
	if err := uc.checkTarget(ctx, t); err != nil {
		return nil, err
	}
	rel := &entity.DocumentRelation{
		ID:             uuid.New().String(),
		DocumentID:     id,
		RelationTarget: t,
		CreatedBy:      actor.UserID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := uc.repo.CreateRelation(ctx, rel); err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagDocuments)
	out := toRelationResponse(rel)
	return &out, nil
}

// DeleteRelation quita una relación del documento.
func (uc *DocumentUseCase) DeleteRelation(ctx context.Context, actor dto.Principal, id, relationID string) error {
	doc, err := uc.visible(ctx, actor, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	rel, err := uc.repo.GetRelation(ctx, relationID)
	if err != nil {
		return err
	}
	if rel == nil || rel.DocumentID != id {
		return domain.ErrNotFound
	}
	if err := uc.repo.DeleteRelation(ctx, relationID); err != nil {
		return err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagDocuments)
	return nil
}

// Delete borra el documento, sus relaciones y el archivo.
func (uc *DocumentUseCase) Delete(ctx context.Context, id string) error {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := uc.storage.Delete(ctx, doc.Path); err != nil {
		uc.logger().Warn().Err(err).Str("path", doc.Path).Msg("documento borrado pero el archivo quedó en el almacenamiento")
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagDocuments, ports.TagDashboard)
	uc.logger().Info().Str("document_id", id).Msg("documento eliminado")
	return nil
}

func downloadName(d *entity.Document) string {
	if d.Extension == "" {
		return d.Name
	}
	return d.Name + "." + d.Extension
}

func toRelationTarget(in dto.RelationTargetRequest) entity.RelationTarget {
	return entity.RelationTarget{
		ProjectID:  emptyToNil(&in.ProjectID),
		ItemID:     emptyToNil(&in.ItemID),
		SupplierID: emptyToNil(&in.SupplierID),
		ClientID:   emptyToNil(&in.ClientID),
	}
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Extension:   d.Extension,
		ContentType: d.ContentType,
		Size:        d.Size,
		Notes:       d.Notes,
		Private:     d.Private,
		CreatedBy:   d.CreatedBy,
		UpdatedBy:   d.UpdatedBy,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toDocumentResponses(list []*entity.Document) []dto.DocumentResponse {
	out := make([]dto.DocumentResponse, 0, len(list))
	for _, d := range list {
		out = append(out, *toDocumentResponse(d))
	}
	return out
}

func toRelationResponse(r *entity.DocumentRelation) dto.DocumentRelationResponse {
	return dto.DocumentRelationResponse{
		ID:         r.ID,
		DocumentID: r.DocumentID,
		ProjectID:  r.ProjectID,
		ItemID:     r.ItemID,
		SupplierID: r.SupplierID,
		ClientID:   r.ClientID,
		CreatedBy:  r.CreatedBy,
		CreatedAt:  r.CreatedAt,
	}
}
