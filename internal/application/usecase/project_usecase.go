package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/application/ports"
	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
)

// ProjectUseCase aplica reglas de negocio para proyectos y sus comentarios.
type ProjectUseCase struct {
	repo     repository.ProjectRepository
	comments repository.CommentRepository
	clients  repository.ClientRepository
	users    repository.UserRepository
	Shared
}

// NewProjectUseCase construye el caso de uso de proyectos.
func NewProjectUseCase(
	repo repository.ProjectRepository,
	comments repository.CommentRepository,
	clients repository.ClientRepository,
	users repository.UserRepository,
	shared Shared,
) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, comments: comments, clients: clients, users: users, Shared: shared}
}

// Create da de alta un proyecto. Sin owner_id el responsable es quien lo crea.
func (uc *ProjectUseCase) Create(ctx context.Context, actor dto.Principal, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	now := time.Now().UTC()
	project := &entity.Project{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Status:      entity.ProjectProposal,
		Description: in.Description,
		ClientID:    in.ClientID,
		OwnerID:     in.OwnerID,
		Notes:       in.Notes,
		CreatedBy:   actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if project.OwnerID == "" {
		project.OwnerID = actor.UserID
	}
	if in.Status != nil {
		project.Status = entity.ProjectStatus(*in.Status)
	}
	var err error
	if project.StartDate, err = parseDate(in.StartDate); err != nil {
		return nil, err
	}
	if in.EndDate != "" {
		end, err := parseDate(in.EndDate)
		if err != nil {
			return nil, err
		}
		project.EndDate = &end
	}
	if err := uc.validate(ctx, project); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagProjects, ports.TagDashboard)
	uc.logger().Info().Str("project_id", project.ID).Str("user_id", actor.UserID).Msg("proyecto creado")
	return toProjectResponse(project), nil
}

// validate reglas comunes a alta y edición.
func (uc *ProjectUseCase) validate(ctx context.Context, p *entity.Project) error {
	if !p.Status.Valid() {
		return domain.ErrInvalidInput
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return domain.ErrInvalidInput
	}
	client, err := uc.clients.GetByID(ctx, p.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrInvalidInput
	}
	owner, err := uc.users.GetByID(ctx, p.OwnerID)
	if err != nil {
		return err
	}
	if owner == nil {
		return domain.ErrInvalidInput
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (uc *ProjectUseCase) GetByID(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProjectResponse(p), nil
}

// List lista proyectos con filtros opcionales por cliente, responsable y estado.
func (uc *ProjectUseCase) List(ctx context.Context, in dto.ProjectFilterRequest) (*dto.ProjectListResponse, error) {
	f := repository.ProjectFilter{ListParams: toListParams(in.PageRequest), ClientID: in.ClientID, OwnerID: in.OwnerID}
	status := ""
	if in.Status != nil {
		s := entity.ProjectStatus(*in.Status)
		if !s.Valid() {
			return nil, domain.ErrInvalidInput
		}
		f.Status = &s
		status = s.String()
	}
	key := listKey("projects", f.ListParams, f.ClientID, f.OwnerID, status)
	return ports.Remember(ctx, uc.Cache, key, uc.CacheTTL, []string{ports.TagProjects},
		func() (*dto.ProjectListResponse, error) {
			list, total, err := uc.repo.List(ctx, f)
			if err != nil {
				return nil, err
			}
			items := make([]dto.ProjectResponse, 0, len(list))
			for _, p := range list {
				items = append(items, *toProjectResponse(p))
			}
			return &dto.ProjectListResponse{Items: items, Page: toPageResponse(f.ListParams, total)}, nil
		})
}

// Update aplica cambios parciales. EndDate "" limpia la fecha de fin.
func (uc *ProjectUseCase) Update(ctx context.Context, actor dto.Principal, id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Status != nil {
		p.Status = entity.ProjectStatus(*in.Status)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ClientID != nil {
		p.ClientID = *in.ClientID
	}
	if in.OwnerID != nil {
		p.OwnerID = *in.OwnerID
	}
	if in.StartDate != nil {
		if p.StartDate, err = parseDate(*in.StartDate); err != nil {
			return nil, err
		}
	}
	if in.EndDate != nil {
		if *in.EndDate == "" {
			p.EndDate = nil
		} else {
			end, err := parseDate(*in.EndDate)
			if err != nil {
				return nil, err
			}
			p.EndDate = &end
		}
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}
	if err := uc.validate(ctx, p); err != nil {
		return nil, err
	}
	p.UpdatedBy = &actor.UserID
	p.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagProjects, ports.TagDashboard)
	return toProjectResponse(p), nil
}

// Delete borra el proyecto con sus ítems y comentarios.
func (uc *ProjectUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	ports.Invalidate(ctx, uc.Cache, ports.TagProjects, ports.TagDashboard)
	uc.logger().Info().Str("project_id", id).Msg("proyecto eliminado")
	return nil
}

// AddComment agrega un comentario al proyecto.
func (uc *ProjectUseCase) AddComment(ctx context.Context, actor dto.Principal, projectID string, in dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if err := uc.mustExist(ctx, projectID); err != nil {
		return nil, err
	}
	c := &entity.ProjectComment{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Text:      in.Text,
		CreatedBy: actor.UserID,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCommentResponse(c), nil
}

// Comments lista los comentarios del proyecto, los más recientes primero.
func (uc *ProjectUseCase) Comments(ctx context.Context, projectID string) ([]dto.CommentResponse, error) {
	if err := uc.mustExist(ctx, projectID); err != nil {
		return nil, err
	}
	list, err := uc.comments.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommentResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCommentResponse(c))
	}
	return out, nil
}

// DeleteComment solo el autor o un admin pueden borrar un comentario.
func (uc *ProjectUseCase) DeleteComment(ctx context.Context, actor dto.Principal, projectID, commentID string) error {
	c, err := uc.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if c == nil || c.ProjectID != projectID {
		return domain.ErrNotFound
	}
	if c.CreatedBy != actor.UserID && !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return uc.comments.Delete(ctx, commentID)
}

func (uc *ProjectUseCase) mustExist(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	out := &dto.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Status:      int(p.Status),
		StatusName:  p.Status.String(),
		Description: p.Description,
		ClientID:    p.ClientID,
		OwnerID:     p.OwnerID,
		StartDate:   formatDate(p.StartDate),
		Notes:       p.Notes,
		CreatedBy:   p.CreatedBy,
		UpdatedBy:   p.UpdatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.EndDate != nil {
		out.EndDate = ptr(formatDate(*p.EndDate))
	}
	return out
}

func toCommentResponse(c *entity.ProjectComment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:        c.ID,
		ProjectID: c.ProjectID,
		Text:      c.Text,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
	}
}
