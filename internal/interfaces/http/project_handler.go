package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/application/usecase"
	"github.com/seifmegahed/daftar/internal/domain/entity"
)

// ProjectHandler maneja proyectos, sus comentarios, sus cuatro listas de ítems y la oferta en PDF.
type ProjectHandler struct {
	uc    *usecase.ProjectUseCase
	lines *usecase.LineItemUseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *usecase.ProjectUseCase, lines *usecase.LineItemUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc, lines: lines}
}

// Create godoc
// @Summary      Crear proyecto
// @Description  El responsable por defecto es quien crea el proyecto y el estado por defecto es propuesta.
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProjectRequest  true  "Datos del proyecto"
// @Success      201   {object}  dto.ProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener proyecto por ID
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar proyectos
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Param        q          query  string  false  "Búsqueda por nombre"
// @Param        client_id  query  string  false  "Filtrar por cliente"
// @Param        owner_id   query  string  false  "Filtrar por responsable"
// @Param        status     query  int     false  "Filtrar por estado (0-4)"
// @Success      200        {object}  dto.ProjectListResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	var in dto.ProjectFilterRequest
	if err := bindQuery(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar proyecto
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del proyecto"
// @Param        body  body  dto.UpdateProjectRequest  true  "Cambios"
// @Success      200   {object}  dto.ProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProjectRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar proyecto (solo admin)
// @Description  Borra también sus comentarios e ítems.
// @Tags         projects
// @Security     Bearer
// @Param        id  path  string  true  "ID del proyecto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddComment godoc
// @Summary      Comentar un proyecto
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del proyecto"
// @Param        body  body  dto.CreateCommentRequest  true  "Comentario"
// @Success      201   {object}  dto.CommentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/comments [post]
func (h *ProjectHandler) AddComment(c *fiber.Ctx) error {
	var in dto.CreateCommentRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.AddComment(c.UserContext(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Comments godoc
// @Summary      Comentarios del proyecto
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {array}  dto.CommentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/comments [get]
func (h *ProjectHandler) Comments(c *fiber.Ctx) error {
	out, err := h.uc.Comments(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// DeleteComment godoc
// @Summary      Eliminar comentario
// @Description  Solo el autor o un admin.
// @Tags         projects
// @Security     Bearer
// @Param        id          path  string  true  "ID del proyecto"
// @Param        commentId   path  string  true  "ID del comentario"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/comments/{commentId} [delete]
func (h *ProjectHandler) DeleteComment(c *fiber.Ctx) error {
	if err := h.uc.DeleteComment(c.UserContext(), GetPrincipal(c), c.Params("id"), c.Params("commentId")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// lineKind lee :kind de la ruta; false si no es uno de project, purchase, sale u offer.
func lineKind(c *fiber.Ctx) (entity.LineItemKind, bool) {
	k := entity.LineItemKind(c.Params("kind"))
	return k, k.Valid()
}

// AddLineItem godoc
// @Summary      Agregar ítem al proyecto
// @Description  kind: project, purchase (requiere proveedor), sale u offer.
// @Tags         line-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del proyecto"
// @Param        kind  path  string               true  "Tipo de lista"  Enums(project, purchase, sale, offer)
// @Param        body  body  dto.LineItemRequest  true  "Ítem"
// @Success      201   {object}  dto.LineItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/items/{kind} [post]
func (h *ProjectHandler) AddLineItem(c *fiber.Ctx) error {
	kind, ok := lineKind(c)
	if !ok {
		return notFound(c)
	}
	var in dto.LineItemRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.lines.Add(c.UserContext(), GetPrincipal(c), kind, c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// LineItems godoc
// @Summary      Ítems del proyecto con totales por moneda
// @Tags         line-items
// @Security     Bearer
// @Produce      json
// @Param        id    path  string  true  "ID del proyecto"
// @Param        kind  path  string  true  "Tipo de lista"  Enums(project, purchase, sale, offer)
// @Success      200   {object}  dto.LineItemListResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/items/{kind} [get]
func (h *ProjectHandler) LineItems(c *fiber.Ctx) error {
	kind, ok := lineKind(c)
	if !ok {
		return notFound(c)
	}
	out, err := h.lines.List(c.UserContext(), kind, c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateLineItem godoc
// @Summary      Reemplazar ítem del proyecto
// @Tags         line-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string               true  "ID del proyecto"
// @Param        kind    path  string               true  "Tipo de lista"  Enums(project, purchase, sale, offer)
// @Param        lineId  path  string               true  "ID del ítem"
// @Param        body    body  dto.LineItemRequest  true  "Ítem"
// @Success      200     {object}  dto.LineItemResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/items/{kind}/{lineId} [put]
func (h *ProjectHandler) UpdateLineItem(c *fiber.Ctx) error {
	kind, ok := lineKind(c)
	if !ok {
		return notFound(c)
	}
	var in dto.LineItemRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.lines.Update(c.UserContext(), GetPrincipal(c), kind, c.Params("id"), c.Params("lineId"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// DeleteLineItem godoc
// @Summary      Quitar ítem del proyecto
// @Tags         line-items
// @Security     Bearer
// @Param        id      path  string  true  "ID del proyecto"
// @Param        kind    path  string  true  "Tipo de lista"  Enums(project, purchase, sale, offer)
// @Param        lineId  path  string  true  "ID del ítem"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/items/{kind}/{lineId} [delete]
func (h *ProjectHandler) DeleteLineItem(c *fiber.Ctx) error {
	kind, ok := lineKind(c)
	if !ok {
		return notFound(c)
	}
	if err := h.lines.Delete(c.UserContext(), kind, c.Params("id"), c.Params("lineId")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// OfferPDF godoc
// @Summary      Oferta comercial en PDF
// @Description  Genera la oferta con los ítems de tipo offer, en el idioma de la petición.
// @Tags         projects
// @Security     Bearer
// @Produce      application/pdf
// @Param        id    path   string  true   "ID del proyecto"
// @Param        lang  query  string  false  "Idioma (en, es, ar)"
// @Success      200   {file}  binary
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/offer.pdf [get]
func (h *ProjectHandler) OfferPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.lines.OfferPDF(c.UserContext(), c.Params("id"), Lang(c))
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
