package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/application/usecase"
)

// DocumentHandler maneja la subida, descarga y relaciones de documentos.
type DocumentHandler struct {
	uc *usecase.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *usecase.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir documento
// @Description  multipart/form-data con el archivo en "file" y exactamente uno de project_id, item_id, supplier_id o client_id.
// @Tags         documents
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file         formData  file    true   "Archivo"
// @Param        name         formData  string  false  "Nombre (por defecto el del archivo)"
// @Param        notes        formData  string  false  "Notas"
// @Param        private      formData  bool    false  "Privado: solo visible para el autor y admins"
// @Param        project_id   formData  string  false  "Proyecto"
// @Param        item_id      formData  string  false  "Ítem"
// @Param        supplier_id  formData  string  false  "Proveedor"
// @Param        client_id    formData  string  false  "Cliente"
// @Success      201  {object}  dto.DocumentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Router       /api/documents [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, "MISSING_FILE")
	}
	var in dto.UploadDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, &validationError{code: "INVALID_BODY"})
	}
	if err := check(c, &in); err != nil {
		return fail(c, err)
	}
	f, err := fh.Open()
	if err != nil {
		return fail(c, err)
	}
	defer f.Close()

	file := dto.UploadedFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
	}
	out, err := h.uc.Upload(c.UserContext(), GetPrincipal(c), in, file, f)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Metadatos de un documento
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [get]
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar documentos visibles
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Param        q       query  string  false  "Búsqueda por nombre"
// @Success      200     {object}  dto.DocumentListResponse
// @Router       /api/documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := bindQuery(c, &page); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.List(c.UserContext(), GetPrincipal(c), page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ListByTarget godoc
// @Summary      Documentos relacionados con una entidad
// @Description  Exactamente uno de project_id, item_id, supplier_id o client_id.
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        project_id   query  string  false  "Proyecto"
// @Param        item_id      query  string  false  "Ítem"
// @Param        supplier_id  query  string  false  "Proveedor"
// @Param        client_id    query  string  false  "Cliente"
// @Success      200  {array}  dto.DocumentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/documents/by-target [get]
func (h *DocumentHandler) ListByTarget(c *fiber.Ctx) error {
	in := dto.RelationTargetRequest{
		ProjectID:  c.Query("project_id"),
		ItemID:     c.Query("item_id"),
		SupplierID: c.Query("supplier_id"),
		ClientID:   c.Query("client_id"),
	}
	if err := check(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.ListByTarget(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Download godoc
// @Summary      Descargar documento
// @Description  Redirige a una URL firmada si el almacenamiento la soporta; si no, transmite el archivo.
// @Tags         documents
// @Security     Bearer
// @Produce      octet-stream
// @Param        id   path  string  true  "ID del documento"
// @Success      200  {file}  binary
// @Success      302
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/download [get]
func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	out, rc, err := h.uc.Download(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out.URL != "" {
		return c.Redirect(out.URL, fiber.StatusFound)
	}
	doc := out.Document
	filename := doc.Name
	if doc.Extension != "" {
		filename += "." + doc.Extension
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	// fasthttp cierra rc al terminar la respuesta
	return c.SendStream(rc, int(doc.Size))
}

// Update godoc
// @Summary      Actualizar metadatos
// @Description  Solo el autor o un admin.
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del documento"
// @Param        body  body  dto.UpdateDocumentRequest  true  "Cambios"
// @Success      200   {object}  dto.DocumentResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [put]
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDocumentRequest
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

// Relations godoc
// @Summary      Relaciones del documento
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del documento"
// @Success      200  {array}  dto.DocumentRelationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/relations [get]
func (h *DocumentHandler) Relations(c *fiber.Ctx) error {
	out, err := h.uc.Relations(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// AddRelation godoc
// @Summary      Relacionar documento con otra entidad
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del documento"
// @Param        body  body  dto.RelationTargetRequest  true  "Exactamente un destino"
// @Success      201   {object}  dto.DocumentRelationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/relations [post]
func (h *DocumentHandler) AddRelation(c *fiber.Ctx) error {
	var in dto.RelationTargetRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.AddRelation(c.UserContext(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteRelation godoc
// @Summary      Quitar relación
// @Tags         documents
// @Security     Bearer
// @Param        id          path  string  true  "ID del documento"
// @Param        relationId  path  string  true  "ID de la relación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/relations/{relationId} [delete]
func (h *DocumentHandler) DeleteRelation(c *fiber.Ctx) error {
	if err := h.uc.DeleteRelation(c.UserContext(), GetPrincipal(c), c.Params("id"), c.Params("relationId")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar documento (solo admin)
// @Description  Borra los metadatos, sus relaciones y el archivo.
// @Tags         documents
// @Security     Bearer
// @Param        id  path  string  true  "ID del documento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
