package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/application/usecase"
)

// ClientHandler maneja clientes y sus proyectos.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Description  Crea el cliente y, si se envían, su dirección y contacto principales en la misma transacción.
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
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
// @Summary      Obtener cliente por ID
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar clientes
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Param        q       query  string  false  "Búsqueda por nombre"
// @Success      200     {object}  dto.ClientListResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := bindQuery(c, &page); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Options godoc
// @Summary      Lista simple de clientes
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OptionResponse
// @Router       /api/clients/options [get]
func (h *ClientHandler) Options(c *fiber.Ctx) error {
	out, err := h.uc.ListOptions(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Projects godoc
// @Summary      Proyectos del cliente
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del cliente"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.ProjectListResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/projects [get]
func (h *ClientHandler) Projects(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := bindQuery(c, &page); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Projects(c.UserContext(), c.Params("id"), page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del cliente"
// @Param        body  body  dto.UpdateClientRequest  true  "Cambios"
// @Success      200   {object}  dto.ClientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
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

// SetPrimaryAddress godoc
// @Summary      Fijar la dirección principal
// @Description  La dirección debe pertenecer al cliente. null la desvincula.
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Param        id    path  string                 true  "ID del cliente"
// @Param        body  body  dto.SetPrimaryRequest  true  "ID de la dirección"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/primary-address [put]
func (h *ClientHandler) SetPrimaryAddress(c *fiber.Ctx) error {
	var in dto.SetPrimaryRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	if err := h.uc.SetPrimaryAddress(c.UserContext(), GetPrincipal(c), c.Params("id"), in.ID); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetPrimaryContact godoc
// @Summary      Fijar el contacto principal
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Param        id    path  string                 true  "ID del cliente"
// @Param        body  body  dto.SetPrimaryRequest  true  "ID del contacto"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/primary-contact [put]
func (h *ClientHandler) SetPrimaryContact(c *fiber.Ctx) error {
	var in dto.SetPrimaryRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	if err := h.uc.SetPrimaryContact(c.UserContext(), GetPrincipal(c), c.Params("id"), in.ID); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar cliente (solo admin)
// @Description  Falla con 409 si el cliente tiene proyectos.
// @Tags         clients
// @Security     Bearer
// @Param        id  path  string  true  "ID del cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
