package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/application/usecase"
)

// UserRequestHandler solicitudes de usuarios a los administradores.
type UserRequestHandler struct {
	uc *usecase.UserRequestUseCase
}

// NewUserRequestHandler construye el handler.
func NewUserRequestHandler(uc *usecase.UserRequestUseCase) *UserRequestHandler {
	return &UserRequestHandler{uc: uc}
}

// Create godoc
// @Summary      Enviar solicitud a los administradores
// @Tags         requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequestRequest  true  "Asunto y detalle"
// @Success      201   {object}  dto.UserRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/requests [post]
func (h *UserRequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequestRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Mine godoc
// @Summary      Mis solicitudes
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.UserRequestListResponse
// @Router       /api/requests/mine [get]
func (h *UserRequestHandler) Mine(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := bindQuery(c, &page); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Mine(c.UserContext(), GetPrincipal(c), page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar solicitudes (solo admin)
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Param        status  query  string  false  "pending, approved o rejected"
// @Success      200     {object}  dto.UserRequestListResponse
// @Router       /api/requests [get]
func (h *UserRequestHandler) List(c *fiber.Ctx) error {
	var in dto.UserRequestFilter
	if err := bindQuery(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener solicitud
// @Description  Visible para su autor y los admins.
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.UserRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/requests/{id} [get]
func (h *UserRequestHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Aprobar o rechazar solicitud (solo admin)
// @Tags         requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID de la solicitud"
// @Param        body  body  dto.ResolveUserRequestRequest  true  "approved o rejected"
// @Success      200   {object}  dto.UserRequestResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/requests/{id}/resolve [put]
func (h *UserRequestHandler) Resolve(c *fiber.Ctx) error {
	var in dto.ResolveUserRequestRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Resolve(c.UserContext(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}
